package store

import (
	"database/sql"
	"fmt"

	"github.com/quizview/quizview/internal/model"

	_ "modernc.org/sqlite"
)

// Store is the SQLite-backed question bank the page is built from.
type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS weeks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		number INTEGER NOT NULL UNIQUE,
		title TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS questions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		week_id INTEGER NOT NULL,
		position INTEGER NOT NULL DEFAULT 0,
		text TEXT NOT NULL,
		explanation TEXT NOT NULL DEFAULT '',
		FOREIGN KEY (week_id) REFERENCES weeks(id)
	);

	CREATE TABLE IF NOT EXISTS options (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		question_id INTEGER NOT NULL,
		position INTEGER NOT NULL DEFAULT 0,
		text TEXT NOT NULL,
		correct INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (question_id) REFERENCES questions(id)
	);

	CREATE TABLE IF NOT EXISTS quiz_metadata (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// UpsertWeek creates the week with the given number if missing and
// returns its ID. An existing week keeps its title unless the new title
// is non-empty.
func (s *Store) UpsertWeek(number int, title string) (int64, error) {
	var id int64
	err := s.db.QueryRow(`SELECT id FROM weeks WHERE number = ?`, number).Scan(&id)
	if err == sql.ErrNoRows {
		res, err := s.db.Exec(`INSERT INTO weeks (number, title) VALUES (?, ?)`, number, title)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	}
	if err != nil {
		return 0, err
	}
	if title != "" {
		if _, err := s.db.Exec(`UPDATE weeks SET title = ? WHERE id = ?`, title, id); err != nil {
			return 0, err
		}
	}
	return id, nil
}

// InsertQuestion stores a question with its options in one transaction.
func (s *Store) InsertQuestion(q model.Question) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO questions (week_id, position, text, explanation) VALUES (?, ?, ?, ?)`,
		q.WeekID, q.Position, q.Text, q.Explanation,
	)
	if err != nil {
		return 0, err
	}
	qID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i, opt := range q.Options {
		_, err := tx.Exec(
			`INSERT INTO options (question_id, position, text, correct) VALUES (?, ?, ?, ?)`,
			qID, i, opt.Text, opt.Correct,
		)
		if err != nil {
			return 0, err
		}
	}

	return qID, tx.Commit()
}

// GetWeek returns a week by number, without its questions.
func (s *Store) GetWeek(number int) (model.Week, error) {
	var w model.Week
	err := s.db.QueryRow(
		`SELECT id, number, title FROM weeks WHERE number = ?`, number,
	).Scan(&w.ID, &w.Number, &w.Title)
	return w, err
}

// ListWeeks returns all weeks ordered by number, without questions.
func (s *Store) ListWeeks() ([]model.Week, error) {
	rows, err := s.db.Query(`SELECT id, number, title FROM weeks ORDER BY number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var weeks []model.Week
	for rows.Next() {
		var w model.Week
		if err := rows.Scan(&w.ID, &w.Number, &w.Title); err != nil {
			return nil, err
		}
		weeks = append(weeks, w)
	}
	return weeks, rows.Err()
}

// ListQuestions returns the questions of a week in position order,
// options included.
func (s *Store) ListQuestions(weekID int64) ([]model.Question, error) {
	rows, err := s.db.Query(
		`SELECT id, week_id, position, text, explanation FROM questions
		 WHERE week_id = ? ORDER BY position, id`, weekID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var questions []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.WeekID, &q.Position, &q.Text, &q.Explanation); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range questions {
		opts, err := s.listOptions(questions[i].ID)
		if err != nil {
			return nil, err
		}
		questions[i].Options = opts
	}
	return questions, nil
}

func (s *Store) listOptions(questionID int64) ([]model.Option, error) {
	rows, err := s.db.Query(
		`SELECT id, question_id, position, text, correct FROM options
		 WHERE question_id = ? ORDER BY position, id`, questionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var opts []model.Option
	for rows.Next() {
		var o model.Option
		if err := rows.Scan(&o.ID, &o.QuestionID, &o.Position, &o.Text, &o.Correct); err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return opts, rows.Err()
}

// LoadBank returns the whole bank as weeks with nested questions and
// options, in page order.
func (s *Store) LoadBank() ([]model.Week, error) {
	weeks, err := s.ListWeeks()
	if err != nil {
		return nil, err
	}
	for i := range weeks {
		qs, err := s.ListQuestions(weeks[i].ID)
		if err != nil {
			return nil, err
		}
		weeks[i].Questions = qs
	}
	return weeks, nil
}

// QuestionCount returns the number of questions in the bank.
func (s *Store) QuestionCount() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM questions`).Scan(&count)
	return count, err
}

// WeekCount returns the number of weekly sections in the bank.
func (s *Store) WeekCount() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM weeks`).Scan(&count)
	return count, err
}
