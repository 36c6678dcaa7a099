package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/net/html"

	"github.com/quizview/quizview/internal/dom"
	appI18n "github.com/quizview/quizview/internal/i18n"
	"github.com/quizview/quizview/internal/model"
	"github.com/quizview/quizview/internal/page"
	"github.com/quizview/quizview/internal/store"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quizview",
		Short: "Weekly multiple-choice quiz page",
	}

	serve := serveCmd()
	root.AddCommand(serve, playCmd(), renderCmd(), exportCmd())

	// Make "serve" the default when no subcommand is given.
	root.RunE = serve.RunE

	// Register serve flags on root so bare `quizview --addr ...` still works.
	root.Flags().AddFlagSet(serve.Flags())

	return root
}

func addBankFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("db", "quizview.db", "SQLite database path")
	f.StringSliceP("questions", "q", []string{"questions/weeks_tr.json"}, "Paths to questions JSON files (repeatable)")
	f.StringP("lang", "l", "tr", "UI language (tr, en)")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server hosting the quiz page",
		RunE:  runServe,
	}
	addBankFlags(cmd)
	f := cmd.Flags()
	f.StringP("addr", "a", ":8080", "HTTP listen address")
	f.String("base-path", "", "URL prefix for sub-path deployments (e.g. /quiz)")
	return cmd
}

func playCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Browse and answer the quiz interactively in the terminal",
		RunE:  runPlay,
	}
	addBankFlags(cmd)
	cmd.Flags().Int("max-attempts", 2, "Wrong answers allowed before a question is revealed")
	return cmd
}

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the quiz page HTML",
		RunE:  runRender,
	}
	addBankFlags(cmd)
	cmd.Flags().StringP("output", "o", "-", "Output file path (- for stdout)")
	return cmd
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the question bank as JSON",
		RunE:  runExport,
	}
	addBankFlags(cmd)
	f := cmd.Flags()
	f.String("title", "", "Bank title for output")
	f.StringP("output", "o", "-", "Output file path (- for stdout)")
	return cmd
}

func setupLogging(cmd *cobra.Command) {
	v := viperForCmd(cmd)

	var logLevel slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		logHandler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	slog.SetDefault(slog.New(logHandler))
}

// viperForCmd binds a command's flags and environment to a fresh viper instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("QUIZVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("quizview")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/quizview")
	v.AddConfigPath("/etc/quizview")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	return v
}

// openBank opens the database, imports any new questions files, and
// initializes the translation bundle.
func openBank(v *viper.Viper) (*store.Store, error) {
	db, err := store.New(v.GetString("db"))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := loadQuestions(db, v.GetStringSlice("questions")); err != nil {
		db.Close()
		return nil, fmt.Errorf("load questions: %w", err)
	}

	if err := appI18n.Init(v.GetString("lang")); err != nil {
		db.Close()
		return nil, fmt.Errorf("init i18n: %w", err)
	}

	return db, nil
}

// buildDocument renders the page tree from the current bank content.
func buildDocument(ctx context.Context, db *store.Store) (*html.Node, error) {
	weeks, err := db.LoadBank()
	if err != nil {
		return nil, fmt.Errorf("load bank: %w", err)
	}
	return page.Build(ctx, weeks), nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	db, err := openBank(v)
	if err != nil {
		return err
	}
	defer db.Close()

	lang := v.GetString("lang")
	ctx := appI18n.WithLocalizer(context.Background(), appI18n.NewLocalizer(lang))

	doc, err := buildDocument(ctx, db)
	if err != nil {
		return err
	}
	pageHTML := []byte(dom.RenderString(doc))

	// Normalize base path.
	basePath := strings.TrimRight(v.GetString("base-path"), "/")
	if basePath != "" && !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(appI18n.Middleware(lang))

	serveIndex := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(pageHTML)
	}
	healthz := func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}

	if basePath != "" {
		r.Route(basePath, func(sub chi.Router) {
			sub.Get("/", serveIndex)
			sub.Get("/healthz", healthz)
		})
		r.Get(basePath, func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, basePath+"/", http.StatusMovedPermanently)
		})
	} else {
		r.Get("/", serveIndex)
		r.Get("/healthz", healthz)
	}

	addr := v.GetString("addr")
	slog.Info("starting server",
		"addr", addr,
		"lang", lang,
		"base_path", basePath,
		"page_bytes", len(pageHTML),
	)
	return http.ListenAndServe(addr, r)
}

func runRender(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	db, err := openBank(v)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := appI18n.WithLocalizer(context.Background(), appI18n.NewLocalizer(v.GetString("lang")))
	doc, err := buildDocument(ctx, db)
	if err != nil {
		return err
	}

	w, closeFn, err := openOutput(v.GetString("output"))
	if err != nil {
		return err
	}
	defer closeFn()

	if err := dom.Render(w, doc); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, _ = fmt.Fprintln(w)
	return nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	db, err := openBank(v)
	if err != nil {
		return err
	}
	defer db.Close()

	export, err := db.ExportBank(v.GetString("title"), v.GetString("lang"))
	if err != nil {
		return fmt.Errorf("export bank: %w", err)
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	w, closeFn, err := openOutput(v.GetString("output"))
	if err != nil {
		return err
	}
	defer closeFn()

	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	// Ensure trailing newline.
	_, _ = fmt.Fprintln(w)

	return nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func loadQuestions(db *store.Store, paths []string) error {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		hash := sha256sum(data)
		storedHash, err := db.GetImportedFileHash(path)
		if err != nil {
			return fmt.Errorf("check import status for %s: %w", path, err)
		}

		if storedHash == hash {
			slog.Info("questions file unchanged, skipping", "path", path)
			continue
		}
		if storedHash != "" {
			slog.Warn("questions file changed since last import, skipping to keep the page stable",
				"path", path)
			continue
		}

		var weeks []model.WeekImport
		if err := json.Unmarshal(data, &weeks); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		imported := 0
		for _, wi := range weeks {
			weekID, err := db.UpsertWeek(wi.Week, wi.Title)
			if err != nil {
				return fmt.Errorf("upsert week %d from %s: %w", wi.Week, path, err)
			}
			for pos, qi := range wi.Questions {
				var opts []model.Option
				for _, oi := range qi.Options {
					opts = append(opts, model.Option{Text: oi.Text, Correct: oi.Correct})
				}
				_, err := db.InsertQuestion(model.Question{
					WeekID:      weekID,
					Position:    pos,
					Text:        qi.Text,
					Explanation: qi.Explanation,
					Options:     opts,
				})
				if err != nil {
					return fmt.Errorf("insert question from %s: %w", path, err)
				}
				imported++
			}
		}

		if err := db.SetImportedFileHash(path, hash); err != nil {
			return fmt.Errorf("record import for %s: %w", path, err)
		}
		slog.Info("imported questions", "path", path, "count", imported)
	}

	return nil
}

func sha256sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
