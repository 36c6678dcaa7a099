// Package page builds the quiz document tree from question bank content
// and scans an existing document for the quiz markers the controller
// operates on.
package page

// Marker vocabulary shared by the builder, the scanner, and the
// controller. These are the classes, ids, and attributes the page's
// stylesheet keys off.
const (
	ClassWeekSection  = "week-section"
	ClassWeekHeader   = "week-header"
	ClassWeekBody     = "week-body"
	ClassCollapsed    = "collapsed"
	ClassQuestionCard = "question-card"
	ClassQuestionText = "question-text"
	ClassOptions      = "options"
	ClassOption       = "option"
	ClassExplanation  = "explanation"
	ClassShowAnswer   = "show-answer"
	ClassModeButton   = "mode-btn"
	ClassActive       = "active"
	ClassFabMain      = "fab-main"
	ClassFabActions   = "fab-actions"
	ClassFabAction    = "fab-action"
	ClassOpen         = "open"

	// Per-option answer state.
	ClassUserCorrect   = "user-correct"
	ClassUserIncorrect = "user-incorrect"
	ClassRevealed      = "revealed"
	ClassVisible       = "visible"

	IDSurface       = "single-view"
	IDProgress      = "quiz-progress"
	IDPrev          = "prev-btn"
	IDNext          = "next-btn"
	IDFab           = "fab"
	IDHeader        = "page-header"
	IDHeaderToggle  = "header-toggle"
	IDStatQuestions = "stat-questions"
	IDStatWeeks     = "stat-weeks"
	IDQuizList      = "quiz-list"

	AttrCorrect  = "data-correct"
	AttrMode     = "data-mode"
	AttrAction   = "data-action"
	AttrViewMode = "data-view-mode"
	AttrWeek     = "data-week"
	AttrDisabled = "disabled"

	ActionExpandAll   = "expand-all"
	ActionCollapseAll = "collapse-all"
	ActionScrollTop   = "scroll-top"
)
