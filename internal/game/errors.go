package game

import "errors"

var (
	// ErrNoSession is returned when an operation is invoked with no
	// attached session.
	ErrNoSession = errors.New("no active session")

	// ErrTaskNotFound is returned when a task id does not match the catalog.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskAlreadyCompleted is returned when completion is re-submitted
	// for a task the controller's own state already marks completed.
	ErrTaskAlreadyCompleted = errors.New("task already completed")

	// ErrItemNotFound is returned when an item id does not match the catalog.
	ErrItemNotFound = errors.New("item not found")

	// ErrTargetNotFound is returned when a hack target id does not match
	// any rival agent.
	ErrTargetNotFound = errors.New("target not found")

	// ErrNotTriviaTask is returned when a trivia operation is invoked on a
	// simple task.
	ErrNotTriviaTask = errors.New("task has no trivia challenge")
)
