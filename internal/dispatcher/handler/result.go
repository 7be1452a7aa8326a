package handler

import "fmt"

// ResultStatus indicates the outcome of an action.
type ResultStatus uint8

const (
	// StatusOK indicates the command changed something.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the command ran but changed nothing.
	StatusNoOp
	// StatusError indicates an error occurred.
	StatusError
	// StatusCancelled indicates a hook stopped the dispatch.
	StatusCancelled
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is the outcome of a dispatched command.
type Result struct {
	Status  ResultStatus
	Error   error
	Message string

	// Saved is the number of saved regions after a selection command.
	Saved int

	// Outcome names what a toggle did. Empty for every other command.
	Outcome string

	// Restored is set when the selection was already restored from the
	// selection history before the handler ran.
	Restored bool

	// RecordAs overrides the name the command is recorded under in the
	// view's generic command history.
	RecordAs string

	// SkipRecord keeps the command out of the generic command history.
	SkipRecord bool
}

// IsOK returns true if the result indicates success.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// IsError returns true if the result indicates an error.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// Recordable reports whether the command belongs in the generic command
// history. Only commands that changed something are recorded.
func (r Result) Recordable() bool {
	return r.Status == StatusOK && !r.SkipRecord
}

// RecordName returns the name to record a command dispatched as action.
func (r Result) RecordName(action string) string {
	if r.RecordAs != "" {
		return r.RecordAs
	}
	return action
}

// Success creates a successful result.
func Success() Result {
	return Result{Status: StatusOK}
}

// NoOp creates a no-operation result.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// Error creates an error result.
func Error(err error) Result {
	return Result{Status: StatusError, Error: err}
}

// Errorf creates an error result with a formatted message.
func Errorf(format string, args ...any) Result {
	return Result{
		Status: StatusError,
		Error:  fmt.Errorf(format, args...),
	}
}

// Cancelled creates a cancelled result with the reason as its message.
func Cancelled(reason string) Result {
	return Result{Status: StatusCancelled, Message: reason}
}

// WithMessage returns a copy of the result with the specified message.
func (r Result) WithMessage(msg string) Result {
	r.Message = msg
	return r
}

// WithSaved returns a copy of the result carrying the saved region count.
func (r Result) WithSaved(n int) Result {
	r.Saved = n
	return r
}

// WithOutcome returns a copy of the result carrying a toggle outcome.
func (r Result) WithOutcome(outcome string) Result {
	r.Outcome = outcome
	return r
}

// WithRestored returns a copy of the result marked as restored.
func (r Result) WithRestored() Result {
	r.Restored = true
	return r
}

// WithRecordAs returns a copy of the result recorded under name.
func (r Result) WithRecordAs(name string) Result {
	r.RecordAs = name
	return r
}

// WithoutRecord returns a copy of the result that is not recorded.
func (r Result) WithoutRecord() Result {
	r.SkipRecord = true
	return r
}
