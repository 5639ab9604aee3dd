package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Game state errors
	ErrCodeGameNotStarted   ErrorCode = "GAME_NOT_STARTED"
	ErrCodeGameAlreadyEnded ErrorCode = "GAME_ALREADY_ENDED"
	ErrInvalidState         ErrorCode = "INVALID_STATE"

	// Construction errors. These indicate a broken caller invariant and are
	// raised with panic rather than returned.
	ErrInvalidCard   ErrorCode = "INVALID_CARD"
	ErrFaceMatch     ErrorCode = "FACE_MATCH"
	ErrFaceMismatch  ErrorCode = "FACE_MISMATCH"
	ErrInvalidBattle ErrorCode = "INVALID_BATTLE"

	// Input errors
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	ErrInvalidConfig   ErrorCode = "INVALID_CONFIG"

	// System errors
	ErrInternalError  ErrorCode = "INTERNAL_ERROR"
	ErrResultNotFound ErrorCode = "RESULT_NOT_FOUND"
)

// Sentinels for the invalid-state conditions a Game can report.
var (
	ErrGameNotStarted   = NewGameError(ErrCodeGameNotStarted, "game has not started")
	ErrGameAlreadyEnded = NewGameError(ErrCodeGameAlreadyEnded, "game has already ended")
)

// GameError represents a game-related error
type GameError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *GameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *GameError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a GameError with the same code, so that
// errors.Is works against the package sentinels.
func (e *GameError) Is(target error) bool {
	t, ok := target.(*GameError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewGameError creates a new GameError
func NewGameError(code ErrorCode, message string) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error in a GameError
func WrapError(code ErrorCode, message string, err error) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsGameError checks if an error is a GameError and has a specific code
func IsGameError(err error, code ErrorCode) bool {
	var gameErr *GameError
	if err == nil {
		return false
	}
	if ok := As(err, &gameErr); !ok {
		return false
	}
	return gameErr.Code == code
}

// As finds the first GameError in err's chain and stores it in target
func As(err error, target **GameError) bool {
	if target == nil || err == nil {
		return false
	}
	return errors.As(err, target)
}
