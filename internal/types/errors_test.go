package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (s *ErrorTestSuite) TestNewGameError() {
	err := NewGameError(ErrInvalidCard, "unknown face")

	s.Equal(ErrInvalidCard, err.Code, "Error code should match")
	s.Equal("unknown face", err.Message, "Error message should match")
	s.Nil(err.Err, "Underlying error should be nil")
}

func (s *ErrorTestSuite) TestWrapError() {
	underlying := errors.New("bad number")

	err := WrapError(ErrInvalidConfig, "WARSIM_GAMES", underlying)

	s.Equal(ErrInvalidConfig, err.Code)
	s.Equal(underlying, err.Err, "Underlying error should match")
	s.ErrorIs(err, underlying, "Unwrap should expose the cause")
}

func (s *ErrorTestSuite) TestErrorString() {
	testCases := []struct {
		name     string
		err      *GameError
		expected string
	}{
		{
			name:     "Simple error",
			err:      NewGameError(ErrCodeGameNotStarted, "game has not started"),
			expected: "GAME_NOT_STARTED: game has not started",
		},
		{
			name:     "Wrapped error",
			err:      WrapError(ErrInvalidConfig, "bad profile", errors.New("yaml: line 2")),
			expected: "INVALID_CONFIG: bad profile (yaml: line 2)",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.err.Error())
		})
	}
}

func (s *ErrorTestSuite) TestIsGameError() {
	wrapped := fmt.Errorf("reading battle: %w", ErrGameAlreadyEnded)

	testCases := []struct {
		name     string
		err      error
		code     ErrorCode
		expected bool
	}{
		{name: "Matching game error", err: ErrGameNotStarted, code: ErrCodeGameNotStarted, expected: true},
		{name: "Non-matching game error", err: ErrGameNotStarted, code: ErrCodeGameAlreadyEnded, expected: false},
		{name: "Wrapped game error", err: wrapped, code: ErrCodeGameAlreadyEnded, expected: true},
		{name: "Regular error", err: errors.New("regular"), code: ErrInternalError, expected: false},
		{name: "Nil error", err: nil, code: ErrInternalError, expected: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, IsGameError(tc.err, tc.code))
		})
	}
}

func (s *ErrorTestSuite) TestErrorsIsMatchesByCode() {
	fresh := NewGameError(ErrCodeGameNotStarted, "different message")

	s.True(errors.Is(fresh, ErrGameNotStarted))
	s.False(errors.Is(fresh, ErrGameAlreadyEnded))
}

func (s *ErrorTestSuite) TestAs() {
	var target *GameError

	s.True(As(ErrGameAlreadyEnded, &target))
	s.Equal(ErrGameAlreadyEnded, target)
	s.False(As(errors.New("regular"), &target))
	s.False(As(nil, &target))
	s.False(As(ErrGameAlreadyEnded, nil))
}
