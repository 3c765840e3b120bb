package logging

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanqiangyes/board-game/internal/card"
	"github.com/tanqiangyes/board-game/internal/validator"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(&buf, level)
	l.now = func() time.Time {
		return time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
	}
	return l, &buf
}

func TestLevels(t *testing.T) {
	l, buf := newTestLogger(WARN)

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	assert.Empty(t, buf.String())

	l.Warn("warn %d", 3)
	l.Error("error %d", 4)
	out := buf.String()
	assert.Contains(t, out, "[2024-01-02 03:04:05.006] WARN  logger_test.go:")
	assert.Contains(t, out, ": warn 3\n")
	assert.Contains(t, out, "ERROR logger_test.go:")
	assert.Contains(t, out, ": error 4\n")

	buf.Reset()
	l.SetLevel(DEBUG)
	l.Debug("now visible")
	assert.Contains(t, buf.String(), "DEBUG")
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected Level
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"", INFO},
		{"warning", WARN},
		{"error", ERROR},
	}
	for _, tc := range testCases {
		level, err := ParseLevel(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, level)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLogError(t *testing.T) {
	l, buf := newTestLogger(INFO)

	_, err := card.RankFromOrdinal(99)
	l.LogError(fmt.Errorf("card 3: %w", err))
	assert.Contains(t, buf.String(), "Invalid rank value:\n\tValue: 99")

	buf.Reset()
	l.LogError(&validator.CompositionError{Problems: []string{"first", "second"}})
	assert.Contains(t, buf.String(), "Invalid deck composition:\n\tfirst\n\tsecond")

	buf.Reset()
	l.LogError(errors.New("boom"))
	assert.Contains(t, buf.String(), "Unexpected error: boom")
}
