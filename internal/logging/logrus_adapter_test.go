package logging

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"Debug level text", "debug", "text"},
		{"Info level json", "info", "json"},
		{"Invalid level falls back to info", "noisy", "text"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tc.level, tc.format)
			require.NotNil(t, logger)

			// Must not panic for any level
			logger.Debug("debug message")
			logger.Info("info message", Field{Key: "k", Value: "v"})
			logger.Warn("warn message")
			logger.Error("error message")
		})
	}
}

func TestNewLogrusAdapterFromLogger(t *testing.T) {
	assert.NotNil(t, NewLogrusAdapterFromLogger(nil))
	assert.NotNil(t, NewLogrusAdapterFromLogger(logrus.New()))
}

func TestLogrusAdapterChaining(t *testing.T) {
	logger := NewLogrusAdapter("debug", "text")

	chained := logger.WithError(errors.New("boom")).WithField("file", "report.pdf")
	require.NotNil(t, chained)
	chained.Warn("chained message")
}

func TestMockLoggerRecords(t *testing.T) {
	mock := NewMockLogger()

	mock.Info("processing", Field{Key: "file", Value: "a.pdf"})
	mock.WithError(errors.New("bad")).Error("failed")

	require.Len(t, mock.Entries, 2)
	assert.Equal(t, "info", mock.Entries[0].Level)
	assert.True(t, mock.HasMessage("failed"))
	assert.Equal(t, "error", mock.Entries[1].Fields[0].Key)
}
