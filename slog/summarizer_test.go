package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/newsroom/mock"
	nslog "github.com/fwojciec/newsroom/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("logs input size and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Summarizer{
			SummarizeFn: func(_ context.Context, text, query string) (string, error) {
				return "The council approved the budget.", nil
			},
		}

		s := nslog.NewLoggingSummarizer(inner, logger)
		summary, err := s.Summarize(context.Background(), "budget minutes", "budget")

		require.NoError(t, err)
		assert.Equal(t, "The council approved the budget.", summary)
		output := buf.String()
		assert.Contains(t, output, "summarize")
		assert.Contains(t, output, "chars=14")
		assert.Contains(t, output, "query=budget")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Summarizer{
			SummarizeFn: func(_ context.Context, _, _ string) (string, error) {
				return "", errors.New("quota exceeded")
			},
		}

		s := nslog.NewLoggingSummarizer(inner, logger)
		_, err := s.Summarize(context.Background(), "budget minutes", "")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"quota exceeded\"")
	})
}
