package gemini_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/newsroom"
	"github.com/fwojciec/newsroom/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestSummarizer_Summarize_ReturnsErrorWhenTextEmpty(t *testing.T) {
	t.Parallel()

	s := gemini.NewSummarizer(nil, "")

	_, err := s.Summarize(context.Background(), "  \n", "")

	require.Error(t, err)
	assert.Equal(t, newsroom.EINVALID, newsroom.ErrorCode(err))
}

func TestSummarizer_Summarize_ReturnsErrorWithoutClient(t *testing.T) {
	t.Parallel()

	s := gemini.NewSummarizer(nil, "")

	_, err := s.Summarize(context.Background(), "The council approved the budget.", "budget")

	require.Error(t, err)
	assert.Equal(t, newsroom.EINTERNAL, newsroom.ErrorCode(err))
	assert.Contains(t, newsroom.ErrorMessage(err), "not configured")
}

func TestNewLimiter(t *testing.T) {
	t.Parallel()

	t.Run("non-positive rate disables limiting", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, gemini.NewLimiter(0))
		assert.Nil(t, gemini.NewLimiter(-1))
	})

	t.Run("allows a minute's quota at once", func(t *testing.T) {
		t.Parallel()

		l := gemini.NewLimiter(10)

		require.NotNil(t, l)
		assert.Equal(t, rate.Every(6*time.Second), l.Limit())
		assert.Equal(t, 10, l.Burst())
	})
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.7, *config.Temperature, 0.001)
	assert.Equal(t, int32(250), config.MaxOutputTokens)
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	t.Run("summary prompt without query", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildPrompt("The council approved the budget.", "")

		assert.True(t, strings.HasPrefix(prompt, "Summarize this city council document in 2-3 sentences"))
		assert.True(t, strings.HasSuffix(prompt, "\n\nThe council approved the budget."))
	})

	t.Run("query prompt quotes the query", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildPrompt("The council approved the budget.", "parking permits")

		assert.Contains(t, prompt, `answer the query: "parking permits"`)
		assert.Contains(t, prompt, "Document content: The council approved the budget.")
	})

	t.Run("truncates long text by characters", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("é", gemini.MaxInputChars) + "TAIL"

		prompt := gemini.BuildPrompt(text, "")

		assert.NotContains(t, prompt, "TAIL")
		assert.Contains(t, prompt, strings.Repeat("é", gemini.MaxInputChars))
	})
}
