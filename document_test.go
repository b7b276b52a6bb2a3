package newsroom_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fwojciec/newsroom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilenameDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		want     string
		kind     newsroom.DateKind
	}{
		{"dash date", "Agenda 1-14-2025.pdf", "01-14-2025", newsroom.DateFull},
		{"padded dash date", "agenda_12-03-2024.pdf", "12-03-2024", newsroom.DateFull},
		{"dot date two digit year", "Council 2.4.25 agenda.pdf", "02-04-2025", newsroom.DateFull},
		{"dot date four digit year", "Council 10.21.2025.pdf", "10-21-2025", newsroom.DateFull},
		{"bare year", "budget-2024-final.pdf", "2024", newsroom.DateYear},
		{"other year", "minutes 2022.pdf", "2022", newsroom.DateYear},
		{"unknown", "agenda.pdf", "unknown", newsroom.DateUnknown},
		{"empty", "", "unknown", newsroom.DateUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newsroom.ParseFilenameDate(tt.filename)

			assert.Equal(t, tt.kind, d.Kind)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDocumentDate_JSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes as formatted string", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(newsroom.FullDate(3, 7, 2025))
		require.NoError(t, err)
		assert.JSONEq(t, `"03-07-2025"`, string(data))
	})

	t.Run("decodes ISO dates from older corpus files", func(t *testing.T) {
		t.Parallel()

		var d newsroom.DocumentDate
		require.NoError(t, json.Unmarshal([]byte(`"2025-08-19"`), &d))
		assert.Equal(t, newsroom.FullDate(8, 19, 2025), d)
	})

	t.Run("decodes unrecognized text as unknown", func(t *testing.T) {
		t.Parallel()

		var d newsroom.DocumentDate
		require.NoError(t, json.Unmarshal([]byte(`"sometime"`), &d))
		assert.Equal(t, newsroom.DateUnknown, d.Kind)
	})
}

func TestDateFromTime(t *testing.T) {
	t.Parallel()

	d := newsroom.DateFromTime(time.Date(2025, 11, 2, 8, 0, 0, 0, time.UTC))

	assert.Equal(t, "11-02-2025", d.String())
}

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	assert.Error(t, (&newsroom.Document{}).Validate())
	assert.NoError(t, (&newsroom.Document{Filename: "a.pdf"}).Validate())
}

func TestDocument_IsPlaceholder(t *testing.T) {
	t.Parallel()

	assert.True(t, (&newsroom.Document{Content: "Placeholder content for agenda"}).IsPlaceholder())
	assert.True(t, (&newsroom.Document{Content: "Error processing PDF: bad xref"}).IsPlaceholder())
	assert.False(t, (&newsroom.Document{Content: "The council approved the budget."}).IsPlaceholder())
}

func TestCountWords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, newsroom.CountWords("   "))
	assert.Equal(t, 4, newsroom.CountWords(" one two\tthree\nfour "))
}

func TestDocument_Key(t *testing.T) {
	t.Parallel()

	pdf := &newsroom.Document{Filename: "agenda.pdf", Source: "agendas/agenda.pdf", Type: newsroom.DocumentTypePDF}
	web := &newsroom.Document{Filename: "web_general_page_3.txt", Source: "https://example.com/news", Type: newsroom.DocumentTypeWeb}
	legacy := &newsroom.Document{Filename: "web_general_page_4.txt", Type: newsroom.DocumentTypeWeb}

	assert.Equal(t, "agenda.pdf", pdf.Key())
	assert.Equal(t, "https://example.com/news", web.Key())
	assert.Equal(t, "web_general_page_4.txt", legacy.Key())
}
