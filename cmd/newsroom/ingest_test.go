package main_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/newsroom"
	main "github.com/fwojciec/newsroom/cmd/newsroom"
	"github.com/fwojciec/newsroom/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("counts ingested and failed agendas", func(t *testing.T) {
		t.Parallel()

		s := &stores{}
		deps, stdout, _ := newDeps(t, s)
		for _, name := range []string{"Agenda 1-14-2025.pdf", "Agenda 2-4-2025.pdf"} {
			require.NoError(t, os.WriteFile(filepath.Join(deps.Corpus.AgendaDir, name), []byte("%PDF"), 0644))
		}
		deps.Corpus.Text = &mock.TextExtractor{
			ExtractTextFn: func(_ context.Context, path string) (*newsroom.ExtractedText, error) {
				if filepath.Base(path) == "Agenda 2-4-2025.pdf" {
					return nil, errors.New("malformed xref table")
				}
				return &newsroom.ExtractedText{Text: "council approved budget", Pages: 2}, nil
			},
		}

		err := (&main.IngestCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Ingested 2 agenda documents (1 failed); corpus has 2 documents")
		assert.Len(t, s.docs, 2)
	})

	t.Run("reports store errors", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(t, &stores{})
		deps.Corpus.Documents = &mock.DocumentStore{
			LoadDocumentsFn: func(context.Context) ([]*newsroom.Document, error) {
				return nil, errors.New("disk full")
			},
		}

		err := (&main.IngestCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "disk full")
	})
}
