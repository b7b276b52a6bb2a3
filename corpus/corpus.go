// Package corpus maintains the searchable document collection: loading it,
// detecting staleness, ingesting agenda files, and merging crawl results.
package corpus

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/newsroom"
)

// Corpus is an insertion-ordered collection of documents indexed by key.
type Corpus struct {
	docs  []*newsroom.Document
	index map[string]int
}

// New returns a corpus holding docs in order. Documents with duplicate
// keys are all kept.
func New(docs ...*newsroom.Document) *Corpus {
	c := &Corpus{
		docs:  make([]*newsroom.Document, 0, len(docs)),
		index: make(map[string]int, len(docs)),
	}
	for _, d := range docs {
		c.Add(d, false)
	}
	return c
}

// Add inserts doc. With dedup, a document with the same key replaces the
// earliest existing one in place; otherwise doc is appended.
// It reports whether the corpus grew.
func (c *Corpus) Add(doc *newsroom.Document, dedup bool) bool {
	key := doc.Key()
	if i, ok := c.index[key]; ok && dedup {
		c.docs[i] = doc
		return false
	}
	if _, ok := c.index[key]; !ok {
		c.index[key] = len(c.docs)
	}
	c.docs = append(c.docs, doc)
	return true
}

// Get returns the earliest document with the given key.
func (c *Corpus) Get(key string) (*newsroom.Document, bool) {
	i, ok := c.index[key]
	if !ok {
		return nil, false
	}
	return c.docs[i], true
}

// Documents returns the documents in insertion order.
func (c *Corpus) Documents() []*newsroom.Document {
	return c.docs
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	return len(c.docs)
}

// HasPlaceholders reports whether any document stands in for a file that
// failed to process.
func (c *Corpus) HasPlaceholders() bool {
	for _, d := range c.docs {
		if d.IsPlaceholder() {
			return true
		}
	}
	return false
}

// ContentHash returns the xxhash digest of content in hex.
func ContentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
