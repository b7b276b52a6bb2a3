package goquery_test

import (
	"testing"

	"github.com/fwojciec/newsroom"
	"github.com/fwojciec/newsroom/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkSelector_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("returns navigation links before content links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<main><a href="/news/item">Item</a></main>
<header><a href="/">Home</a></header>
<nav><a href="/government">Government</a></nav>
<div class="navigation"><a href="calendar">Calendar</a></div>
<footer><a href="/contact-us">Contact</a></footer>
<article><a href="https://www.longbeachny.gov/explore">Explore</a></article>
</body></html>`

		links, err := goquery.NewLinkSelector().ExtractLinks(html)

		require.NoError(t, err)
		require.Len(t, links, 6)

		var urls []string
		for _, l := range links {
			urls = append(urls, l.URL)
		}
		assert.Equal(t, []string{
			"/",
			"/government",
			"calendar",
			"/contact-us",
			"/news/item",
			"https://www.longbeachny.gov/explore",
		}, urls)
		assert.Equal(t, newsroom.LinkSourceNavigation, links[0].Source)
		assert.Equal(t, newsroom.LinkSourceContent, links[4].Source)
		assert.Equal(t, "Item", links[4].Text)
	})

	t.Run("skips anchors without href", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.NewLinkSelector().ExtractLinks(`<nav><a>None</a><a href="">Empty</a><a href="/x">X</a></nav>`)

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "/x", links[0].URL)
	})

	t.Run("ignores links outside known regions", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.NewLinkSelector().ExtractLinks(`<div><a href="/orphan">Orphan</a></div>`)

		require.NoError(t, err)
		assert.Empty(t, links)
	})
}

func TestLinkSelector_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "navigation", goquery.NewLinkSelector().Name())
}
