package main

import (
	"fmt"

	"github.com/fwojciec/newsroom"
)

// Run executes the page command.
func (c *PageCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsroom.ErrorMessage(err))
		return err
	}

	if c.Markdown {
		return c.printMarkdown(deps, html)
	}

	extracted, err := deps.Extractor.Extract(html, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsroom.ErrorMessage(err))
		return err
	}

	page := &newsroom.PageRecord{
		URL:      c.URL,
		Title:    extracted.Title,
		Category: newsroom.ClassifyCategory(c.URL),
		Content:  extracted.Content,
	}

	fmt.Fprintf(deps.Stdout, "URL: %s\nCategory: %s\nWords: %d\n\n", page.URL, page.Category, page.Content.WordCount)
	fmt.Fprintln(deps.Stdout, newsroom.FormatPage(page))
	return nil
}

func (c *PageCmd) printMarkdown(deps *Dependencies, html string) error {
	article, err := deps.Articles.ExtractArticle(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsroom.ErrorMessage(err))
		return err
	}
	if article.ContentHTML == "" {
		fmt.Fprintf(deps.Stderr, "error: no readable content at %s\n", c.URL)
		return newsroom.Errorf(newsroom.ENOTFOUND, "no readable content at %s", c.URL)
	}

	md, err := deps.Converter.Convert(article.ContentHTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsroom.ErrorMessage(err))
		return err
	}

	if article.Title != "" {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", article.Title)
	}
	fmt.Fprintln(deps.Stdout, md)
	return nil
}
