// Package corpus extracts raw annotated verses from ITX corpus files and
// converts whole documents through the verse builder.
package corpus

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/veda-tools/vedadiff/internal/verse"
)

// RawVerse is one labeled verse of ITRANS text as found in a corpus file,
// accent escapes and pada separators intact.
type RawVerse struct {
	Label string
	Text  string
}

// Document is a converted text, in the JSON shape the site consumes.
type Document struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	Source string        `json:"source"`
	Verses []verse.Verse `json:"verses"`
}

type Converter struct {
	builder     *verse.Builder
	parallelism int
}

func NewConverter(b *verse.Builder, parallelism int) *Converter {
	if parallelism < 1 {
		parallelism = 1
	}
	return &Converter{builder: b, parallelism: parallelism}
}

// Convert builds every verse of a document. Verses are independent, so they
// convert in parallel; output order matches input order regardless. The
// returned diagnostics align index-for-index with the verses.
func (c *Converter) Convert(ctx context.Context, id, title, source string, raws []RawVerse) (Document, []verse.Diagnostics, error) {
	verses := make([]verse.Verse, len(raws))
	diags := make([]verse.Diagnostics, len(raws))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallelism)
	for i, raw := range raws {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			verses[i], diags[i] = c.builder.Build(raw.Label, raw.Text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Document{}, nil, err
	}

	return Document{ID: id, Title: title, Source: source, Verses: verses}, diags, nil
}
