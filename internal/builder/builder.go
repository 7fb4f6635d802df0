// Package builder turns the full readme into chapter files and an index.
package builder

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/d-kuro/readme-chapters/internal/chapters"
	"github.com/d-kuro/readme-chapters/internal/errors"
	"github.com/d-kuro/readme-chapters/internal/logging"
	"github.com/d-kuro/readme-chapters/internal/storage"
	"github.com/d-kuro/readme-chapters/internal/toc"
)

// Options describes where the build reads from and writes to.
type Options struct {
	// Input is the full document.
	Input string
	// ChaptersDir receives one file per chapter.
	ChaptersDir string
	// TOC is the index file, written after every chapter.
	TOC string
	// Page holds the fixed parts of the index. Its Source defaults to Input.
	Page toc.Page
}

// Result summarizes a build.
type Result struct {
	Segments   int
	Chapters   []chapters.Chapter
	Skipped    []chapters.Skipped
	Collisions []chapters.Collision
	// Index is the rendered table of contents.
	Index string
}

// Builder runs the split and writes its output through a store.
type Builder struct {
	store  storage.Store
	logger *logging.Logger
	out    io.Writer
	opts   Options
}

// New creates a builder. Progress is printed to out, diagnostics go to logger.
func New(store storage.Store, logger *logging.Logger, out io.Writer, opts Options) *Builder {
	if opts.Page.Source == "" {
		opts.Page.Source = opts.Input
	}
	return &Builder{
		store:  store,
		logger: logger,
		out:    out,
		opts:   opts,
	}
}

// Build reads the document, writes every chapter in document order and then
// the index. The first failure aborts the build; the index is only written
// once all chapter files exist.
func (b *Builder) Build() (*Result, error) {
	doc, err := b.store.ReadFile(b.opts.Input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read document")
	}

	split := chapters.Split(doc, chapters.Options{
		Dir:   b.opts.ChaptersDir,
		Title: b.opts.Page.Title,
	})

	fmt.Fprintf(b.out, "Found %d potential chapters.\n", split.Segments)
	b.diagnose(doc, split)

	for _, ch := range split.Chapters {
		if err := b.store.WriteFile(ch.Filename, ch.Body); err != nil {
			return nil, errors.Wrap(err, "failed to write chapter %q", ch.Header)
		}
		b.logger.WithChapter(ch.Header).Debug("Wrote chapter",
			slog.String("file", ch.Filename),
			slog.Int("bytes", len(ch.Body)))
	}

	fmt.Fprintln(b.out, "\nOutput chapters:")
	entries := make([]toc.Entry, 0, len(split.Chapters))
	for _, ch := range split.Chapters {
		fmt.Fprintf(b.out, "%s\t%s\n", ch.Header, ch.Filename)
		entries = append(entries, toc.Entry{Header: ch.Header, Filename: ch.Filename})
	}

	index := b.opts.Page.Render(entries)
	if err := b.store.WriteFile(b.opts.TOC, index); err != nil {
		return nil, errors.Wrap(err, "failed to write table of contents")
	}

	b.logger.Info("Build completed",
		slog.Int("segments", split.Segments),
		slog.Int("chapters", len(split.Chapters)),
		slog.String("toc", b.opts.TOC))

	return &Result{
		Segments:   split.Segments,
		Chapters:   split.Chapters,
		Skipped:    split.Skipped,
		Collisions: split.Collisions,
		Index:      index,
	}, nil
}

func (b *Builder) diagnose(doc string, split chapters.Result) {
	for _, s := range split.Skipped {
		b.logger.Debug("Skipped segment",
			slog.String("header", s.Header),
			slog.String("reason", s.Reason.String()))
	}

	// Colliding chapters are still written; the later one wins on disk.
	for _, c := range split.Collisions {
		b.logger.WithFile(c.Filename).Warn("Chapter file overwritten by a later chapter",
			slog.String("first", c.First),
			slog.String("second", c.Second))
	}

	if hidden := chapters.HiddenDelimiters(doc); hidden > 0 {
		b.logger.Warn("Chapter delimiters found outside level-1 headings, a delimiter may sit inside a code block",
			slog.Int("count", hidden),
			slog.Int("delimiters", split.Segments-1))
	}
}
