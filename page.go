package shodoc

import "context"

// Page represents one generated documentation page. Every project yields
// exactly one page per run; pages are written to storage and not retained.
type Page struct {
	Title       string
	Description string
	Category    string
	URL         string
	Body        string // Markdown
}

// PageStore persists pages to storage with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, page *Page) error
	Commit() error
	Abort() error
}
