// Package md synthesizes Markdown page bodies for projects whose README
// could not be fetched, using fluent builders rather than string pasting.
package md

import (
	"io"

	"github.com/nao1215/markdown"
	"github.com/shodoc/shodoc"
)

// maxListed caps how many functions, types or imports a synthesized body
// lists per section.
const maxListed = 10

// CatalogBody builds the minimal last-resort body from catalog metadata.
// It requires no I/O and never fails.
func CatalogBody(p *shodoc.Project) string {
	md := markdown.NewMarkdown(io.Discard)

	md.H1(p.Name)
	if p.Description != "" {
		md.PlainText(p.Description)
	}
	md.PlainText("**Repository:** " + p.RepoURL)
	md.HorizontalRule()
	md.PlainText("*This page was generated from catalog metadata; the project publishes no README.*")

	return md.String()
}

// SourceBody builds a body from static-analysis metadata. An empty
// SourceMetadata still yields a usable page around the catalog fields.
func SourceBody(p *shodoc.Project, meta *shodoc.SourceMetadata) string {
	md := markdown.NewMarkdown(io.Discard)

	md.H1(p.Name)
	switch {
	case meta.Description != "":
		md.PlainText(meta.Description)
	case p.Description != "":
		md.PlainText(p.Description)
	}
	md.PlainText("**Repository:** " + p.RepoURL)

	if len(meta.Functions) > 0 {
		md.H2("Functions")
		md.BulletList(cap10(meta.Functions)...)
	}
	if len(meta.Types) > 0 {
		md.H2("Types")
		md.BulletList(cap10(meta.Types)...)
	}
	if len(meta.Imports) > 0 {
		md.H2("Imports")
		md.BulletList(cap10(meta.Imports)...)
	}

	md.HorizontalRule()
	md.PlainText("*This page was generated by static analysis of the project's entry-point source file.*")

	return md.String()
}

func cap10(items []string) []string {
	if len(items) > maxListed {
		return items[:maxListed]
	}
	return items
}
