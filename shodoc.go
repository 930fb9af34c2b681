// Package shodoc builds a documentation site from a catalog of software
// projects. It parses an awesome-list style catalog, fetches each project's
// README with a tiered fallback chain (README fetch, source-file static
// analysis, catalog metadata), and writes front-matter-tagged Markdown pages
// into a category-based folder tree ready for a static-site generator.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, github/, goast/).
package shodoc
