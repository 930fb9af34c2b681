// Package goast provides a shodoc.SourceExtractor built on go/parser.
// It recovers package documentation, exported declarations and imports from
// a single Go entry-point file, for projects that publish no README.
package goast

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shodoc/shodoc"
)

// maxDescriptionLen bounds synthesized descriptions.
const maxDescriptionLen = 200

// entryFileNames are candidate entry-point files probed by LocateEntryFile,
// in preference order. The directory's own name (plus ".go") is probed last.
var entryFileNames = []string{"doc.go", "main.go"}

// Ensure Extractor implements shodoc.SourceExtractor at compile time.
var _ shodoc.SourceExtractor = (*Extractor)(nil)

// Extractor performs light static analysis of Go source files.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the file and returns its metadata. Missing files yield
// ENOTFOUND and unparseable content EINVALID; a syntactically valid file
// with no declarations yields a valid result with empty fields.
func (e *Extractor) Extract(path string) (*shodoc.SourceMetadata, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, shodoc.Errorf(shodoc.ENOTFOUND, "source file %q not found", path)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, shodoc.Errorf(shodoc.EINVALID, "parsing %q: %v", path, err)
	}

	meta := &shodoc.SourceMetadata{
		Name: file.Name.Name,
	}

	if file.Doc != nil {
		meta.Description = summarize(file.Doc.Text())
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv != nil || !d.Name.IsExported() {
				continue
			}
			meta.Functions = append(meta.Functions, d.Name.Name)
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || !ts.Name.IsExported() {
					continue
				}
				meta.Types = append(meta.Types, ts.Name.Name)
			}
		}
	}

	for _, imp := range file.Imports {
		if p, err := strconv.Unquote(imp.Path.Value); err == nil {
			meta.Imports = append(meta.Imports, p)
		}
	}

	// No package doc: fall back to the doc comment of main, then of the
	// first documented exported declaration.
	if meta.Description == "" {
		meta.Description = fallbackDescription(file)
	}

	return meta, nil
}

// LocateEntryFile returns the most likely entry-point file under dir.
// A path that is already a Go file is returned as-is.
// Returns ENOTFOUND when no candidate exists.
func LocateEntryFile(dir string) (string, error) {
	if strings.HasSuffix(dir, ".go") {
		if _, err := os.Stat(dir); err == nil {
			return dir, nil
		}
		return "", shodoc.Errorf(shodoc.ENOTFOUND, "source file %q not found", dir)
	}

	candidates := make([]string, 0, len(entryFileNames)+1)
	candidates = append(candidates, entryFileNames...)
	candidates = append(candidates, filepath.Base(dir)+".go")

	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", shodoc.Errorf(shodoc.ENOTFOUND, "no entry-point file under %q", dir)
}

// summarize reduces a doc comment to its first non-empty line, truncated
// to maxDescriptionLen runes.
func summarize(doc string) string {
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		runes := []rune(line)
		if len(runes) > maxDescriptionLen {
			return string(runes[:maxDescriptionLen]) + "..."
		}
		return line
	}
	return ""
}

func fallbackDescription(file *ast.File) string {
	var firstDocumented string
	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		if fd.Name.Name == "main" {
			return summarize(fd.Doc.Text())
		}
		if firstDocumented == "" && fd.Name.IsExported() {
			firstDocumented = summarize(fd.Doc.Text())
		}
	}
	return firstDocumented
}
