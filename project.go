package shodoc

import "context"

// Project represents a single catalog entry describing a software project.
// Projects are immutable once loaded: the pipeline only reads them.
// Identity is the (Category, Name) pair; the catalog guarantees uniqueness
// within a category.
type Project struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	RepoURL     string `json:"repoUrl"`

	// SourcePath optionally points at a local source file or directory used
	// by the static-analysis fallback tier. Empty when no checkout is known.
	SourcePath string `json:"sourcePath,omitempty"`
}

// Validate returns an error if the project contains invalid fields.
func (p *Project) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "project name required")
	}
	if p.Category == "" {
		return Errorf(EINVALID, "project category required")
	}
	if p.RepoURL == "" {
		return Errorf(EINVALID, "project repository URL required")
	}
	return nil
}

// CatalogLoader loads the project catalog. The catalog is the always
// available source of last-resort metadata: loading may fail (fatal
// configuration), but a loaded catalog never does.
type CatalogLoader interface {
	// Load parses the catalog and returns its projects in catalog order.
	// Returns EINVALID if the catalog contains no valid entries.
	Load(ctx context.Context) ([]*Project, error)
}
