package shodoc

// SourceMetadata holds metadata recovered from light static analysis of a
// project's entry-point source file. A value with all fields empty is a
// valid result (an empty but parseable file), distinct from a failure.
type SourceMetadata struct {
	// Name is the package or file name the metadata was derived from.
	Name string

	// Description is the first sentence of the top-level doc comment,
	// truncated to a reasonable length. May be empty.
	Description string

	// Functions lists exported top-level function names.
	Functions []string

	// Types lists exported top-level type names.
	Types []string

	// Imports lists the file's import paths.
	Imports []string
}

// SourceExtractor performs static analysis of a source file.
// Syntax errors, missing files and non-source content yield a clean failure
// signal (EINVALID or ENOTFOUND), never a panic.
type SourceExtractor interface {
	Extract(path string) (*SourceMetadata, error)
}
