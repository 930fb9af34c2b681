package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/shodoc/shodoc/cmd/shodoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPage = `---
title: Alpha
description: Alpha description.
category: Tools
url: https://github.com/acme/alpha
---

# Alpha
`

const pageMissingURL = `---
title: Broken
description: ""
category: Tools
url: ""
---

# Broken
`

func writePage(t *testing.T, dir, rel, content string) {
	t.Helper()

	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func runVerify(t *testing.T, dir string) (string, string, error) {
	t.Helper()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"verify", dir}, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestCmdVerify(t *testing.T) {
	t.Parallel()

	t.Run("passes for valid pages", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePage(t, dir, "Tools/Alpha.md", validPage)
		writePage(t, dir, "Tools/Beta.md", validPage)

		stdout, _, err := runVerify(t, dir)

		require.NoError(t, err)
		assert.Contains(t, stdout, "2 pages verified")
	})

	t.Run("fails for missing url", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePage(t, dir, "Tools/Alpha.md", validPage)
		writePage(t, dir, "Tools/Broken.md", pageMissingURL)

		_, stderr, err := runVerify(t, dir)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 pages have invalid front matter")
		assert.Contains(t, stderr, "Broken.md")
		assert.Contains(t, stderr, "missing url")
	})

	t.Run("fails for missing front matter block", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePage(t, dir, "Tools/Plain.md", "# Just a heading\n")

		_, stderr, err := runVerify(t, dir)

		require.Error(t, err)
		assert.Contains(t, stderr, "missing front matter delimiter")
	})

	t.Run("fails for unterminated front matter", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePage(t, dir, "Tools/Cut.md", "---\ntitle: Cut\n")

		_, stderr, err := runVerify(t, dir)

		require.Error(t, err)
		assert.Contains(t, stderr, "unterminated front matter block")
	})

	t.Run("ignores non-markdown files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePage(t, dir, "Tools/Alpha.md", validPage)
		writePage(t, dir, "assets/style.css", "body {}")

		stdout, _, err := runVerify(t, dir)

		require.NoError(t, err)
		assert.Contains(t, stdout, "1 pages verified")
	})
}
