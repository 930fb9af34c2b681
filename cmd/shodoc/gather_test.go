package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	main "github.com/shodoc/shodoc/cmd/shodoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdGather(t *testing.T) {
	t.Parallel()

	t.Run("emits sorted JSON metadata", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePage(t, dir, "Tools/Zeta.md", `---
title: Zeta
description: Zeta description.
category: Tools
url: https://github.com/acme/zeta
---

body
`)
		writePage(t, dir, "Agents/Alpha.md", `---
title: Alpha
description: Alpha description.
category: Agents
url: https://github.com/acme/alpha
---

body
`)

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"gather", dir}, stdout, stderr)
		require.NoError(t, err)

		var entries []struct {
			Path        string `json:"path"`
			Title       string `json:"title"`
			Description string `json:"description"`
			Category    string `json:"category"`
			URL         string `json:"url"`
		}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &entries))
		require.Len(t, entries, 2)

		assert.Equal(t, "Agents/Alpha.md", entries[0].Path)
		assert.Equal(t, "Alpha", entries[0].Title)
		assert.Equal(t, "https://github.com/acme/alpha", entries[0].URL)
		assert.Equal(t, "Tools/Zeta.md", entries[1].Path)
		assert.Equal(t, "Zeta", entries[1].Title)
	})

	t.Run("empty tree yields empty array", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"gather", t.TempDir()}, stdout, stderr)
		require.NoError(t, err)
		assert.JSONEq(t, "[]", stdout.String())
	})

	t.Run("fails on malformed front matter", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePage(t, dir, "Tools/Bad.md", "no front matter here\n")

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"gather", dir}, stdout, stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Bad.md")
	})
}
