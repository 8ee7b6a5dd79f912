// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestParseRuleFile(t *testing.T) {
	t.Run("parses a rule with scalar owasp", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rule.yaml")
		writeFile(t, path, `rules:
  - id: python-sql-injection
    languages: [python]
    metadata:
      cwe: "CWE-89: SQL Injection"
      owasp: "A03:2021 - Injection"
`)

		file, err := parseRuleFile(path)
		require.NoError(t, err)
		require.Len(t, file.Rules, 1)

		rule := file.Rules[0]
		assert.Equal(t, "python-sql-injection", rule.ID)
		assert.Equal(t, []string{"python"}, rule.Languages)
		require.NotNil(t, rule.Metadata.CWE)
		assert.Equal(t, "CWE-89: SQL Injection", *rule.Metadata.CWE)
		require.NotNil(t, rule.Metadata.OWASP.First())
		assert.Equal(t, "A03:2021 - Injection", *rule.Metadata.OWASP.First())
	})

	t.Run("keeps the first owasp id of a list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rule.yml")
		writeFile(t, path, `rules:
  - id: xss
    metadata:
      owasp:
        - "A07:2017 - Cross-Site Scripting"
        - "A03:2021 - Injection"
`)

		file, err := parseRuleFile(path)
		require.NoError(t, err)
		require.Len(t, file.Rules, 1)
		require.NotNil(t, file.Rules[0].Metadata.OWASP.First())
		assert.Equal(t, "A07:2017 - Cross-Site Scripting", *file.Rules[0].Metadata.OWASP.First())
	})

	t.Run("missing metadata is not an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rule.yaml")
		writeFile(t, path, `rules:
  - id: bare-rule
`)

		file, err := parseRuleFile(path)
		require.NoError(t, err)
		require.Len(t, file.Rules, 1)
		assert.Nil(t, file.Rules[0].Metadata.CWE)
		assert.Nil(t, file.Rules[0].Metadata.OWASP.First())
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		writeFile(t, path, "rules:\n  - id: [unclosed\n")

		_, err := parseRuleFile(path)
		assert.Error(t, err)
	})
}

func TestListRuleFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "python", "django", "sqli.yaml"), "rules: []")
	writeFile(t, filepath.Join(dir, "go", "xss.yml"), "rules: []")
	writeFile(t, filepath.Join(dir, "README.md"), "not a rule")
	writeFile(t, filepath.Join(dir, ".git", "config.yaml"), "not a rule either")

	files, err := listRuleFiles(dir)
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Contains(t, files, filepath.Join(dir, "python", "django", "sqli.yaml"))
	assert.Contains(t, files, filepath.Join(dir, "go", "xss.yml"))
}

func TestSplitRulePath(t *testing.T) {
	tests := []struct {
		path       string
		repository string
		category   string
	}{
		{"community/python/django/sqli.yaml", "community", "python.django"},
		{"community/go/xss.yml", "community", "go"},
		{"community/toplevel.yaml", "community", ""},
	}

	for _, tt := range tests {
		repository, category := splitRulePath(tt.path)
		assert.Equal(t, tt.repository, repository)
		assert.Equal(t, tt.category, category)
	}
}
