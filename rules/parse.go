// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package rules synchronizes detection rules from external rule
// repositories into the rule store.
package rules

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// recognized rule-definition file extensions
var ruleExtensions = []string{".yml", ".yaml"}

type ruleFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	ID        string       `yaml:"id"`
	Languages []string     `yaml:"languages"`
	Metadata  ruleMetadata `yaml:"metadata"`
}

type ruleMetadata struct {
	CWE   *string      `yaml:"cwe"`
	OWASP *stringOrList `yaml:"owasp"`
}

// stringOrList accepts a scalar or a sequence; rule files carry multiple
// OWASP ids for different publication years, only the first one is kept.
type stringOrList struct {
	values []string
}

func (s *stringOrList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		s.values = []string{single}
		return nil
	case yaml.SequenceNode:
		return value.Decode(&s.values)
	default:
		return errors.Errorf("unexpected yaml node kind %d for owasp metadata", value.Kind)
	}
}

// First returns the first value, or nil when none is present.
func (s *stringOrList) First() *string {
	if s == nil || len(s.values) == 0 {
		return nil
	}
	return &s.values[0]
}

func parseRuleFile(path string) (ruleFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ruleFile{}, errors.Wrap(err, "could not read rule file")
	}

	var file ruleFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return ruleFile{}, errors.Wrapf(err, "could not parse rule file %s", path)
	}
	return file, nil
}

// listRuleFiles walks root recursively and returns all rule-definition
// files, in lexical walk order.
func listRuleFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// checkout metadata is not rule content
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, ruleExt := range ruleExtensions {
			if ext == ruleExt {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	return files, err
}

// splitRulePath derives the repository name and the dotted category from a
// rule file path relative to the rules root: the first segment names the
// repository, the remaining directories form the category.
func splitRulePath(relPath string) (repository string, category string) {
	segments := strings.Split(filepath.ToSlash(relPath), "/")
	repository = segments[0]
	if len(segments) > 2 {
		category = strings.Join(segments[1:len(segments)-1], ".")
	}
	return repository, category
}
