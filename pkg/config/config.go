// Rofi Apps
// Copyright (c) 2026 The Rofi Apps Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Rofi Apps.
//
// Rofi Apps is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Rofi Apps is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Rofi Apps.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/spf13/afero"
)

// ErrNotFound is returned by FindPath when no candidate config file exists.
var ErrNotFound = errors.New("config not found")

// The config file is JSON with // line comments. Comments are stripped
// before decoding, trailing comments included.
var commentRe = regexp.MustCompile(`(?m)//.*$`)

// Rule matches desktop entries for blacklisting, pinning or renaming. Both
// patterns are optional and unanchored; a rule matches when every pattern it
// carries matches. A rule with no patterns at all never matches.
type Rule struct {
	Name *string `json:"name,omitempty"`
	Exec *string `json:"exec,omitempty"`

	nameRe *regexp.Regexp
	execRe *regexp.Regexp
}

// CustomRule is a Rule carrying a display name override.
type CustomRule struct {
	Rule
	Rename string `json:"rename,omitempty"`
}

// Instance holds the loaded rule lists. It is immutable after Load.
type Instance struct {
	Blacklist []Rule
	Pinned    []Rule
	Customs   []CustomRule
}

// NewRule builds a compiled rule for use outside Load. An empty argument
// means the corresponding condition is absent.
func NewRule(name, exec string) (Rule, error) {
	r := Rule{}
	if name != "" {
		r.Name = &name
	}
	if exec != "" {
		r.Exec = &exec
	}
	if err := r.compile(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

func (r *Rule) compile() error {
	if r.Name != nil {
		re, err := CachedCompile(*r.Name)
		if err != nil {
			return fmt.Errorf("invalid name pattern: %w", err)
		}
		r.nameRe = re
	}
	if r.Exec != nil {
		re, err := CachedCompile(*r.Exec)
		if err != nil {
			return fmt.Errorf("invalid exec pattern: %w", err)
		}
		r.execRe = re
	}
	return nil
}

// Match reports whether the rule matches an entry with the given display
// name and command line. Patterns search anywhere in the string.
func (r *Rule) Match(name, exec string) bool {
	if r.nameRe == nil && r.execRe == nil {
		return false
	}
	if r.nameRe != nil && !r.nameRe.MatchString(name) {
		return false
	}
	if r.execRe != nil && !r.execRe.MatchString(exec) {
		return false
	}
	return true
}

// FindPath returns the first existing path from candidates, in order.
// Returns ErrNotFound when none exist.
func FindPath(fsys afero.Fs, candidates []string) (string, error) {
	for _, path := range candidates {
		if path == "" {
			continue
		}
		exists, err := afero.Exists(fsys, path)
		if err != nil {
			return "", fmt.Errorf("failed to stat config candidate %s: %w", path, err)
		}
		if exists {
			return path, nil
		}
	}
	return "", ErrNotFound
}

// document mirrors the on-disk schema. Pointers distinguish a missing key
// from an empty list: all three keys are required.
type document struct {
	Blacklist *[]Rule       `json:"blacklist"`
	Pinned    *[]Rule       `json:"pinned"`
	Customs   *[]CustomRule `json:"customs"`
}

// Load reads and parses the config file at path, strips // comments,
// checks the required keys and compiles every rule pattern.
func Load(fsys afero.Fs, path string) (*Instance, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	stripped := commentRe.ReplaceAll(data, nil)

	var doc document
	if err := json.Unmarshal(stripped, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	switch {
	case doc.Blacklist == nil:
		return nil, errors.New("config missing required key: blacklist")
	case doc.Pinned == nil:
		return nil, errors.New("config missing required key: pinned")
	case doc.Customs == nil:
		return nil, errors.New("config missing required key: customs")
	}

	cfg := Instance{
		Blacklist: *doc.Blacklist,
		Pinned:    *doc.Pinned,
		Customs:   *doc.Customs,
	}

	for i := range cfg.Blacklist {
		if err := cfg.Blacklist[i].compile(); err != nil {
			return nil, fmt.Errorf("blacklist rule %d: %w", i, err)
		}
	}
	for i := range cfg.Pinned {
		if err := cfg.Pinned[i].compile(); err != nil {
			return nil, fmt.Errorf("pinned rule %d: %w", i, err)
		}
	}
	for i := range cfg.Customs {
		if err := cfg.Customs[i].compile(); err != nil {
			return nil, fmt.Errorf("customs rule %d: %w", i, err)
		}
	}

	return &cfg, nil
}
