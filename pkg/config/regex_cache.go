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
	"fmt"
	"regexp"
	"sync"
)

// RegexCache provides thread-safe caching of compiled regular expressions.
// The same patterns commonly appear in more than one rule list, so compiling
// each distinct pattern once is enough.
type RegexCache struct {
	cache map[string]*regexp.Regexp
	mu    sync.RWMutex
}

// GlobalRegexCache is the singleton instance used for rule patterns
var GlobalRegexCache = NewRegexCache()

// NewRegexCache creates a new RegexCache instance
func NewRegexCache() *RegexCache {
	return &RegexCache{
		cache: make(map[string]*regexp.Regexp),
	}
}

// Compile compiles a regex pattern and caches it for future use.
// If the pattern is already cached, returns the cached version.
// Returns an error if the pattern cannot be compiled.
func (rc *RegexCache) Compile(pattern string) (*regexp.Regexp, error) {
	// Fast path: try read lock first
	rc.mu.RLock()
	if re, exists := rc.cache[pattern]; exists {
		rc.mu.RUnlock()
		return re, nil
	}
	rc.mu.RUnlock()

	// Slow path: compile and cache with write lock
	rc.mu.Lock()
	defer rc.mu.Unlock()

	// Double-check pattern wasn't added while waiting for lock
	if re, exists := rc.cache[pattern]; exists {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to compile regex pattern %q: %w", pattern, err)
	}

	rc.cache[pattern] = re
	return re, nil
}

// Clear removes all cached patterns
func (rc *RegexCache) Clear() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.cache = make(map[string]*regexp.Regexp)
}

// Size returns the number of cached patterns
func (rc *RegexCache) Size() int {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return len(rc.cache)
}

// CachedCompile compiles a pattern through the global cache.
func CachedCompile(pattern string) (*regexp.Regexp, error) {
	return GlobalRegexCache.Compile(pattern)
}
