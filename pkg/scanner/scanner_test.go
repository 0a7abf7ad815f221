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

package scanner

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/rofi-apps/rofi-apps/pkg/config"
	"github.com/rofi-apps/rofi-apps/pkg/desktop"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var testRoots = []string{
	"/home/user/.local/share/applications",
	"/usr/local/share/applications",
	"/usr/share/applications",
}

func writeDesktopFile(t *testing.T, fsys afero.Fs, path, name, exec string) {
	t.Helper()
	content := fmt.Sprintf("[Desktop Entry]\nType=Application\nName=%s\nExec=%s\n", name, exec)
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}

func loadRules(t *testing.T, rules string) *config.Instance {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/config", []byte(rules), 0o644))
	cfg, err := config.Load(fsys, "/config")
	require.NoError(t, err)
	return cfg
}

func emptyRules(t *testing.T) *config.Instance {
	t.Helper()
	return loadRules(t, `{"blacklist": [], "pinned": [], "customs": []}`)
}

func names(entries []*desktop.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name())
	}
	return out
}

func TestScanBlacklist(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeDesktopFile(t, fsys, "/usr/share/applications/hidden.desktop", "Hidden Tool", "hidden-tool")
	writeDesktopFile(t, fsys, "/usr/share/applications/visible.desktop", "Visible Tool", "visible-tool")

	cfg := loadRules(t, `{"blacklist": [{"name": "^Hidden"}], "pinned": [], "customs": []}`)
	entries := Scan(fsys, cfg, testRoots, Options{})

	assert.Equal(t, []string{"Visible Tool"}, names(entries))
}

func TestScanDeduplicatesAcrossRoots(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeDesktopFile(t, fsys,
		"/home/user/.local/share/applications/editor.desktop", "My Editor", "editor --user")
	writeDesktopFile(t, fsys,
		"/usr/share/applications/editor.desktop", "System Editor", "editor")

	entries := Scan(fsys, emptyRules(t), testRoots, Options{})

	require.Len(t, entries, 1)
	assert.Equal(t, "My Editor", entries[0].Name(), "user-local root shadows the system root")
	assert.Equal(t, "/home/user/.local/share/applications/editor.desktop", entries[0].Path())
}

func TestScanSkipsNoDisplay(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	content := "[Desktop Entry]\nType=Application\nName=Helper\nNoDisplay=true\n"
	require.NoError(t, afero.WriteFile(
		fsys, "/usr/share/applications/helper.desktop", []byte(content), 0o644,
	))

	// Pinning it must not resurrect it.
	cfg := loadRules(t, `{"blacklist": [], "pinned": [{"name": "Helper"}], "customs": []}`)
	entries := Scan(fsys, cfg, testRoots, Options{PinEntries: true})

	assert.Empty(t, entries)
}

func TestScanSkipsUnparseableFiles(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(
		fsys, "/usr/share/applications/mimeinfo.cache", []byte("[MIME Cache]\ntext/plain=editor.desktop;\n"), 0o644,
	))
	writeDesktopFile(t, fsys, "/usr/share/applications/ok.desktop", "OK", "ok")

	entries := Scan(fsys, emptyRules(t), testRoots, Options{})

	assert.Equal(t, []string{"OK"}, names(entries))
}

func TestScanSortsByName(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeDesktopFile(t, fsys, "/usr/share/applications/c.desktop", "Cheese", "cheese")
	writeDesktopFile(t, fsys, "/usr/share/applications/a.desktop", "atril", "atril")
	writeDesktopFile(t, fsys, "/usr/share/applications/b.desktop", "Brasero", "brasero")

	entries := Scan(fsys, emptyRules(t), testRoots, Options{Collation: language.English})

	// Locale collation is case-insensitive, unlike byte order.
	assert.Equal(t, []string{"atril", "Brasero", "Cheese"}, names(entries))
}

func TestScanSortIdempotent(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	for _, name := range []string{"Zeta", "alpha", "Mango", "beta"} {
		writeDesktopFile(t, fsys,
			filepath.Join("/usr/share/applications", name+".desktop"), name, "bin")
	}

	first := names(Scan(fsys, emptyRules(t), testRoots, Options{Collation: language.English}))
	second := names(Scan(fsys, emptyRules(t), testRoots, Options{Collation: language.English}))

	assert.Equal(t, first, second)
}

func TestScanRecursesSubdirectories(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeDesktopFile(t, fsys, "/usr/share/applications/kde4/app.desktop", "Nested App", "app")

	entries := Scan(fsys, emptyRules(t), testRoots, Options{})

	assert.Equal(t, []string{"Nested App"}, names(entries))
}

func TestScanMissingRootsIgnored(t *testing.T) {
	t.Parallel()

	entries := Scan(afero.NewMemMapFs(), emptyRules(t), testRoots, Options{})
	assert.Empty(t, entries)
}

func TestScanPinnedNotRoutedByDefault(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeDesktopFile(t, fsys, "/usr/share/applications/term.desktop", "Terminal", "xterm")
	writeDesktopFile(t, fsys, "/usr/share/applications/files.desktop", "Files", "nautilus")

	cfg := loadRules(t, `{"blacklist": [], "pinned": [{"name": "^Terminal"}], "customs": []}`)
	entries := Scan(fsys, cfg, testRoots, Options{Collation: language.English})

	// Without pin routing everything sorts alphabetically.
	assert.Equal(t, []string{"Files", "Terminal"}, names(entries))
}

func TestScanPinRouting(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeDesktopFile(t, fsys, "/usr/share/applications/term.desktop", "Terminal", "xterm")
	writeDesktopFile(t, fsys, "/usr/share/applications/files.desktop", "Files", "nautilus")
	writeDesktopFile(t, fsys, "/usr/share/applications/web.desktop", "Browser", "firefox")

	cfg := loadRules(t, `{
		"blacklist": [],
		"pinned": [{"name": "^Terminal"}, {"name": "^Browser"}],
		"customs": []
	}`)
	entries := Scan(fsys, cfg, testRoots, Options{
		Collation:  language.English,
		PinEntries: true,
	})

	// Pinned entries lead in pin-rule order, the rest sorts after them.
	assert.Equal(t, []string{"Terminal", "Browser", "Files"}, names(entries))
}

func TestScanRenames(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeDesktopFile(t, fsys, "/usr/share/applications/gimp.desktop",
		"GNU Image Manipulation Program", "gimp-2.10 %U")
	writeDesktopFile(t, fsys, "/usr/share/applications/files.desktop", "Files", "nautilus")

	cfg := loadRules(t, `{
		"blacklist": [],
		"pinned": [],
		"customs": [{"name": "^GNU Image", "rename": "GIMP"}]
	}`)

	t.Run("disabled by default", func(t *testing.T) {
		t.Parallel()
		entries := Scan(fsys, cfg, testRoots, Options{Collation: language.English})
		assert.Equal(t, []string{"Files", "GNU Image Manipulation Program"}, names(entries))
	})

	t.Run("enabled renames and re-sorts", func(t *testing.T) {
		t.Parallel()
		entries := Scan(fsys, cfg, testRoots, Options{
			Collation:    language.English,
			ApplyRenames: true,
		})
		assert.Equal(t, []string{"Files", "GIMP"}, names(entries))
	})
}
