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

package menu

import (
	"bytes"
	"testing"

	"github.com/rofi-apps/rofi-apps/pkg/desktop"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseEntry(t *testing.T, path, content string) *desktop.Entry {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
	entry, err := desktop.Parse(fsys, path)
	require.NoError(t, err)
	return entry
}

func TestWrite(t *testing.T) {
	t.Parallel()

	withIcon := parseEntry(t, "/usr/share/applications/term.desktop",
		"[Desktop Entry]\nType=Application\nName=Terminal\nExec=xterm\nIcon=utilities-terminal\n")
	withoutIcon := parseEntry(t, "/usr/share/applications/plain.desktop",
		"[Desktop Entry]\nType=Application\nName=Plain\nExec=plain\n")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []*desktop.Entry{withIcon, nil, withoutIcon}))

	expected := "Terminal\x00icon\x1futilities-terminal\x1finfo\x1f/usr/share/applications/term.desktop\n" +
		"Plain\x00icon\x1f\x1finfo\x1f/usr/share/applications/plain.desktop\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Zero(t, buf.Len())
}
