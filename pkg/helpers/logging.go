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

package helpers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rofi-apps/rofi-apps/pkg/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// InitLogging configures the global logger. Diagnostics go to stderr as
// bare prefixed lines, so they never mix with the stdout protocol: [!] for
// errors, [@] for recoverable per-entry skips. With debugToFile set, the
// level drops to debug and everything is also written to a rotating log
// file under the XDG state directory.
func InitLogging(debugToFile bool) error {
	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    true,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: func(level any) string {
			switch level {
			case "error", "fatal":
				return "[!]"
			case "warn":
				return "[@]"
			default:
				return "[-]"
			}
		},
	}

	writers := []io.Writer{console}
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if debugToFile {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)

		logDir := filepath.Join(xdg.StateHome, config.AppName)
		if err := os.MkdirAll(logDir, 0o750); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}

		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(logDir, config.LogFile),
			MaxSize:    1,
			MaxBackups: 2,
		})
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()

	return nil
}
