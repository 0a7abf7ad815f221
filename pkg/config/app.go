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

var AppVersion = "DEVELOPMENT"

const (
	AppName = "rofi-apps"
	CfgFile = "config"
	LogFile = "rofi-apps.log"
)
