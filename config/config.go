// seehuhn.de/go/chute - parachute pattern design
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config reads the settings of the design service from the
// environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds the service settings.
type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds

	DBPath            string
	PreviewResolution int
	ExportResolution  int
	LogLevel          slog.Level
}

// Load reads the configuration from environment variables.  Unset or
// malformed variables take their default values.
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		Environment:  getEnv("ENV", "development"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),

		DBPath:            getEnv("CHUTE_DB_PATH", "data/db/chute.db"),
		PreviewResolution: getEnvAsInt("CHUTE_PREVIEW_RESOLUTION", 80),
		ExportResolution:  getEnvAsInt("CHUTE_EXPORT_RESOLUTION", 360),
		LogLevel:          getEnvAsLevel("CHUTE_LOG_LEVEL", slog.LevelInfo),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsLevel(key string, defaultVal slog.Level) slog.Level {
	var level slog.Level
	if value := os.Getenv(key); value != "" {
		if err := level.UnmarshalText([]byte(strings.ToUpper(value))); err == nil {
			return level
		}
	}
	return defaultVal
}
