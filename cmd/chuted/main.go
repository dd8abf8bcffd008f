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

// Command chuted serves parachute designs over HTTP.
//
// The server is configured through environment variables, see
// [config.Load].
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"seehuhn.de/go/chute"
	"seehuhn.de/go/chute/config"
	"seehuhn.de/go/chute/server"
	"seehuhn.de/go/chute/store"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	chute.SetLogger(logger)

	db, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	repo := store.New(db)
	if err := repo.Init(context.Background()); err != nil {
		log.Fatalf("Failed to initialise database: %v", err)
	}

	app := server.New(repo, cfg)

	logger.Info("starting chute designer", "port", cfg.Port, "env", cfg.Environment, "db", cfg.DBPath)
	if err := server.Listen(app, cfg); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
