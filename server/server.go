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

// Package server provides an HTTP API for storing designs and reading
// their derived geometry.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"seehuhn.de/go/chute"
	"seehuhn.de/go/chute/config"
	"seehuhn.de/go/chute/store"
)

// Store is the storage used by the server.  It is implemented by
// [store.Repository].
type Store interface {
	Create(ctx context.Context, d *chute.Designer) (string, error)
	Get(ctx context.Context, id string) (*chute.Designer, error)
	Update(ctx context.Context, id string, d *chute.Designer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]store.Record, error)
	Ping(ctx context.Context) error
}

// New returns the HTTP application serving the designs in st.
func New(st Store, cfg *config.Config) *fiber.App {
	h := &handler{
		store:             st,
		previewResolution: cfg.PreviewResolution,
		exportResolution:  cfg.ExportResolution,
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Chute Designer",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	if cfg.Environment != "test" {
		app.Use(requestLogger())
	}

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})
	app.Get("/health/ready", h.ready)

	app.Post("/evaluate", h.evaluate)
	app.Get("/materials", h.materials)

	app.Get("/designs", h.listDesigns)
	app.Post("/designs", h.createDesign)
	app.Get("/designs/:id", h.getDesign)
	app.Put("/designs/:id", h.updateDesign)
	app.Delete("/designs/:id", h.deleteDesign)

	app.Get("/designs/:id/parameters", h.parameters)
	app.Get("/designs/:id/cross-sections", h.crossSections)
	app.Get("/designs/:id/gores", h.gores)
	app.Get("/designs/:id/summary", h.summary)
	app.Get("/designs/:id/mesh", h.mesh)
	app.Get("/designs/:id/export.dxf", h.exportDXF)
	app.Get("/designs/:id/export.pdf", h.exportPDF)
	app.Get("/designs/:id/preview.png", h.previewPNG)

	return app
}

func requestLogger() fiber.Handler {
	return logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	})
}

// Listen starts the application on the configured port.
func Listen(app *fiber.App, cfg *config.Config) error {
	return app.Listen(fmt.Sprintf(":%s", cfg.Port))
}
