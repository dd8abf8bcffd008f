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

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"seehuhn.de/go/chute"
	"seehuhn.de/go/chute/export"
	"seehuhn.de/go/chute/formula"
	"seehuhn.de/go/chute/store"
)

// maxResolution limits the sampling resolution a client may request.
const maxResolution = 10000

// maxMeshResolution limits the resolution of meshes, whose size grows with
// the product of resolution and gores.
const maxMeshResolution = 1000

// defaultPreviewWidth is the width of PNG previews, in pixels.
const defaultPreviewWidth = 800

type handler struct {
	store             Store
	previewResolution int
	exportResolution  int
}

func errorJSON(c fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func (h *handler) ready(c fiber.Ctx) error {
	if err := h.store.Ping(context.Background()); err != nil {
		return errorJSON(c, http.StatusServiceUnavailable, err.Error())
	}
	return c.JSON(fiber.Map{"status": "ready"})
}

type evaluateRequest struct {
	Expression string `json:"expression"`
}

// evaluate computes the value of an expression in a fresh context.
func (h *handler) evaluate(c fiber.Ctx) error {
	var req evaluateRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid json")
	}
	x, err := formula.New().Evaluate(req.Expression)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"value": x})
}

func (h *handler) listDesigns(c fiber.Ctx) error {
	records, err := h.store.List(context.Background())
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}
	if records == nil {
		records = []store.Record{}
	}
	return c.JSON(records)
}

// createDesign stores the design in the request body.  An empty body
// stores the default design.
func (h *handler) createDesign(c fiber.Ctx) error {
	d := chute.Default()
	if len(c.Body()) > 0 {
		var err error
		d, err = chute.Load(bytes.NewReader(c.Body()))
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, err.Error())
		}
	}
	id, err := h.store.Create(context.Background(), d)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *handler) getDesign(c fiber.Ctx) error {
	d, err := h.load(c)
	if err != nil {
		return err
	}
	buf := &bytes.Buffer{}
	if err := d.Save(buf); err != nil {
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}
	c.Type("json")
	return c.Send(buf.Bytes())
}

func (h *handler) updateDesign(c fiber.Ctx) error {
	d, err := chute.Load(bytes.NewReader(c.Body()))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	err = h.store.Update(context.Background(), c.Params("id"), d)
	if errors.Is(err, store.ErrNotFound) {
		return errorJSON(c, http.StatusNotFound, err.Error())
	} else if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"id": c.Params("id")})
}

func (h *handler) deleteDesign(c fiber.Ctx) error {
	err := h.store.Delete(context.Background(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return errorJSON(c, http.StatusNotFound, err.Error())
	} else if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(http.StatusNoContent)
}

type parameterPayload struct {
	ID      string  `json:"id"`
	Value   float64 `json:"value"`
	Display float64 `json:"display_value"`
	Unit    string  `json:"display_unit"`
	Error   string  `json:"error,omitempty"`
}

// parameters lists the parameter values of a design.  With the query
// imperial=true, the display values use imperial units.
func (h *handler) parameters(c fiber.Ctx) error {
	imperial := false
	if s := c.Query("imperial"); s != "" {
		var err error
		imperial, err = strconv.ParseBool(s)
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid value for imperial")
		}
	}
	d, err := h.load(c)
	if err != nil {
		return err
	}
	res := []parameterPayload{}
	for _, r := range d.ParameterResults() {
		p := parameterPayload{ID: r.ID, Value: r.Value}
		if r.Err != nil {
			p.Error = r.Err.Error()
		} else {
			p.Display, p.Unit = r.Display(imperial)
		}
		res = append(res, p)
	}
	return c.JSON(res)
}

// materials lists the standard fabrics and suspension line cords.
func (h *handler) materials(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"fabrics": chute.NewFabricSelector().Options,
		"cords":   chute.Cords,
	})
}

func (h *handler) crossSections(c fiber.Ctx) error {
	d, res, err := h.loadWithResolution(c, chute.CrossSectionResolution)
	if err != nil {
		return err
	}
	return c.JSON(d.CrossSections(res))
}

func (h *handler) gores(c fiber.Ctx) error {
	d, res, err := h.loadWithResolution(c, h.previewResolution)
	if err != nil {
		return err
	}
	return c.JSON(d.GoreOutlines(res))
}

func (h *handler) summary(c fiber.Ctx) error {
	d, res, err := h.loadWithResolution(c, h.previewResolution)
	if err != nil {
		return err
	}
	s, err := d.Summary(res)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(s)
}

func (h *handler) mesh(c fiber.Ctx) error {
	d, res, err := h.loadWithResolution(c, chute.MeshResolution)
	if err != nil {
		return err
	}
	if res > maxMeshResolution {
		return errorJSON(c, http.StatusBadRequest, "invalid resolution")
	}
	return c.JSON(d.Mesh(res))
}

func (h *handler) exportDXF(c fiber.Ctx) error {
	c.Set("Content-Type", "image/vnd.dxf")
	return h.exportFile(c, "pattern.dxf", export.WriteDXF)
}

func (h *handler) exportPDF(c fiber.Ctx) error {
	c.Type("pdf")
	return h.exportFile(c, "pattern.pdf", export.WritePDF)
}

// exportFile lays out the pieces of a design, writes them to a temporary
// file and sends the file contents.
func (h *handler) exportFile(c fiber.Ctx, name string, write func(string, *export.Layout) error) error {
	l, err := h.layout(c, h.exportResolution)
	if err != nil {
		return err
	}

	dir, err := os.MkdirTemp("", "chute-export-")
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, name)
	if err := write(fileName, l); err != nil {
		return h.exportError(c, err)
	}
	data, err := os.ReadFile(fileName)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}
	c.Set("Content-Disposition", `attachment; filename="`+name+`"`)
	return c.Send(data)
}

func (h *handler) previewPNG(c fiber.Ctx) error {
	width := defaultPreviewWidth
	if s := c.Query("width"); s != "" {
		w, err := strconv.Atoi(s)
		if err != nil || w < 16 || w > 8000 {
			return errorJSON(c, http.StatusBadRequest, "invalid width")
		}
		width = w
	}
	l, err := h.layout(c, h.previewResolution)
	if err != nil {
		return err
	}
	buf := &bytes.Buffer{}
	if err := export.RenderPNG(buf, l, width); err != nil {
		return h.exportError(c, err)
	}
	c.Type("png")
	return c.Send(buf.Bytes())
}

func (h *handler) exportError(c fiber.Ctx, err error) error {
	if errors.Is(err, export.ErrEmpty) || errors.Is(err, export.ErrTooLarge) {
		return errorJSON(c, http.StatusUnprocessableEntity, err.Error())
	}
	return errorJSON(c, http.StatusInternalServerError, err.Error())
}

func (h *handler) layout(c fiber.Ctx, defaultRes int) (*export.Layout, error) {
	d, res, err := h.loadWithResolution(c, defaultRes)
	if err != nil {
		return nil, err
	}
	l, err := export.NewLayout(d.Pieces(res))
	if err != nil {
		return nil, fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return l, nil
}

// load reads the design addressed by the request.  Errors are returned as
// [*fiber.Error] values, which the application's error handler turns into
// JSON responses.
func (h *handler) load(c fiber.Ctx) (*chute.Designer, error) {
	d, err := h.store.Get(context.Background(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return nil, fiber.NewError(http.StatusNotFound, err.Error())
	} else if err != nil {
		return nil, fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return d, nil
}

func (h *handler) loadWithResolution(c fiber.Ctx, defaultRes int) (*chute.Designer, int, error) {
	res := defaultRes
	if s := c.Query("res"); s != "" {
		r, err := strconv.Atoi(s)
		if err != nil || r < 1 || r > maxResolution {
			return nil, 0, fiber.NewError(http.StatusBadRequest, "invalid resolution")
		}
		res = r
	}
	d, err := h.load(c)
	if err != nil {
		return nil, 0, err
	}
	return d, res, nil
}

// errorHandler writes errors returned by handlers as JSON.
func errorHandler(c fiber.Ctx, err error) error {
	code := http.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return errorJSON(c, code, err.Error())
}
