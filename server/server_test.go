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
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/chute"
	"seehuhn.de/go/chute/config"
	"seehuhn.de/go/chute/store"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := store.OpenSQLite(filepath.Join(t.TempDir(), "chute.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := store.New(db)
	require.NoError(t, repo.Init(context.Background()))

	cfg := &config.Config{
		Port:              "0",
		Environment:       "test",
		ReadTimeout:       10,
		WriteTimeout:      10,
		PreviewResolution: 40,
		ExportResolution:  90,
	}
	return New(repo, cfg)
}

func do(t *testing.T, app *fiber.App, method, target string, body []byte) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, fiber.TestConfig{Timeout: 10 * time.Second})
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func createDefault(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, data := do(t, app, http.MethodPost, "/designs", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	require.NotEmpty(t, out.ID)
	return out.ID
}

func TestHealth(t *testing.T) {
	app := newApp(t)

	resp, _ := do(t, app, http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, data := do(t, app, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(data), "ready")
}

func TestEvaluate(t *testing.T) {
	app := newApp(t)

	resp, data := do(t, app, http.MethodPost, "/evaluate", []byte(`{"expression": "2 * ft"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Value float64 `json:"value"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.InDelta(t, 0.6096, out.Value, 1e-12)

	for _, body := range []string{`{"expression": "1/0"}`, `{"expression": ""}`, `{"expression": "foo"}`, `not json`} {
		resp, data := do(t, app, http.MethodPost, "/evaluate", []byte(body))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		assert.Contains(t, string(data), "error", body)
	}
}

func TestMaterials(t *testing.T) {
	app := newApp(t)

	resp, data := do(t, app, http.MethodGet, "/materials", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Fabrics []chute.Fabric `json:"fabrics"`
		Cords   []chute.Cord   `json:"cords"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Len(t, out.Fabrics, 3)
	assert.Len(t, out.Cords, len(chute.Cords))
	assert.Equal(t, "Kevlar", out.Cords[0].Name)
}

func TestDesignLifecycle(t *testing.T) {
	app := newApp(t)
	id := createDefault(t, app)

	resp, data := do(t, app, http.MethodGet, "/designs/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	d, err := chute.Load(bytes.NewReader(data))
	require.NoError(t, err)
	assert.True(t, chute.Default().Equal(d))

	d.Name = "renamed"
	buf := &bytes.Buffer{}
	require.NoError(t, d.Save(buf))
	resp, data = do(t, app, http.MethodPut, "/designs/"+id, buf.Bytes())
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	resp, data = do(t, app, http.MethodGet, "/designs", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var records []store.Record
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, id, records[0].ID)
	assert.Equal(t, "renamed", records[0].Name)

	resp, _ = do(t, app, http.MethodDelete, "/designs/"+id, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = do(t, app, http.MethodGet, "/designs/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = do(t, app, http.MethodDelete, "/designs/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = do(t, app, http.MethodPut, "/designs/"+id, buf.Bytes())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateInvalid(t *testing.T) {
	app := newApp(t)

	resp, data := do(t, app, http.MethodPost, "/designs", []byte(`{"gores": "many"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(data), "error")

	resp, _ = do(t, app, http.MethodPost, "/designs",
		[]byte(`{"chute_sections": [{"type": "circular", "gores": 1000000}]}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, data = do(t, app, http.MethodGet, "/designs", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(data))
}

func TestDerivedGeometry(t *testing.T) {
	app := newApp(t)
	id := createDefault(t, app)

	resp, data := do(t, app, http.MethodGet, "/designs/"+id+"/parameters", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var params []parameterPayload
	require.NoError(t, json.Unmarshal(data, &params))
	require.NotEmpty(t, params)
	for _, p := range params {
		assert.Empty(t, p.Error, p.ID)
		assert.Equal(t, "m", p.Unit, p.ID)
		assert.InDelta(t, p.Value, p.Display, 1e-12, p.ID)
	}

	resp, data = do(t, app, http.MethodGet, "/designs/"+id+"/parameters?imperial=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	params = nil
	require.NoError(t, json.Unmarshal(data, &params))
	for _, p := range params {
		assert.Equal(t, "ft", p.Unit, p.ID)
		assert.InDelta(t, p.Value/0.3048, p.Display, 1e-9, p.ID)
	}

	resp, _ = do(t, app, http.MethodGet, "/designs/"+id+"/parameters?imperial=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, data = do(t, app, http.MethodGet, "/designs/"+id+"/cross-sections?res=10", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cross [][]map[string]float64
	require.NoError(t, json.Unmarshal(data, &cross))
	require.Len(t, cross, 1)
	assert.Len(t, cross[0], 2) // a circular section is a straight line

	resp, data = do(t, app, http.MethodGet, "/designs/"+id+"/gores", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var gores [][]map[string]float64
	require.NoError(t, json.Unmarshal(data, &gores))
	require.Len(t, gores, 1)
	assert.NotEmpty(t, gores[0])

	resp, data = do(t, app, http.MethodGet, "/designs/"+id+"/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary chute.Summary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Len(t, summary.Sections, 1)
	assert.Greater(t, summary.FabricArea, summary.CanopyArea)

	resp, data = do(t, app, http.MethodGet, "/designs/"+id+"/mesh?res=8", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var mesh chute.Mesh
	require.NoError(t, json.Unmarshal(data, &mesh))
	assert.Len(t, mesh.Positions, len(mesh.Colors))
	assert.NotEmpty(t, mesh.Indices)

	resp, _ = do(t, app, http.MethodGet, "/designs/"+id+"/mesh?res=5000", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	for _, q := range []string{"0", "-3", "abc", "10001"} {
		resp, _ := do(t, app, http.MethodGet, "/designs/"+id+"/gores?res="+q, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
	resp, _ = do(t, app, http.MethodGet, "/designs/missing/summary", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExports(t *testing.T) {
	app := newApp(t)
	id := createDefault(t, app)

	resp, data := do(t, app, http.MethodGet, "/designs/"+id+"/export.dxf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	assert.Equal(t, "image/vnd.dxf", resp.Header.Get("Content-Type"))
	assert.Contains(t, string(data), "LWPOLYLINE")

	resp, data = do(t, app, http.MethodGet, "/designs/"+id+"/export.pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))

	resp, data = do(t, app, http.MethodGet, "/designs/"+id+"/preview.png?width=120", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())

	resp, _ = do(t, app, http.MethodGet, "/designs/"+id+"/preview.png?width=2", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExportEmpty(t *testing.T) {
	app := newApp(t)

	d := chute.Default()
	d.Sections = nil
	buf := &bytes.Buffer{}
	require.NoError(t, d.Save(buf))
	resp, data := do(t, app, http.MethodPost, "/designs", buf.Bytes())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(data, &out))

	resp, _ = do(t, app, http.MethodGet, "/designs/"+out.ID+"/preview.png", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
