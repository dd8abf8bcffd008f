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

// Command gores prints the fabric requirements of a parachute design and
// writes its cutting pattern.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/docopt/docopt-go"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"seehuhn.de/go/chute"
	"seehuhn.de/go/chute/export"
)

const usage = `gores - parachute cutting patterns.

Usage:
  gores [options] <design.json>
  gores --default [options]
  gores -h | --help

Options:
  --default          Use the built-in example design.
  --res=<n>          Sampling resolution [default: 360].
  --dxf=<file>       Write the pattern as a DXF file.
  --pdf=<file>       Write the pattern as a full-scale PDF file.
  --png=<file>       Write a preview image.
  --width=<px>       Width of the preview image [default: 800].
  --imperial         Print areas and masses in imperial units.
  --lang=<tag>       Language used for number formatting [default: en].
  -v --verbose       Log skipped identifiers and formula errors.
  -h --help          Show this screen.
`

const (
	sqftPerSqm = 1 / 0.09290304
	ozPerKg    = 1 / 0.028349523125
)

func main() {
	opts, err := docopt.ParseArgs(usage, nil, "")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "gores:", err)
		os.Exit(1)
	}
}

func run(opts docopt.Opts) error {
	if verbose, _ := opts.Bool("--verbose"); verbose {
		chute.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	res, err := opts.Int("--res")
	if err != nil || res < 1 {
		return fmt.Errorf("invalid resolution %v", opts["--res"])
	}
	width, err := opts.Int("--width")
	if err != nil || width < 16 {
		return fmt.Errorf("invalid width %v", opts["--width"])
	}
	tag, err := language.Parse(opts["--lang"].(string))
	if err != nil {
		return err
	}

	d, err := loadDesign(opts)
	if err != nil {
		return err
	}
	imperial, _ := opts.Bool("--imperial")
	p := message.NewPrinter(tag)

	s, err := d.Summary(res)
	if err != nil {
		return err
	}
	p.Printf("%s\n\n", s.Name)
	printParameters(p, d.ParameterResults(), imperial)
	printSummary(p, s, imperial)

	dxfFile, _ := opts["--dxf"].(string)
	pdfFile, _ := opts["--pdf"].(string)
	pngFile, _ := opts["--png"].(string)
	if dxfFile == "" && pdfFile == "" && pngFile == "" {
		return nil
	}

	l, err := export.NewLayout(d.Pieces(res))
	if err != nil {
		return err
	}
	if dxfFile != "" {
		if err := export.WriteDXF(dxfFile, l); err != nil {
			return err
		}
	}
	if pdfFile != "" {
		if err := export.WritePDF(pdfFile, l); err != nil {
			return err
		}
	}
	if pngFile != "" {
		if err := writePNG(pngFile, l, width); err != nil {
			return err
		}
	}
	return nil
}

func loadDesign(opts docopt.Opts) (*chute.Designer, error) {
	if useDefault, _ := opts.Bool("--default"); useDefault {
		return chute.Default(), nil
	}
	fileName := opts["<design.json>"].(string)
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return chute.Load(f)
}

func printParameters(p *message.Printer, results []chute.ParameterResult, imperial bool) {
	if len(results) == 0 {
		return
	}
	p.Printf("parameters\n")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "warning: parameter %q: %v\n", r.ID, r.Err)
			continue
		}
		v, unit := r.Display(imperial)
		p.Printf("  %-12s %10.4f %s\n", r.ID, v, unit)
	}
	p.Printf("\n")
}

func printSummary(p *message.Printer, s *chute.Summary, imperial bool) {
	areaUnit, massUnit := "m²", "g"
	area := func(x float64) float64 { return x }
	mass := func(x float64) float64 { return x * 1000 }
	if imperial {
		areaUnit, massUnit = "ft²", "oz"
		area = func(x float64) float64 { return x * sqftPerSqm }
		mass = func(x float64) float64 { return x * ozPerKg }
	}

	for _, sec := range s.Sections {
		p.Printf("section #%d: %d gores of %s\n", sec.Index+1, sec.Gores, sec.Fabric.Label(imperial))
		p.Printf("  one gore     %10.4f %s\n", area(sec.PieceArea), areaUnit)
		p.Printf("  canopy area  %10.4f %s\n", area(sec.CanopyArea), areaUnit)
		p.Printf("  fabric area  %10.4f %s\n", area(sec.FabricArea), areaUnit)
		p.Printf("  fabric mass  %10.1f %s\n", mass(sec.FabricMass), massUnit)
	}
	p.Printf("\ntotal canopy area  %10.4f %s\n", area(s.CanopyArea), areaUnit)
	p.Printf("total fabric area  %10.4f %s\n", area(s.FabricArea), areaUnit)
	p.Printf("total fabric mass  %10.1f %s\n", mass(s.FabricMass), massUnit)
}

func writePNG(fileName string, l *export.Layout, width int) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = export.RenderPNG(f, l, width)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	return err
}
