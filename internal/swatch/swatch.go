// Package swatch renders a PNG preview of the color tokens.
package swatch

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/MeKo-Tech/figmatokens/internal/style"
	"github.com/MeKo-Tech/figmatokens/internal/tokens"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Options controls the grid layout.
type Options struct {
	Columns  int // cells per row
	CellSize int // square color area in pixels
}

// DefaultOptions returns an 8-column grid of 96px cells.
func DefaultOptions() Options {
	return Options{Columns: 8, CellSize: 96}
}

// labelLines is the number of text lines under each cell (name, hex).
const labelLines = 2

var face = basicfont.Face7x13

func labelHeight() int {
	return labelLines*face.Height + 6
}

// Render draws one labelled cell per color on a white background.
func Render(colors []tokens.Color, opts Options) (*image.RGBA, error) {
	if len(colors) == 0 {
		return nil, errors.New("no colors to render")
	}
	if opts.Columns <= 0 || opts.CellSize <= 0 {
		return nil, fmt.Errorf("columns and cell size must be positive, got %d and %d", opts.Columns, opts.CellSize)
	}

	cols := opts.Columns
	if len(colors) < cols {
		cols = len(colors)
	}
	rows := (len(colors) + cols - 1) / cols
	cellH := opts.CellSize + labelHeight()

	img := image.NewRGBA(image.Rect(0, 0, cols*opts.CellSize, rows*cellH))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for i, c := range colors {
		rgb, err := style.ParseHex(c.Hex)
		if err != nil {
			return nil, fmt.Errorf("color %s: %w", c.Name, err)
		}

		x := (i % cols) * opts.CellSize
		y := (i / cols) * cellH
		cell := image.Rect(x, y, x+opts.CellSize, y+opts.CellSize)
		fill := color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff}
		draw.Draw(img, cell, &image.Uniform{C: fill}, image.Point{}, draw.Src)

		drawLabel(img, x+3, y+opts.CellSize+face.Ascent+2, c.Name, opts.CellSize-6)
		drawLabel(img, x+3, y+opts.CellSize+face.Height+face.Ascent+2, "#"+rgb.Hex(), opts.CellSize-6)
	}

	return img, nil
}

// drawLabel writes text with its baseline at y, truncated to maxWidth pixels.
func drawLabel(dst draw.Image, x, y int, text string, maxWidth int) {
	maxChars := maxWidth / face.Advance
	if maxChars <= 0 {
		return
	}
	if len(text) > maxChars {
		text = text[:maxChars]
	}

	d := font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// Write encodes img as a PNG at path, creating parent directories.
func Write(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
