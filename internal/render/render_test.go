package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"

	"houndtooth/internal/core"
)

func checker(w, h int) *core.ByteGrid {
	g := core.NewByteGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				g.Set(x, y, 1)
			}
		}
	}
	return g
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, checker(3, 2), '#', ' '); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "# #\n # \n"; got != want {
		t.Fatalf("text = %q, expected %q", got, want)
	}
}

func TestWriteTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, core.NewByteGrid(5, 0), '#', ' '); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}

	buf.Reset()
	if err := WriteText(&buf, core.NewByteGrid(0, 2), '#', ' '); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\n\n" {
		t.Fatalf("expected two empty lines, got %q", buf.String())
	}
}

func TestImageScales(t *testing.T) {
	img := Image(checker(2, 2), color.White, color.Black, 3)
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("bounds = %v, expected 6x6", b)
	}
	if r, _, _, _ := img.At(2, 2).RGBA(); r != 0xffff {
		t.Fatal("pixel (2,2) should belong to the ink cell (0,0)")
	}
	if r, _, _, _ := img.At(3, 0).RGBA(); r != 0 {
		t.Fatal("pixel (3,0) should belong to the blank cell (1,0)")
	}
}

func TestWritePNGRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, checker(4, 3), color.Black, color.White, 2); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Fatalf("decoded bounds = %v", b)
	}
}

func TestWritePNGEmpty(t *testing.T) {
	err := WritePNG(&bytes.Buffer{}, core.NewByteGrid(0, 4), color.Black, color.White, 1)
	if !errors.Is(err, ErrEmptyImage) {
		t.Fatalf("err = %v, expected ErrEmptyImage", err)
	}
}
