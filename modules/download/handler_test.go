package download

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestTierForFallsBackToStandard(t *testing.T) {
	tests := []struct {
		quality  string
		wantEdge int
	}{
		{"web_1k", 1024},
		{"standard_2k", 2048},
		{"print_4k", 0},
		{"", 2048},
		{"ultra_8k", 2048},
	}

	for _, tt := range tests {
		if got := tierFor(tt.quality); got.MaxEdge != tt.wantEdge {
			t.Errorf("tierFor(%q).MaxEdge = %d, want %d", tt.quality, got.MaxEdge, tt.wantEdge)
		}
	}
}

func TestResizeToEdgeShrinksLargeImage(t *testing.T) {
	data := testPNG(t, 400, 200)

	resized, err := resizeToEdge(data, 100)
	if err != nil {
		t.Fatalf("resizeToEdge: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(resized))
	if err != nil {
		t.Fatalf("decode resized: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 50 {
		t.Errorf("resized to %dx%d, want 100x50", bounds.Dx(), bounds.Dy())
	}
}

func TestResizeToEdgeKeepsSmallImage(t *testing.T) {
	data := testPNG(t, 80, 60)

	resized, err := resizeToEdge(data, 100)
	if err != nil {
		t.Fatalf("resizeToEdge: %v", err)
	}
	if !bytes.Equal(resized, data) {
		t.Error("image within the edge limit should be returned unchanged")
	}
}

func TestRenderTierPrintKeepsOriginal(t *testing.T) {
	data := testPNG(t, 120, 120)

	output, err := renderTier(data, tierFor("print_4k"))
	if err != nil {
		t.Fatalf("renderTier: %v", err)
	}
	if !bytes.Equal(output, data) {
		t.Error("print tier should pass the original PNG bytes through")
	}
}
