package utils

import (
	"bytes"
	"encoding/base64"
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
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 64, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestNormalizeForRemoteKeepsSmallImage(t *testing.T) {
	data := testPNG(t, 512, 256)

	normalized, mimeType, err := NormalizeForRemote(data, 1024)
	if err != nil {
		t.Fatalf("NormalizeForRemote: %v", err)
	}
	if !bytes.Equal(normalized, data) {
		t.Error("image within the edge limit should pass through unchanged")
	}
	if mimeType != "image/png" {
		t.Errorf("mimeType = %q, want image/png", mimeType)
	}
}

func TestNormalizeForRemoteShrinksLargeImage(t *testing.T) {
	data := testPNG(t, 2048, 1024)

	normalized, mimeType, err := NormalizeForRemote(data, 1024)
	if err != nil {
		t.Fatalf("NormalizeForRemote: %v", err)
	}
	if mimeType != "image/png" {
		t.Errorf("mimeType = %q, want image/png", mimeType)
	}

	img, _, err := image.Decode(bytes.NewReader(normalized))
	if err != nil {
		t.Fatalf("decode normalized: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 1024 || bounds.Dy() != 512 {
		t.Errorf("normalized to %dx%d, want 1024x512", bounds.Dx(), bounds.Dy())
	}
}

func TestNormalizeForRemotePortraitEdge(t *testing.T) {
	// 세로가 긴 이미지도 긴 변 기준으로 접혀야 한다
	data := testPNG(t, 500, 2000)

	normalized, _, err := NormalizeForRemote(data, 1000)
	if err != nil {
		t.Fatalf("NormalizeForRemote: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(normalized))
	if err != nil {
		t.Fatalf("decode normalized: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dy() != 1000 {
		t.Errorf("longer edge = %d, want 1000", bounds.Dy())
	}
	if bounds.Dx() != 250 {
		t.Errorf("shorter edge = %d, want 250", bounds.Dx())
	}
}

func TestDecodeBase64Image(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4E, 0x47}
	encoded := base64.StdEncoding.EncodeToString(raw)

	plain, err := DecodeBase64Image(encoded)
	if err != nil {
		t.Fatalf("plain base64: %v", err)
	}
	if !bytes.Equal(plain, raw) {
		t.Error("plain base64 roundtrip mismatch")
	}

	withPrefix, err := DecodeBase64Image("data:image/png;base64," + encoded)
	if err != nil {
		t.Fatalf("data URL: %v", err)
	}
	if !bytes.Equal(withPrefix, raw) {
		t.Error("data URL roundtrip mismatch")
	}

	if _, err := DecodeBase64Image("not-base64!!!"); err == nil {
		t.Error("invalid base64 should return an error")
	}
}

func TestConvertImageToBase64(t *testing.T) {
	raw := []byte("image-bytes")
	encoded := ConvertImageToBase64(raw)

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(decoded, raw) {
		t.Error("base64 roundtrip mismatch")
	}
}
