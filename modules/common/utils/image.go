package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG 디코더 등록
	"image/png"
	"log"
	"math"
	"strings"

	"github.com/kolesa-team/go-webp/decoder"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// isWebP - RIFF....WEBP 매직 확인
func isWebP(data []byte) bool {
	return len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP"))
}

// decodeImage - png/jpeg는 표준 디코더, webp는 전용 디코더로 디코딩
func decodeImage(data []byte) (image.Image, string, error) {
	if isWebP(data) {
		img, err := webp.Decode(bytes.NewReader(data), &decoder.Options{})
		if err != nil {
			return nil, "", fmt.Errorf("failed to decode webp: %w", err)
		}
		return img, "webp", nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// NormalizeForRemote - 원격 서비스에 첨부하기 전 필수 정규화
// 긴 변이 maxEdge를 넘으면 비율을 유지하며 축소하고 PNG로 재인코딩한다
// webp 입력은 크기와 무관하게 PNG로 변환된다
// 그 외에는 원본 바이트를 그대로 반환한다
func NormalizeForRemote(imageData []byte, maxEdge int) ([]byte, string, error) {
	img, format, err := decodeImage(imageData)
	if err != nil {
		return nil, "", err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	longer := width
	if height > longer {
		longer = height
	}

	if longer <= maxEdge && format != "webp" {
		// 축소 불필요 - 원본 그대로
		return imageData, "image/" + format, nil
	}

	newWidth, newHeight := width, height
	resized := img
	if longer > maxEdge {
		scale := float64(maxEdge) / float64(longer)
		newWidth = int(math.Round(float64(width) * scale))
		newHeight = int(math.Round(float64(height) * scale))
		resized = ScaleImage(img, newWidth, newHeight)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, resized); err != nil {
		return nil, "", fmt.Errorf("failed to encode resized image: %w", err)
	}

	log.Printf("🔄 Image normalized: %dx%d → %dx%d (%d → %d bytes)",
		width, height, newWidth, newHeight, len(imageData), buf.Len())

	return buf.Bytes(), "image/png", nil
}

// ScaleImage - 이미지를 지정된 크기로 축소 (Nearest Neighbor)
func ScaleImage(src image.Image, targetWidth, targetHeight int) image.Image {
	srcBounds := src.Bounds()
	srcWidth := srcBounds.Dx()
	srcHeight := srcBounds.Dy()

	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))

	scaleX := float64(srcWidth) / float64(targetWidth)
	scaleY := float64(srcHeight) / float64(targetHeight)

	for y := 0; y < targetHeight; y++ {
		for x := 0; x < targetWidth; x++ {
			srcX := srcBounds.Min.X + int(float64(x)*scaleX)
			srcY := srcBounds.Min.Y + int(float64(y)*scaleY)
			dst.Set(x, y, src.At(srcX, srcY))
		}
	}

	return dst
}

// DecodeBase64Image - base64 이미지 디코딩 (data URL prefix 허용)
func DecodeBase64Image(imgBase64 string) ([]byte, error) {
	base64Data := imgBase64

	// data:image/xxx;base64, prefix 제거
	if idx := strings.Index(imgBase64, ";base64,"); idx >= 0 {
		base64Data = imgBase64[idx+len(";base64,"):]
	}

	imageData, err := base64.StdEncoding.DecodeString(base64Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}

	return imageData, nil
}

// ConvertImageToBase64 - 이미지 바이너리를 base64로 변환
func ConvertImageToBase64(imageData []byte) string {
	return base64.StdEncoding.EncodeToString(imageData)
}

// ConvertPNGToWebP - PNG 바이너리를 WebP로 변환 (다운로드 품질 경로)
func ConvertPNGToWebP(pngData []byte, quality float32) ([]byte, error) {
	pngReader := bytes.NewReader(pngData)
	img, err := png.Decode(pngReader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode PNG: %w", err)
	}

	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, quality)
	if err != nil {
		return nil, fmt.Errorf("failed to create WebP encoder options: %w", err)
	}

	var webpBuffer bytes.Buffer
	if err := webp.Encode(&webpBuffer, img, options); err != nil {
		return nil, fmt.Errorf("failed to encode WebP: %w", err)
	}

	webpData := webpBuffer.Bytes()
	log.Printf("✅ PNG converted to WebP: %d bytes → %d bytes (%.1f%% reduction)",
		len(pngData), len(webpData),
		float64(len(pngData)-len(webpData))/float64(len(pngData))*100)

	return webpData, nil
}
