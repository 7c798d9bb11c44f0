package gemini

import (
	"context"
	"errors"
	"fmt"
	"log"

	"google.golang.org/genai"

	"product-studio-server/modules/common/config"
)

// 원격 서비스 실패 종류 구분:
// 호출 자체가 실패한 경우(에러 반환)와 호출은 성공했지만 기대한 페이로드가
// 응답에 없는 경우(ErrNo*)는 별개의 조건이다
var (
	ErrNoImage = errors.New("no image in API response")
	ErrNoText  = errors.New("no text in API response")
	ErrNoJSON  = errors.New("no structured output in API response")
)

// InlineImage - 원격 호출에 첨부할 이미지 1장 (정규화 완료 상태여야 함)
type InlineImage struct {
	Data     []byte
	MimeType string
}

// Client - 원격 이미지 서비스 클라이언트
// 전송 계층은 들여다보지 않는다: 입력을 구성하고, 실패를 현재 작업에 국한시키고,
// "이미지 없음"을 호출 실패와 구분하는 것이 전부다
type Client struct {
	apiKeys []string
	model   string
}

// NewClient - 설정에서 클라이언트 생성
func NewClient() *Client {
	cfg := config.GetConfig()
	keys := cfg.AllAPIKeys()
	if len(keys) == 0 {
		log.Println("❌ [Gemini] No API keys configured")
		return nil
	}

	log.Printf("✅ [Gemini] Client initialized - model: %s, keys: %d", cfg.GeminiModel, len(keys))
	return &Client{
		apiKeys: keys,
		model:   cfg.GeminiModel,
	}
}

// buildParts - 이미지들 + 프롬프트 텍스트를 genai Part 목록으로 구성
func buildParts(images []InlineImage, prompt string) []*genai.Part {
	parts := make([]*genai.Part, 0, len(images)+1)
	for _, img := range images {
		if len(img.Data) == 0 || img.MimeType == "" {
			continue
		}
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: img.MimeType,
				Data:     img.Data,
			},
		})
	}
	parts = append(parts, genai.NewPartFromText(prompt))
	return parts
}

// GenerateImage - 이미지 부분들 + 프롬프트 → 생성된 이미지 바이트 + MIME 타입
func (c *Client) GenerateImage(ctx context.Context, images []InlineImage, prompt, aspectRatio string) ([]byte, string, error) {
	if aspectRatio == "" {
		aspectRatio = "1:1"
	}

	content := &genai.Content{
		Parts: buildParts(images, prompt),
	}

	result, err := GenerateContentWithRetry(ctx, c.apiKeys, c.model, []*genai.Content{content},
		&genai.GenerateContentConfig{
			ImageConfig: &genai.ImageConfig{
				AspectRatio: aspectRatio,
			},
			Temperature: floatPtr(0.5),
		})
	if err != nil {
		return nil, "", fmt.Errorf("Gemini API error: %w", err)
	}

	// 응답에서 이미지 추출
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mimeType := part.InlineData.MIMEType
				if mimeType == "" {
					mimeType = "image/png"
				}
				log.Printf("✅ [Gemini] Image generated: %d bytes (%s)", len(part.InlineData.Data), mimeType)
				return part.InlineData.Data, mimeType, nil
			}
		}
	}

	// 호출은 성공했지만 이미지가 없음 - 호출 실패와 구분되는 조건
	return nil, "", ErrNoImage
}

// SuggestJSON - 이미지 + 프롬프트 + 스키마 → 스키마를 따르는 JSON 바이트
func (c *Client) SuggestJSON(ctx context.Context, image InlineImage, prompt string, schema *genai.Schema) ([]byte, error) {
	content := &genai.Content{
		Parts: buildParts([]InlineImage{image}, prompt),
	}

	result, err := GenerateContentWithRetry(ctx, c.apiKeys, c.model, []*genai.Content{content},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
			Temperature:      floatPtr(0.3),
		})
	if err != nil {
		return nil, fmt.Errorf("Gemini API error: %w", err)
	}

	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				log.Printf("✅ [Gemini] Structured output received: %d bytes", len(part.Text))
				return []byte(part.Text), nil
			}
		}
	}

	return nil, ErrNoJSON
}

// SuggestText - 이미지들 + 프롬프트 → 자유 텍스트
func (c *Client) SuggestText(ctx context.Context, images []InlineImage, prompt string) (string, error) {
	content := &genai.Content{
		Parts: buildParts(images, prompt),
	}

	result, err := GenerateContentWithRetry(ctx, c.apiKeys, c.model, []*genai.Content{content},
		&genai.GenerateContentConfig{
			Temperature: floatPtr(0.7),
		})
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}

	return "", ErrNoText
}

func floatPtr(f float64) *float32 {
	f32 := float32(f)
	return &f32
}
