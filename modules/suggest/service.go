package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"product-studio-server/modules/common/config"
	"product-studio-server/modules/common/gemini"
	"product-studio-server/modules/common/model"
	"product-studio-server/modules/common/utils"
)

type Service struct {
	gemini *gemini.Client
}

func NewService() *Service {
	client := gemini.NewClient()
	if client == nil {
		log.Println("❌ [Suggest] Failed to create Gemini client")
		return nil
	}

	log.Println("✅ [Suggest] Service initialized")
	return &Service{gemini: client}
}

// decodeImage - base64 페이로드 → 정규화된 첨부 이미지
func decodeImage(payload *ImagePayload) (gemini.InlineImage, error) {
	cfg := config.GetConfig()

	raw, err := utils.DecodeBase64Image(payload.Data)
	if err != nil {
		return gemini.InlineImage{}, err
	}

	normalized, mimeType, err := utils.NormalizeForRemote(raw, cfg.MaxImageEdge)
	if err != nil {
		return gemini.InlineImage{}, err
	}

	return gemini.InlineImage{Data: normalized, MimeType: mimeType}, nil
}

// SuggestOptions - 제품 이미지를 보고 장면 옵션 세트를 추천
func (s *Service) SuggestOptions(ctx context.Context, req *SuggestOptionsRequest) (*SuggestOptionsResponse, error) {
	if req.ProductImage == nil || req.ProductImage.Data == "" {
		return &SuggestOptionsResponse{
			Success:      false,
			ErrorMessage: "Product image is required",
			ErrorCode:    model.ErrCodeImageRequired,
		}, nil
	}

	image, err := decodeImage(req.ProductImage)
	if err != nil {
		return &SuggestOptionsResponse{
			Success:      false,
			ErrorMessage: "Failed to decode attached image",
			ErrorCode:    model.ErrCodeInvalidRequest,
		}, err
	}

	raw, err := s.gemini.SuggestJSON(ctx, image, BuildOptionsPrompt(), OptionsSchema())
	if err != nil {
		errorCode := model.ErrCodeServiceFailed
		errorMsg := "Suggestion failed"
		if errors.Is(err, gemini.ErrNoJSON) {
			errorCode = model.ErrCodeEmptyResponse
			errorMsg = "The service returned no suggestion"
		}
		log.Printf("❌ [Suggest] Options suggestion failed: %v", err)
		return &SuggestOptionsResponse{
			Success:      false,
			ErrorMessage: errorMsg,
			ErrorCode:    errorCode,
		}, nil
	}

	// 스키마 응답이라도 깨진 JSON은 빈 페이로드로 취급한다
	if !json.Valid(raw) {
		log.Printf("⚠️ [Suggest] Service returned invalid JSON: %s", truncate(string(raw), 200))
		return &SuggestOptionsResponse{
			Success:      false,
			ErrorMessage: "The service returned no suggestion",
			ErrorCode:    model.ErrCodeEmptyResponse,
		}, nil
	}

	log.Printf("✅ [Suggest] Options suggested (%d bytes)", len(raw))
	return &SuggestOptionsResponse{
		Success: true,
		Options: json.RawMessage(raw),
	}, nil
}

// SuggestSubject - 제품 이미지를 보고 피사체 설명 문장을 추천
func (s *Service) SuggestSubject(ctx context.Context, req *SuggestSubjectRequest) (*SuggestSubjectResponse, error) {
	if req.ProductImage == nil || req.ProductImage.Data == "" {
		return &SuggestSubjectResponse{
			Success:      false,
			ErrorMessage: "Product image is required",
			ErrorCode:    model.ErrCodeImageRequired,
		}, nil
	}

	image, err := decodeImage(req.ProductImage)
	if err != nil {
		return &SuggestSubjectResponse{
			Success:      false,
			ErrorMessage: "Failed to decode attached image",
			ErrorCode:    model.ErrCodeInvalidRequest,
		}, err
	}

	text, err := s.gemini.SuggestText(ctx, []gemini.InlineImage{image}, BuildSubjectPrompt())
	if err != nil {
		errorCode := model.ErrCodeServiceFailed
		errorMsg := "Suggestion failed"
		if errors.Is(err, gemini.ErrNoText) {
			errorCode = model.ErrCodeEmptyResponse
			errorMsg = "The service returned no suggestion"
		}
		log.Printf("❌ [Suggest] Subject suggestion failed: %v", err)
		return &SuggestSubjectResponse{
			Success:      false,
			ErrorMessage: errorMsg,
			ErrorCode:    errorCode,
		}, nil
	}

	subject := strings.TrimSpace(text)
	if subject == "" {
		return &SuggestSubjectResponse{
			Success:      false,
			ErrorMessage: "The service returned no suggestion",
			ErrorCode:    model.ErrCodeEmptyResponse,
		}, nil
	}

	log.Printf("✅ [Suggest] Subject suggested: %s", truncate(subject, 80))
	return &SuggestSubjectResponse{
		Success: true,
		Subject: subject,
	}, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return fmt.Sprintf("%s...", s[:max])
}
