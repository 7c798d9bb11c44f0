package suggest

import "encoding/json"

// ImagePayload - 요청에 실려오는 이미지 1장 (base64 + MIME 타입)
type ImagePayload struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

// SuggestOptionsRequest - 제품 이미지 기반 장면 옵션 추천 요청
type SuggestOptionsRequest struct {
	ProductImage *ImagePayload `json:"productImage"`
}

// SuggestOptionsResponse - 추천된 옵션 세트 (UI 폼에 그대로 주입 가능한 JSON)
type SuggestOptionsResponse struct {
	Success      bool            `json:"success"`
	Options      json.RawMessage `json:"options,omitempty"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
	ErrorCode    string          `json:"errorCode,omitempty"`
}

// SuggestSubjectRequest - 제품 이미지 기반 피사체 설명 추천 요청
type SuggestSubjectRequest struct {
	ProductImage *ImagePayload `json:"productImage"`
}

// SuggestSubjectResponse - 추천된 피사체 프롬프트 텍스트
type SuggestSubjectResponse struct {
	Success      bool   `json:"success"`
	Subject      string `json:"subject,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	ErrorCode    string `json:"errorCode,omitempty"`
}
