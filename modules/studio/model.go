package studio

import "product-studio-server/modules/promptkit"

// ImagePayload - 요청에 실려오는 이미지 1장 (base64 + MIME 타입)
type ImagePayload struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

// GenerateRequest - 단일 샷 생성 요청
// options는 UI 폼 상태의 스냅샷이며 promptkit.Config로 그대로 역직렬화된다
type GenerateRequest struct {
	Options promptkit.Config `json:"options"`

	ProductImage   *ImagePayload `json:"productImage,omitempty"`
	ReferenceImage *ImagePayload `json:"referenceImage,omitempty"`
	DesignImage    *ImagePayload `json:"designImage,omitempty"`
	TextureImage   *ImagePayload `json:"textureImage,omitempty"`
	StyleImage     *ImagePayload `json:"styleImage,omitempty"`

	AspectRatio string `json:"aspectRatio,omitempty"`
}

// GenerateResponse - 단일 샷 생성 응답
type GenerateResponse struct {
	Success      bool   `json:"success"`
	JobID        string `json:"jobId,omitempty"`
	Mode         string `json:"mode,omitempty"`
	ImageBase64  string `json:"imageBase64,omitempty"`
	MimeType     string `json:"mimeType,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	ErrorCode    string `json:"errorCode,omitempty"`
}
