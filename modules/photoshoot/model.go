package photoshoot

import (
	"product-studio-server/modules/common/model"
	"product-studio-server/modules/promptkit"
)

// ImagePayload - 요청에 실려오는 이미지 1장 (base64 + MIME 타입)
type ImagePayload struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

// PhotoshootRequest - 가상 포토슛 배치 요청
// shotTitles가 비어 있으면 기본 카탈로그 전체를 생성한다
type PhotoshootRequest struct {
	Options promptkit.Config `json:"options"`

	ProductImage *ImagePayload `json:"productImage,omitempty"`
	TextureImage *ImagePayload `json:"textureImage,omitempty"`

	ShotTitles  []string `json:"shotTitles,omitempty"`
	AspectRatio string   `json:"aspectRatio,omitempty"`
}

// PhotoshootResponse - 배치 응답: 슬롯 순서는 요청된 샷 순서와 동일
type PhotoshootResponse struct {
	Success        bool               `json:"success"`
	JobID          string             `json:"jobId,omitempty"`
	Status         string             `json:"status,omitempty"`
	Shots          []model.ShotResult `json:"shots,omitempty"`
	TotalShots     int                `json:"totalShots"`
	CompletedShots int                `json:"completedShots"`
	FailedShots    int                `json:"failedShots"`
	ErrorMessage   string             `json:"errorMessage,omitempty"`
	ErrorCode      string             `json:"errorCode,omitempty"`
}
