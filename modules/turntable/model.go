package turntable

import (
	"fmt"

	"product-studio-server/modules/common/model"
	"product-studio-server/modules/promptkit"
)

// DefaultAngles - 기본 턴테이블 각도 (시계 방향, 45도 간격)
var DefaultAngles = []int{0, 45, 90, 135, 180, 225, 270, 315}

// angleLabels - 각도 → 표시 라벨
var angleLabels = map[int]string{
	0:   "Front",
	45:  "Front-Right",
	90:  "Right",
	135: "Back-Right",
	180: "Back",
	225: "Back-Left",
	270: "Left",
	315: "Front-Left",
}

// AngleLabel - 각도 라벨 조회 (미정의 각도는 도수 표기)
func AngleLabel(angle int) string {
	if label, ok := angleLabels[angle]; ok {
		return label
	}
	return fmt.Sprintf("%d degrees", angle)
}

// ImagePayload - 요청에 실려오는 이미지 1장 (base64 + MIME 타입)
type ImagePayload struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

// TurntableRequest - 스타일라이즈드 3D 턴테이블 생성 요청
// options의 styleTransform 계열이 모든 각도에 동일하게 적용된다
type TurntableRequest struct {
	Options promptkit.Config `json:"options"`

	ProductImage *ImagePayload `json:"productImage,omitempty"`

	// 생성할 각도 목록 (비어 있으면 기본 8각도)
	Angles []int `json:"angles,omitempty"`

	AspectRatio string `json:"aspectRatio,omitempty"`
}

// TurntableResponse - 턴테이블 생성 응답: 슬롯 순서는 각도 순서와 동일
type TurntableResponse struct {
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
