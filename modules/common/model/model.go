package model

import (
	"time"

	"product-studio-server/modules/promptkit"
)

// Job 상태
const (
	StatusPending       = "pending"
	StatusProcessing    = "processing"
	StatusCompleted     = "completed"
	StatusFailed        = "failed"
	StatusUserCancelled = "user_cancelled"
)

// Shot 상태
const (
	ShotPending    = "pending"
	ShotProcessing = "processing"
	ShotCompleted  = "completed"
	ShotFailed     = "failed"
	ShotSkipped    = "skipped"
)

// 에러 코드
const (
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeImageRequired  = "IMAGE_REQUIRED"
	ErrCodeJobNotFound    = "JOB_NOT_FOUND"
	ErrCodeInternalError  = "INTERNAL_ERROR"
	ErrCodeServiceFailed  = "SERVICE_FAILED"
	ErrCodeEmptyResponse  = "EMPTY_RESPONSE"
)

// ShotResult - 배치 내 한 샷의 결과 슬롯
// 배치 시작 시점에 placeholder로 먼저 생성되고, 자신의 호출이 끝날 때
// 결과 또는 에러가 채워진다. 동시 실행 중인 다른 샷과 공유되지 않는다
type ShotResult struct {
	Index        int    `json:"index"`
	Label        string `json:"label"`
	Status       string `json:"status"`
	ImageBase64  string `json:"imageBase64,omitempty"`
	MimeType     string `json:"mimeType,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`

	// 다운로드 변환용 원본 바이트 (JSON 직렬화 제외)
	ImageData []byte `json:"-"`
}

// GenerationJob - 한 번의 생성 세션
// 결과는 프로세스 메모리에만 머문다: "현재 다운로드 가능한 결과"를 전역으로
// 두는 대신 세션별 객체가 소유한다
type GenerationJob struct {
	JobID     string            `json:"jobId"`
	Workflow  string            `json:"workflow"` // "studio" | "photoshoot" | "turntable"
	Status    string            `json:"status"`
	Config    *promptkit.Config `json:"-"`
	Shots     []ShotResult      `json:"shots"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`

	TotalShots     int    `json:"totalShots"`
	CompletedShots int    `json:"completedShots"`
	FailedShots    int    `json:"failedShots"`
	ErrorMessage   string `json:"errorMessage,omitempty"`

	// 비동기 큐 경로용 입력 페이로드 (enqueue 시점에 저장)
	InputPayload []byte `json:"-"`
}

// ShotUpdate - 진행 상황 브로드캐스트 페이로드
type ShotUpdate struct {
	Type      string      `json:"type"` // "shot_update" | "job_done"
	JobID     string      `json:"jobId"`
	Shot      *ShotResult `json:"shot,omitempty"`
	Completed int         `json:"completed"`
	Failed    int         `json:"failed"`
	Total     int         `json:"total"`
	Status    string      `json:"status,omitempty"`
}
