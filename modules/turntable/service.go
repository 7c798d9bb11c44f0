package turntable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/google/uuid"

	"product-studio-server/modules/common/config"
	"product-studio-server/modules/common/gemini"
	"product-studio-server/modules/common/model"
	"product-studio-server/modules/common/redis"
	"product-studio-server/modules/common/utils"
	"product-studio-server/modules/promptkit"
)

type generateFunc func(ctx context.Context, images []gemini.InlineImage, prompt string, aspectRatio string) ([]byte, string, error)

type Service struct {
	store         *model.Store
	rdb           *goredis.Client
	generate      generateFunc
	maxConcurrent int
}

func NewService(store *model.Store, rdb *goredis.Client) *Service {
	client := gemini.NewClient()
	if client == nil {
		log.Println("❌ [Turntable] Failed to create Gemini client")
		return nil
	}

	cfg := config.GetConfig()

	log.Println("✅ [Turntable] Service initialized")
	return &Service{
		store:         store,
		rdb:           rdb,
		generate:      client.GenerateImage,
		maxConcurrent: cfg.MaxConcurrentShots,
	}
}

// buildConfig - 요청을 promptkit.Config 스냅샷으로 변환 (제품 이미지만 받는다)
func buildConfig(req *TurntableRequest) (*promptkit.Config, error) {
	cfg := req.Options

	if req.ProductImage == nil || req.ProductImage.Data == "" {
		return nil, errors.New("product image is required")
	}

	serverCfg := config.GetConfig()

	raw, err := utils.DecodeBase64Image(req.ProductImage.Data)
	if err != nil {
		return nil, fmt.Errorf("product image: %w", err)
	}

	normalized, mimeType, err := utils.NormalizeForRemote(raw, serverCfg.MaxImageEdge)
	if err != nil {
		return nil, fmt.Errorf("product image: %w", err)
	}

	cfg.ProductImage = &promptkit.AttachedImage{Data: normalized, MimeType: mimeType}
	return &cfg, nil
}

// uniquenessToken - 같은 옵션으로 뽑은 각도끼리의 결과 중복을 깨는 토큰
// 프롬프트 말미에 붙으며 장면 의미에는 영향을 주지 않는다
func uniquenessToken() string {
	return fmt.Sprintf("\n\n(capture reference: %d-%06d)", time.Now().UnixMilli(), rand.Intn(1000000))
}

func angleLabelList(angles []int) []string {
	labels := make([]string, len(angles))
	for i, angle := range angles {
		labels[i] = AngleLabel(angle)
	}
	return labels
}

// normalizeAngles - 요청 각도 정리 (빈 목록 = 기본 8각도, 범위 밖은 0-359로 접는다)
func normalizeAngles(angles []int) []int {
	if len(angles) == 0 {
		out := make([]int, len(DefaultAngles))
		copy(out, DefaultAngles)
		return out
	}

	out := make([]int, len(angles))
	for i, angle := range angles {
		normalized := angle % 360
		if normalized < 0 {
			normalized += 360
		}
		out[i] = normalized
	}
	return out
}

// runBatch - 각도별 생성 배치: 실패는 각도 슬롯 단위로 고립된다
func (s *Service) runBatch(ctx context.Context, jobID string, cfg *promptkit.Config, angles []int, aspectRatio string) {
	maxConcurrent := s.maxConcurrent
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	semaphore := make(chan struct{}, maxConcurrent)

	images := []gemini.InlineImage{{Data: cfg.ProductImage.Data, MimeType: cfg.ProductImage.MimeType}}

	var wg sync.WaitGroup

	for i, angle := range angles {
		wg.Add(1)
		go func(index, angle int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			label := AngleLabel(angle)

			if redis.IsJobCancelled(s.rdb, jobID) {
				log.Printf("🛑 [Turntable] Angle skipped (cancelled) - JobID: %s, Angle: %d", jobID, angle)
				s.store.CompleteShot(jobID, model.ShotResult{
					Index:  index,
					Label:  label,
					Status: model.ShotSkipped,
				})
				return
			}

			prompt := BuildAnglePrompt(cfg, angle) + uniquenessToken()

			log.Printf("🎨 [Turntable] Generating angle %d (%s) - JobID: %s", angle, label, jobID)

			imageData, mimeType, err := s.generate(ctx, images, prompt, aspectRatio)
			if err != nil {
				errorMsg := "Generation failed"
				if errors.Is(err, gemini.ErrNoImage) {
					errorMsg = "The service returned no image"
				}
				log.Printf("❌ [Turntable] Angle failed - JobID: %s, Angle: %d: %v", jobID, angle, err)

				s.store.CompleteShot(jobID, model.ShotResult{
					Index:        index,
					Label:        label,
					Status:       model.ShotFailed,
					ErrorMessage: errorMsg,
				})
				return
			}

			s.store.CompleteShot(jobID, model.ShotResult{
				Index:       index,
				Label:       label,
				Status:      model.ShotCompleted,
				ImageBase64: utils.ConvertImageToBase64(imageData),
				MimeType:    mimeType,
				ImageData:   imageData,
			})
			log.Printf("✅ [Turntable] Angle completed - JobID: %s, Angle: %d, %d bytes", jobID, angle, len(imageData))
		}(i, angle)
	}

	wg.Wait()
	s.store.FinishJob(jobID)
}

// GenerateTurntable - 동기 턴테이블 생성
func (s *Service) GenerateTurntable(ctx context.Context, req *TurntableRequest) (*TurntableResponse, error) {
	if req.ProductImage == nil || req.ProductImage.Data == "" {
		return &TurntableResponse{
			Success:      false,
			ErrorMessage: "Product image is required",
			ErrorCode:    model.ErrCodeImageRequired,
		}, nil
	}

	cfg, err := buildConfig(req)
	if err != nil {
		return &TurntableResponse{
			Success:      false,
			ErrorMessage: "Failed to decode attached image",
			ErrorCode:    model.ErrCodeInvalidRequest,
		}, err
	}

	angles := normalizeAngles(req.Angles)

	jobID := uuid.New().String()
	log.Printf("📦 [Turntable] Batch started - JobID: %s, Angles: %v", jobID, angles)

	job := &model.GenerationJob{
		JobID:    jobID,
		Workflow: "turntable",
		Status:   model.StatusProcessing,
		Config:   cfg,
	}
	s.store.CreateJob(job, angleLabelList(angles))

	s.runBatch(ctx, jobID, cfg, angles, req.AspectRatio)

	return s.buildResponse(jobID)
}

// ProcessJob - 워커 경로: 큐에서 꺼낸 잡의 페이로드로 턴테이블 실행
func (s *Service) ProcessJob(ctx context.Context, job *model.GenerationJob) error {
	// 큐 대기 중 취소된 잡은 최종 상태를 유지한 채 건너뛴다
	if job.Status == model.StatusUserCancelled {
		log.Printf("🛑 [Turntable] Job already cancelled, skipping - JobID: %s", job.JobID)
		return nil
	}

	var req TurntableRequest
	if err := json.Unmarshal(job.InputPayload, &req); err != nil {
		s.store.FailJob(job.JobID, "Invalid job payload")
		return fmt.Errorf("unmarshal turntable payload: %w", err)
	}

	cfg, err := buildConfig(&req)
	if err != nil {
		s.store.FailJob(job.JobID, "Failed to decode attached image")
		return err
	}

	angles := normalizeAngles(req.Angles)

	job.Config = cfg
	job.Status = model.StatusProcessing
	s.store.CreateJob(job, angleLabelList(angles))

	log.Printf("📦 [Turntable] Batch started (queued) - JobID: %s, Angles: %v", job.JobID, angles)
	s.runBatch(ctx, job.JobID, cfg, angles, req.AspectRatio)
	return nil
}

func (s *Service) buildResponse(jobID string) (*TurntableResponse, error) {
	job, ok := s.store.GetJob(jobID)
	if !ok {
		return &TurntableResponse{
			Success:      false,
			ErrorMessage: "Job not found",
			ErrorCode:    model.ErrCodeJobNotFound,
		}, nil
	}

	return &TurntableResponse{
		Success:        job.Status == model.StatusCompleted,
		JobID:          job.JobID,
		Status:         job.Status,
		Shots:          job.Shots,
		TotalShots:     job.TotalShots,
		CompletedShots: job.CompletedShots,
		FailedShots:    job.FailedShots,
		ErrorMessage:   job.ErrorMessage,
	}, nil
}
