package photoshoot

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

// generateFunc - 샷 1장 생성 호출 시그니처 (테스트에서 교체)
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
		log.Println("❌ [Photoshoot] Failed to create Gemini client")
		return nil
	}

	cfg := config.GetConfig()

	log.Println("✅ [Photoshoot] Service initialized")
	return &Service{
		store:         store,
		rdb:           rdb,
		generate:      client.GenerateImage,
		maxConcurrent: cfg.MaxConcurrentShots,
	}
}

// decodeAttachment - base64 페이로드 → 정규화된 첨부 이미지
func decodeAttachment(payload *ImagePayload) (*promptkit.AttachedImage, error) {
	if payload == nil || payload.Data == "" {
		return nil, nil
	}

	cfg := config.GetConfig()

	raw, err := utils.DecodeBase64Image(payload.Data)
	if err != nil {
		return nil, err
	}

	normalized, mimeType, err := utils.NormalizeForRemote(raw, cfg.MaxImageEdge)
	if err != nil {
		return nil, err
	}

	return &promptkit.AttachedImage{Data: normalized, MimeType: mimeType}, nil
}

// buildConfig - 요청을 promptkit.Config 스냅샷으로 변환
// 포토슛은 레퍼런스 없이 제품/질감 이미지만 받는다
func buildConfig(req *PhotoshootRequest) (*promptkit.Config, error) {
	cfg := req.Options

	var err error
	if cfg.ProductImage, err = decodeAttachment(req.ProductImage); err != nil {
		return nil, fmt.Errorf("product image: %w", err)
	}
	if cfg.TextureImage, err = decodeAttachment(req.TextureImage); err != nil {
		return nil, fmt.Errorf("texture image: %w", err)
	}

	return &cfg, nil
}

// collectImages - 첨부 이미지를 고정 순서로 원격 호출 파트 목록으로 변환
func collectImages(cfg *promptkit.Config) []gemini.InlineImage {
	var images []gemini.InlineImage
	for _, attached := range []*promptkit.AttachedImage{cfg.ProductImage, cfg.TextureImage} {
		if attached != nil && len(attached.Data) > 0 {
			images = append(images, gemini.InlineImage{Data: attached.Data, MimeType: attached.MimeType})
		}
	}
	return images
}

// uniquenessToken - 같은 옵션으로 뽑은 샷끼리의 결과 중복을 깨는 토큰
// 프롬프트 말미에 붙으며 장면 의미에는 영향을 주지 않는다
func uniquenessToken() string {
	return fmt.Sprintf("\n\n(capture reference: %d-%06d)", time.Now().UnixMilli(), rand.Intn(1000000))
}

// shotLabels - 카탈로그 부분집합의 타이틀 목록 (슬롯 생성용)
func shotLabels(shots []ShotSpec) []string {
	labels := make([]string, len(shots))
	for i, spec := range shots {
		labels[i] = spec.Title
	}
	return labels
}

// runBatch - 배치 오케스트레이터 본체
// 샷은 maxConcurrent 동시성으로 생성되고 실패는 슬롯 단위로 고립된다
// 취소 플래그는 아직 시작하지 않은 샷만 막는다 - 진행 중인 샷은 끝까지 간다
func (s *Service) runBatch(ctx context.Context, jobID string, baseCfg *promptkit.Config, shots []ShotSpec, aspectRatio string) {
	maxConcurrent := s.maxConcurrent
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	semaphore := make(chan struct{}, maxConcurrent)

	var wg sync.WaitGroup

	for i, spec := range shots {
		wg.Add(1)
		go func(index int, spec ShotSpec) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			// 취소는 시작 전에만 판정 - 이 지점을 지난 샷은 완주한다
			if redis.IsJobCancelled(s.rdb, jobID) {
				log.Printf("🛑 [Photoshoot] Shot skipped (cancelled) - JobID: %s, Shot: %s", jobID, spec.Title)
				s.store.CompleteShot(jobID, model.ShotResult{
					Index:  index,
					Label:  spec.Title,
					Status: model.ShotSkipped,
				})
				return
			}

			shotCfg := spec.Apply(baseCfg)
			mode := promptkit.ResolveModeFromConfig(shotCfg)

			workflow := promptkit.WorkflowProduct
			workflow.IncludeWaterInteraction = isWaterScenario(spec.Title)

			prompt := promptkit.Assemble(shotCfg, mode, workflow) + uniquenessToken()

			log.Printf("🎨 [Photoshoot] Generating shot %d/%d - JobID: %s, Shot: %s", index+1, len(shots), jobID, spec.Title)

			imageData, mimeType, err := s.generate(ctx, collectImages(shotCfg), prompt, aspectRatio)
			if err != nil {
				errorMsg := "Generation failed"
				if errors.Is(err, gemini.ErrNoImage) {
					errorMsg = "The service returned no image"
				}
				log.Printf("❌ [Photoshoot] Shot failed - JobID: %s, Shot: %s: %v", jobID, spec.Title, err)

				s.store.CompleteShot(jobID, model.ShotResult{
					Index:        index,
					Label:        spec.Title,
					Status:       model.ShotFailed,
					ErrorMessage: errorMsg,
				})
				return
			}

			s.store.CompleteShot(jobID, model.ShotResult{
				Index:       index,
				Label:       spec.Title,
				Status:      model.ShotCompleted,
				ImageBase64: utils.ConvertImageToBase64(imageData),
				MimeType:    mimeType,
				ImageData:   imageData,
			})
			log.Printf("✅ [Photoshoot] Shot completed - JobID: %s, Shot: %s, %d bytes", jobID, spec.Title, len(imageData))
		}(i, spec)
	}

	// 배치 완료 신호는 모든 샷이 정착한 뒤 정확히 한 번
	wg.Wait()
	s.store.FinishJob(jobID)
}

// GeneratePhotoshoot - 동기 배치 생성: 모든 샷이 정착할 때까지 기다렸다 응답
func (s *Service) GeneratePhotoshoot(ctx context.Context, req *PhotoshootRequest) (*PhotoshootResponse, error) {
	if req.ProductImage == nil || req.ProductImage.Data == "" {
		return &PhotoshootResponse{
			Success:      false,
			ErrorMessage: "Product image is required",
			ErrorCode:    model.ErrCodeImageRequired,
		}, nil
	}

	shots := SelectShots(req.ShotTitles)
	if len(shots) == 0 {
		return &PhotoshootResponse{
			Success:      false,
			ErrorMessage: "No matching shots in catalog",
			ErrorCode:    model.ErrCodeInvalidRequest,
		}, nil
	}

	cfg, err := buildConfig(req)
	if err != nil {
		return &PhotoshootResponse{
			Success:      false,
			ErrorMessage: "Failed to decode attached image",
			ErrorCode:    model.ErrCodeInvalidRequest,
		}, err
	}

	jobID := uuid.New().String()
	log.Printf("📦 [Photoshoot] Batch started - JobID: %s, Shots: %d", jobID, len(shots))

	job := &model.GenerationJob{
		JobID:    jobID,
		Workflow: "photoshoot",
		Status:   model.StatusProcessing,
		Config:   cfg,
	}
	s.store.CreateJob(job, shotLabels(shots))

	s.runBatch(ctx, jobID, cfg, shots, req.AspectRatio)

	return s.buildResponse(jobID)
}

// ProcessJob - 워커 경로: 큐에서 꺼낸 잡의 페이로드로 배치 실행
func (s *Service) ProcessJob(ctx context.Context, job *model.GenerationJob) error {
	// 큐 대기 중 취소된 잡은 최종 상태를 유지한 채 건너뛴다
	if job.Status == model.StatusUserCancelled {
		log.Printf("🛑 [Photoshoot] Job already cancelled, skipping - JobID: %s", job.JobID)
		return nil
	}

	var req PhotoshootRequest
	if err := json.Unmarshal(job.InputPayload, &req); err != nil {
		s.store.FailJob(job.JobID, "Invalid job payload")
		return fmt.Errorf("unmarshal photoshoot payload: %w", err)
	}

	if req.ProductImage == nil || req.ProductImage.Data == "" {
		s.store.FailJob(job.JobID, "Product image is required")
		return errors.New("product image is required")
	}

	shots := SelectShots(req.ShotTitles)
	if len(shots) == 0 {
		s.store.FailJob(job.JobID, "No matching shots in catalog")
		return errors.New("no matching shots in catalog")
	}

	cfg, err := buildConfig(&req)
	if err != nil {
		s.store.FailJob(job.JobID, "Failed to decode attached image")
		return err
	}

	job.Config = cfg
	job.Status = model.StatusProcessing
	s.store.CreateJob(job, shotLabels(shots))

	log.Printf("📦 [Photoshoot] Batch started (queued) - JobID: %s, Shots: %d", job.JobID, len(shots))
	s.runBatch(ctx, job.JobID, cfg, shots, req.AspectRatio)
	return nil
}

// buildResponse - 스토어의 최종 잡 상태를 배치 응답으로 변환
func (s *Service) buildResponse(jobID string) (*PhotoshootResponse, error) {
	job, ok := s.store.GetJob(jobID)
	if !ok {
		return &PhotoshootResponse{
			Success:      false,
			ErrorMessage: "Job not found",
			ErrorCode:    model.ErrCodeJobNotFound,
		}, nil
	}

	return &PhotoshootResponse{
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
