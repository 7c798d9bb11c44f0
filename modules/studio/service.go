package studio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"product-studio-server/modules/common/config"
	"product-studio-server/modules/common/gemini"
	"product-studio-server/modules/common/model"
	"product-studio-server/modules/common/utils"
	"product-studio-server/modules/promptkit"
)

// generateFunc - 샷 생성 호출 시그니처 (테스트에서 교체)
type generateFunc func(ctx context.Context, images []gemini.InlineImage, prompt string, aspectRatio string) ([]byte, string, error)

type Service struct {
	store    *model.Store
	generate generateFunc
}

func NewService(store *model.Store) *Service {
	client := gemini.NewClient()
	if client == nil {
		log.Println("❌ [Studio] Failed to create Gemini client")
		return nil
	}

	log.Println("✅ [Studio] Service initialized")
	return &Service{
		store:    store,
		generate: client.GenerateImage,
	}
}

// decodeAttachment - base64 페이로드 → 정규화된 첨부 이미지
// 원격 서비스에 들어가는 모든 이미지는 긴 변 상한 정규화를 거친다
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

// BuildConfig - 요청을 promptkit.Config 스냅샷으로 변환 (첨부 디코딩 포함)
func BuildConfig(req *GenerateRequest) (*promptkit.Config, error) {
	cfg := req.Options

	var err error
	if cfg.ProductImage, err = decodeAttachment(req.ProductImage); err != nil {
		return nil, fmt.Errorf("product image: %w", err)
	}
	if cfg.ReferenceImage, err = decodeAttachment(req.ReferenceImage); err != nil {
		return nil, fmt.Errorf("reference image: %w", err)
	}
	if cfg.DesignImage, err = decodeAttachment(req.DesignImage); err != nil {
		return nil, fmt.Errorf("design image: %w", err)
	}
	if cfg.TextureImage, err = decodeAttachment(req.TextureImage); err != nil {
		return nil, fmt.Errorf("texture image: %w", err)
	}
	if cfg.StyleImage, err = decodeAttachment(req.StyleImage); err != nil {
		return nil, fmt.Errorf("style image: %w", err)
	}

	return &cfg, nil
}

// collectImages - 첨부 이미지를 고정 순서로 원격 호출 파트 목록으로 변환
// 순서 계약: product → reference → design → texture → style
func collectImages(cfg *promptkit.Config) []gemini.InlineImage {
	var images []gemini.InlineImage
	for _, attached := range []*promptkit.AttachedImage{
		cfg.ProductImage, cfg.ReferenceImage, cfg.DesignImage, cfg.TextureImage, cfg.StyleImage,
	} {
		if attached != nil && len(attached.Data) > 0 {
			images = append(images, gemini.InlineImage{Data: attached.Data, MimeType: attached.MimeType})
		}
	}
	return images
}

// Generate - 단일 샷 생성: 모드 결정 → 프롬프트 조립 → 원격 호출
func (s *Service) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	// 제품 이미지는 필수 - 원격 호출 전에 즉시 사용자에게 반환
	if req.ProductImage == nil || req.ProductImage.Data == "" {
		return &GenerateResponse{
			Success:      false,
			ErrorMessage: "Product image is required",
			ErrorCode:    model.ErrCodeImageRequired,
		}, nil
	}

	cfg, err := BuildConfig(req)
	if err != nil {
		return &GenerateResponse{
			Success:      false,
			ErrorMessage: "Failed to decode attached image",
			ErrorCode:    model.ErrCodeInvalidRequest,
		}, err
	}

	mode := promptkit.ResolveModeFromConfig(cfg)
	prompt := promptkit.Assemble(cfg, mode, promptkit.WorkflowProduct)

	jobID := uuid.New().String()
	log.Printf("🎨 [Studio] Generating - JobID: %s, Mode: %s", jobID, mode)

	// 단일 샷도 세션 객체를 만들어 결과를 소유시킨다 (다운로드 경로용)
	job := &model.GenerationJob{
		JobID:    jobID,
		Workflow: "studio",
		Status:   model.StatusProcessing,
		Config:   cfg,
	}
	s.store.CreateJob(job, []string{"Studio Shot"})

	return s.runShot(ctx, jobID, cfg, mode, prompt, req.AspectRatio)
}

// runShot - 생성 호출 1회를 실행하고 결과를 잡 슬롯에 기록
func (s *Service) runShot(ctx context.Context, jobID string, cfg *promptkit.Config, mode promptkit.Mode, prompt, aspectRatio string) (*GenerateResponse, error) {
	imageData, mimeType, err := s.generate(ctx, collectImages(cfg), prompt, aspectRatio)
	if err != nil {
		errorCode := model.ErrCodeServiceFailed
		errorMsg := "Generation failed"
		if errors.Is(err, gemini.ErrNoImage) {
			// 호출 성공 + 페이로드 없음 - 별개의 실패 종류
			errorCode = model.ErrCodeEmptyResponse
			errorMsg = "The service returned no image"
		}
		log.Printf("❌ [Studio] Generation failed - JobID: %s: %v", jobID, err)

		s.store.CompleteShot(jobID, model.ShotResult{
			Index:        0,
			Label:        "Studio Shot",
			Status:       model.ShotFailed,
			ErrorMessage: errorMsg,
		})
		s.store.FinishJob(jobID)

		return &GenerateResponse{
			Success:      false,
			JobID:        jobID,
			Mode:         string(mode),
			ErrorMessage: errorMsg,
			ErrorCode:    errorCode,
		}, nil
	}

	imageBase64 := utils.ConvertImageToBase64(imageData)
	s.store.CompleteShot(jobID, model.ShotResult{
		Index:       0,
		Label:       "Studio Shot",
		Status:      model.ShotCompleted,
		ImageBase64: imageBase64,
		MimeType:    mimeType,
		ImageData:   imageData,
	})
	s.store.FinishJob(jobID)

	log.Printf("✅ [Studio] Generation completed - JobID: %s, %d bytes", jobID, len(imageData))

	return &GenerateResponse{
		Success:     true,
		JobID:       jobID,
		Mode:        string(mode),
		ImageBase64: imageBase64,
		MimeType:    mimeType,
	}, nil
}

// ProcessJob - 워커 경로: 큐에서 꺼낸 잡의 페이로드로 단일 샷 실행
func (s *Service) ProcessJob(ctx context.Context, job *model.GenerationJob) error {
	// 큐 대기 중 취소된 잡은 최종 상태를 유지한 채 건너뛴다
	if job.Status == model.StatusUserCancelled {
		log.Printf("🛑 [Studio] Job already cancelled, skipping - JobID: %s", job.JobID)
		return nil
	}

	var req GenerateRequest
	if err := json.Unmarshal(job.InputPayload, &req); err != nil {
		s.store.FailJob(job.JobID, "Invalid job payload")
		return fmt.Errorf("unmarshal studio payload: %w", err)
	}

	if req.ProductImage == nil || req.ProductImage.Data == "" {
		s.store.FailJob(job.JobID, "Product image is required")
		return errors.New("product image is required")
	}

	cfg, err := BuildConfig(&req)
	if err != nil {
		s.store.FailJob(job.JobID, "Failed to decode attached image")
		return err
	}

	mode := promptkit.ResolveModeFromConfig(cfg)
	prompt := promptkit.Assemble(cfg, mode, promptkit.WorkflowProduct)

	job.Config = cfg
	job.Status = model.StatusProcessing
	s.store.CreateJob(job, []string{"Studio Shot"})

	log.Printf("🎨 [Studio] Generating (queued) - JobID: %s, Mode: %s", job.JobID, mode)
	_, err = s.runShot(ctx, job.JobID, cfg, mode, prompt, req.AspectRatio)
	return err
}
