package studio

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/png"
	"sync/atomic"
	"testing"

	"product-studio-server/modules/common/config"
	"product-studio-server/modules/common/gemini"
	"product-studio-server/modules/common/model"
)

func newTestService(generate generateFunc) (*Service, *model.Store) {
	store := model.NewStore()
	return &Service{
		store:    store,
		generate: generate,
	}, store
}

func testPNGBase64(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func loadTestConfig(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "test-key")
	if _, err := config.LoadConfig(); err != nil {
		t.Fatalf("load config: %v", err)
	}
}

// 큐 대기 중 취소된 잡은 생성 호출 없이 취소 상태 그대로 끝나야 한다
func TestProcessJobSkipsCancelledJob(t *testing.T) {
	var calls atomic.Int32
	svc, store := newTestService(func(ctx context.Context, images []gemini.InlineImage, prompt, aspectRatio string) ([]byte, string, error) {
		calls.Add(1)
		return []byte("image-bytes"), "image/png", nil
	})

	job := &model.GenerationJob{JobID: "st-1", Workflow: "studio", Status: model.StatusUserCancelled}
	store.CreateJob(job, nil)

	if err := svc.ProcessJob(context.Background(), job); err != nil {
		t.Fatalf("ProcessJob on cancelled job returned error: %v", err)
	}

	if calls.Load() != 0 {
		t.Errorf("cancelled job triggered %d generation calls, want 0", calls.Load())
	}
	result, _ := store.GetJob("st-1")
	if result.Status != model.StatusUserCancelled {
		t.Errorf("cancelled job status = %q, want %q", result.Status, model.StatusUserCancelled)
	}
}

// 깨진 페이로드는 잡을 실패로 마감해야 한다
func TestProcessJobFailsOnInvalidPayload(t *testing.T) {
	svc, store := newTestService(func(ctx context.Context, images []gemini.InlineImage, prompt, aspectRatio string) ([]byte, string, error) {
		t.Error("generation should not run for an invalid payload")
		return nil, "", nil
	})

	job := &model.GenerationJob{
		JobID:        "st-2",
		Workflow:     "studio",
		Status:       model.StatusPending,
		InputPayload: []byte("{not json"),
	}
	store.CreateJob(job, nil)

	if err := svc.ProcessJob(context.Background(), job); err == nil {
		t.Fatal("ProcessJob should return an error for an invalid payload")
	}

	result, _ := store.GetJob("st-2")
	if result.Status != model.StatusFailed {
		t.Errorf("job status = %q, want %q", result.Status, model.StatusFailed)
	}
	if result.ErrorMessage != "Invalid job payload" {
		t.Errorf("job error = %q, want the invalid-payload message", result.ErrorMessage)
	}
}

// 제품 이미지 없는 페이로드는 생성 호출 전에 실패해야 한다
func TestProcessJobRequiresProductImage(t *testing.T) {
	svc, store := newTestService(func(ctx context.Context, images []gemini.InlineImage, prompt, aspectRatio string) ([]byte, string, error) {
		t.Error("generation should not run without a product image")
		return nil, "", nil
	})

	payload, _ := json.Marshal(&GenerateRequest{})
	job := &model.GenerationJob{
		JobID:        "st-3",
		Workflow:     "studio",
		Status:       model.StatusPending,
		InputPayload: payload,
	}
	store.CreateJob(job, nil)

	if err := svc.ProcessJob(context.Background(), job); err == nil {
		t.Fatal("ProcessJob should return an error without a product image")
	}

	result, _ := store.GetJob("st-3")
	if result.Status != model.StatusFailed {
		t.Errorf("job status = %q, want %q", result.Status, model.StatusFailed)
	}
}

// 큐에서 꺼낸 정상 잡은 단일 샷 슬롯을 채우고 완료로 끝나야 한다
func TestProcessJobRunsQueuedJob(t *testing.T) {
	loadTestConfig(t)

	var calls atomic.Int32
	svc, store := newTestService(func(ctx context.Context, images []gemini.InlineImage, prompt, aspectRatio string) ([]byte, string, error) {
		calls.Add(1)
		if len(images) != 1 {
			t.Errorf("expected 1 attached image, got %d", len(images))
		}
		return []byte("image-bytes"), "image/png", nil
	})

	payload, err := json.Marshal(&GenerateRequest{
		ProductImage: &ImagePayload{Data: testPNGBase64(t), MimeType: "image/png"},
	})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	job := &model.GenerationJob{
		JobID:        "st-4",
		Workflow:     "studio",
		Status:       model.StatusPending,
		InputPayload: payload,
	}
	store.CreateJob(job, nil)

	if err := svc.ProcessJob(context.Background(), job); err != nil {
		t.Fatalf("ProcessJob returned error: %v", err)
	}

	if calls.Load() != 1 {
		t.Errorf("expected 1 generation call, got %d", calls.Load())
	}

	result, ok := store.GetJob("st-4")
	if !ok {
		t.Fatal("job not found after ProcessJob")
	}
	if result.Status != model.StatusCompleted {
		t.Errorf("job status = %q, want %q", result.Status, model.StatusCompleted)
	}
	if len(result.Shots) != 1 {
		t.Fatalf("expected 1 shot slot, got %d", len(result.Shots))
	}
	if result.Shots[0].Status != model.ShotCompleted {
		t.Errorf("shot status = %q, want %q", result.Shots[0].Status, model.ShotCompleted)
	}
	if result.Shots[0].ImageBase64 == "" {
		t.Error("completed shot has no image payload")
	}
}
