package turntable

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"product-studio-server/modules/common/gemini"
	"product-studio-server/modules/common/model"
	"product-studio-server/modules/promptkit"
)

func newTestService(generate generateFunc) (*Service, *model.Store) {
	store := model.NewStore()
	return &Service{
		store:         store,
		generate:      generate,
		maxConcurrent: 2,
	}, store
}

func testConfig() *promptkit.Config {
	return &promptkit.Config{
		StyleTransform: "clay_render",
		ProductImage:   &promptkit.AttachedImage{Data: []byte("img"), MimeType: "image/png"},
	}
}

// 각도 하나가 실패해도 나머지 각도는 자신의 슬롯을 채우고
// 완료 신호는 전부 정착한 뒤 정확히 한 번 발화해야 한다
func TestRunBatchIsolatesAngleFailure(t *testing.T) {
	angles := normalizeAngles(nil)

	svc, store := newTestService(func(ctx context.Context, images []gemini.InlineImage, prompt, aspectRatio string) ([]byte, string, error) {
		if strings.Contains(prompt, "(180 degrees)") {
			return nil, "", errors.New("injected failure")
		}
		return []byte("image-bytes"), "image/png", nil
	})

	var doneSignals atomic.Int32
	store.SetNotifier(func(update model.ShotUpdate) {
		if update.Type == "job_done" {
			doneSignals.Add(1)
		}
	})

	job := &model.GenerationJob{JobID: "tt-1", Workflow: "turntable", Status: model.StatusProcessing}
	store.CreateJob(job, angleLabelList(angles))

	svc.runBatch(context.Background(), "tt-1", testConfig(), angles, "")

	result, ok := store.GetJob("tt-1")
	if !ok {
		t.Fatal("job disappeared from store")
	}
	if result.Status != model.StatusCompleted {
		t.Errorf("batch with surviving angles should complete, got %q", result.Status)
	}
	if result.CompletedShots != len(angles)-1 {
		t.Errorf("CompletedShots = %d, want %d", result.CompletedShots, len(angles)-1)
	}
	if result.FailedShots != 1 {
		t.Errorf("FailedShots = %d, want 1", result.FailedShots)
	}

	for i, shot := range result.Shots {
		if angles[i] == 180 {
			if shot.Status != model.ShotFailed {
				t.Errorf("angle 180 slot should have failed, got %q", shot.Status)
			}
			if shot.ErrorMessage == "" {
				t.Error("failed angle slot should carry an error message")
			}
			continue
		}
		if shot.Status != model.ShotCompleted {
			t.Errorf("angle %d slot should have completed, got %q", angles[i], shot.Status)
		}
		if shot.ImageBase64 == "" {
			t.Errorf("completed angle %d slot has no image payload", angles[i])
		}
	}

	if got := doneSignals.Load(); got != 1 {
		t.Errorf("completion signal fired %d times, want exactly 1", got)
	}
}

// 같은 옵션의 각도라도 프롬프트는 uniqueness 토큰으로 서로 달라야 하고
// 토큰은 AVOID 절보다도 뒤, 프롬프트 맨 끝에 붙어야 한다
func TestRunBatchPromptsCarryUniquenessToken(t *testing.T) {
	angles := []int{0, 90, 180, 270}

	var mu sync.Mutex
	prompts := make([]string, 0, len(angles))
	svc, store := newTestService(func(ctx context.Context, images []gemini.InlineImage, prompt, aspectRatio string) ([]byte, string, error) {
		mu.Lock()
		prompts = append(prompts, prompt)
		mu.Unlock()
		return []byte("image-bytes"), "image/png", nil
	})

	job := &model.GenerationJob{JobID: "tt-2", Workflow: "turntable", Status: model.StatusProcessing}
	store.CreateJob(job, angleLabelList(angles))

	cfg := testConfig()
	cfg.NegativePrompt = "blurry edges"
	svc.runBatch(context.Background(), "tt-2", cfg, angles, "")

	mu.Lock()
	defer mu.Unlock()
	if len(prompts) != len(angles) {
		t.Fatalf("expected %d generation calls, got %d", len(angles), len(prompts))
	}

	seen := make(map[string]bool)
	for _, p := range prompts {
		token := strings.Index(p, "(capture reference: ")
		if token < 0 {
			t.Fatal("prompt missing uniqueness token")
		}
		avoid := strings.Index(p, "AVOID AT ALL COSTS: ")
		if avoid < 0 {
			t.Fatal("prompt missing AVOID clause")
		}
		if avoid > token {
			t.Error("uniqueness token should come after the AVOID clause")
		}
		if seen[p] {
			t.Error("two angles produced identical prompts")
		}
		seen[p] = true
	}
}
