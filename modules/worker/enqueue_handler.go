package worker

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	goredis "github.com/redis/go-redis/v9"

	"product-studio-server/modules/common/model"
	redisutil "product-studio-server/modules/common/redis"
)

// EnqueueHandler - Redis Queue Enqueue Handler
// 워크플로(studio, photoshoot, turntable)를 비동기로 돌리고 싶을 때 사용한다
// 페이로드는 스토어에 담기고 큐에는 job_id만 흐른다
type EnqueueHandler struct {
	rdb   *goredis.Client
	store *model.Store
}

// EnqueueRequest - Enqueue 요청
type EnqueueRequest struct {
	// studio, photoshoot 또는 turntable
	Workflow string `json:"workflow"`

	// 해당 워크플로의 생성 요청 본문 그대로
	Payload json.RawMessage `json:"payload"`
}

// EnqueueResponse - Enqueue 응답
type EnqueueResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	Error         string `json:"error,omitempty"`
	JobID         string `json:"jobId,omitempty"`
	Queue         string `json:"queue,omitempty"`
	QueuePosition int64  `json:"queuePosition,omitempty"`
}

// NewEnqueueHandler - EnqueueHandler 생성
func NewEnqueueHandler(store *model.Store, rdb *goredis.Client) *EnqueueHandler {
	if rdb == nil {
		log.Println("⚠️ [Enqueue] No Redis connection - async enqueue disabled")
		return nil
	}

	log.Println("✅ [Enqueue] Handler initialized with Redis connection")
	return &EnqueueHandler{
		rdb:   rdb,
		store: store,
	}
}

// RegisterRoutes - 라우트 등록
func (h *EnqueueHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/enqueue", h.HandleEnqueue).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/enqueue", h.HandleEnqueue).Methods("POST", "OPTIONS")
	log.Println("✅ Enqueue routes registered: /enqueue, /api/enqueue")
}

// HandleEnqueue - POST /enqueue
func (h *EnqueueHandler) HandleEnqueue(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	// OPTIONS 요청 처리
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	// Request 파싱
	var req EnqueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Enqueue] Invalid request: %v", err)
		json.NewEncoder(w).Encode(EnqueueResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if req.Workflow != "studio" && req.Workflow != "photoshoot" && req.Workflow != "turntable" {
		log.Printf("❌ [Enqueue] Unknown workflow: %q", req.Workflow)
		json.NewEncoder(w).Encode(EnqueueResponse{
			Success: false,
			Error:   "Unknown workflow",
		})
		return
	}

	if len(req.Payload) == 0 {
		json.NewEncoder(w).Encode(EnqueueResponse{
			Success: false,
			Error:   "payload is required",
		})
		return
	}

	jobID := uuid.New().String()

	// 페이로드는 스토어에 담아두고 큐에는 job_id만 넣는다
	job := &model.GenerationJob{
		JobID:        jobID,
		Workflow:     req.Workflow,
		Status:       model.StatusPending,
		InputPayload: req.Payload,
	}
	h.store.CreateJob(job, nil)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	position, err := redisutil.EnqueueJob(ctx, h.rdb, jobID)
	if err != nil {
		log.Printf("❌ [Enqueue] Failed to enqueue job %s: %v", jobID, err)
		h.store.FailJob(jobID, "Failed to enqueue job")
		json.NewEncoder(w).Encode(EnqueueResponse{
			Success: false,
			Error:   "Failed to enqueue job",
		})
		return
	}

	log.Printf("✅ [Enqueue] Job queued: %s (workflow=%s, position=%d)", jobID, req.Workflow, position)
	json.NewEncoder(w).Encode(EnqueueResponse{
		Success:       true,
		Message:       "Job queued",
		JobID:         jobID,
		Queue:         redisutil.JobQueueKey,
		QueuePosition: position,
	})
}
