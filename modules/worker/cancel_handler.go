package worker

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	goredis "github.com/redis/go-redis/v9"

	"product-studio-server/modules/common/model"
	redisutil "product-studio-server/modules/common/redis"
)

// CancelHandler - Job 취소 API 핸들러
// 취소 플래그는 아직 시작하지 않은 샷만 막는다 - 진행 중인 호출은 중단하지 않는다
type CancelHandler struct {
	rdb   *goredis.Client
	store *model.Store
}

// NewCancelHandler - 핸들러 생성
func NewCancelHandler(store *model.Store, rdb *goredis.Client) *CancelHandler {
	if rdb == nil {
		log.Println("⚠️ [CancelHandler] No Redis connection - cancel disabled")
		return nil
	}

	return &CancelHandler{
		rdb:   rdb,
		store: store,
	}
}

// RegisterRoutes - 라우트 등록
func (h *CancelHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/jobs/{jobId}/cancel", h.CancelJob).Methods("POST", "OPTIONS")
	log.Println("✅ [CancelHandler] Routes registered: POST /api/jobs/{jobId}/cancel")
}

// CancelJob - Job 취소 처리
func (h *CancelHandler) CancelJob(w http.ResponseWriter, r *http.Request) {
	// CORS preflight
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	vars := mux.Vars(r)
	jobID := vars["jobId"]

	if jobID == "" {
		http.Error(w, `{"error": "jobId is required"}`, http.StatusBadRequest)
		return
	}

	log.Printf("🛑 [CancelHandler] Cancel requested for job: %s", jobID)

	job, ok := h.store.GetJob(jobID)
	if !ok {
		log.Printf("❌ [CancelHandler] Job not found: %s", jobID)
		http.Error(w, `{"error": "Job not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	// 이미 정착한 job은 취소 불가
	if job.Status == model.StatusCompleted || job.Status == model.StatusFailed || job.Status == model.StatusUserCancelled {
		log.Printf("⚠️ [CancelHandler] Job already %s: %s", job.Status, jobID)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Job already settled",
			"status":  job.Status,
		})
		return
	}

	// Redis에 취소 플래그 설정 - 워커의 샷 루프가 시작 전에 확인한다
	if err := redisutil.SetJobCancelled(h.rdb, jobID); err != nil {
		log.Printf("❌ [CancelHandler] Failed to set cancel flag: %v", err)
		http.Error(w, `{"error": "Failed to set cancel flag"}`, http.StatusInternalServerError)
		return
	}

	h.store.UpdateJobStatus(jobID, model.StatusUserCancelled)

	log.Printf("✅ [CancelHandler] Job cancelled: %s", jobID)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Job cancelled - shots not yet started will be skipped",
		"jobId":   jobID,
	})
}
