package worker

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"product-studio-server/modules/common/model"
)

// StatusHandler - Job 상태/결과 조회 핸들러
type StatusHandler struct {
	store *model.Store
}

// NewStatusHandler - 핸들러 생성
func NewStatusHandler(store *model.Store) *StatusHandler {
	return &StatusHandler{store: store}
}

// RegisterRoutes - 라우트 등록
func (h *StatusHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/jobs/{jobId}", h.GetJob).Methods("GET", "OPTIONS")
	log.Println("✅ [StatusHandler] Routes registered: GET /api/jobs/{jobId}")
}

// GetJob - GET /api/jobs/{jobId}
// 폴링용: 현재까지 채워진 슬롯과 집계를 그대로 반환한다
func (h *StatusHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	vars := mux.Vars(r)
	jobID := vars["jobId"]

	job, ok := h.store.GetJob(jobID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":   false,
			"error":     "Job not found",
			"errorCode": model.ErrCodeJobNotFound,
		})
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":        true,
		"jobId":          job.JobID,
		"workflow":       job.Workflow,
		"status":         job.Status,
		"shots":          job.Shots,
		"totalShots":     job.TotalShots,
		"completedShots": job.CompletedShots,
		"failedShots":    job.FailedShots,
		"errorMessage":   job.ErrorMessage,
	})
}
