package turntable

import (
	"encoding/json"
	"log"
	"net/http"

	goredis "github.com/redis/go-redis/v9"

	"product-studio-server/modules/common/model"
)

type Handler struct {
	service *Service
}

func NewHandler(store *model.Store, rdb *goredis.Client) *Handler {
	return &Handler{
		service: NewService(store, rdb),
	}
}

// Service - 워커 디스패치용 서비스 접근자
func (h *Handler) Service() *Service {
	return h.service
}

// HandleGenerate - POST /api/turntable/generate
// 스타일라이즈드 3D 턴테이블 배치를 동기로 생성
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	// OPTIONS 요청 처리
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Service 확인
	if h.service == nil {
		log.Println("❌ [Turntable] Service not initialized")
		json.NewEncoder(w).Encode(TurntableResponse{
			Success:      false,
			ErrorMessage: "Service unavailable",
			ErrorCode:    model.ErrCodeInternalError,
		})
		return
	}

	// Request 파싱
	var req TurntableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Turntable] Invalid request: %v", err)
		json.NewEncoder(w).Encode(TurntableResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
			ErrorCode:    model.ErrCodeInvalidRequest,
		})
		return
	}

	ctx := r.Context()

	response, err := h.service.GenerateTurntable(ctx, &req)
	if err != nil {
		log.Printf("❌ [Turntable] Generation error: %v", err)
	}
	if response == nil {
		response = &TurntableResponse{
			Success:      false,
			ErrorMessage: "Generation failed",
			ErrorCode:    model.ErrCodeInternalError,
		}
	}

	log.Printf("✅ [Turntable] Response sent: success=%v, completed=%d/%d", response.Success, response.CompletedShots, response.TotalShots)
	json.NewEncoder(w).Encode(response)
}
