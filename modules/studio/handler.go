package studio

import (
	"encoding/json"
	"log"
	"net/http"

	"product-studio-server/modules/common/model"
)

type Handler struct {
	service *Service
}

func NewHandler(store *model.Store) *Handler {
	return &Handler{
		service: NewService(store),
	}
}

// Service - 워커 디스패치용 서비스 접근자
func (h *Handler) Service() *Service {
	return h.service
}

// HandleGenerate - POST /api/studio/generate
// 단일 샷 생성 (standard + 레퍼런스 모드 전부)
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
		log.Println("❌ [Studio] Service not initialized")
		json.NewEncoder(w).Encode(GenerateResponse{
			Success:      false,
			ErrorMessage: "Service unavailable",
			ErrorCode:    model.ErrCodeInternalError,
		})
		return
	}

	// Request 파싱
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Studio] Invalid request: %v", err)
		json.NewEncoder(w).Encode(GenerateResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
			ErrorCode:    model.ErrCodeInvalidRequest,
		})
		return
	}

	ctx := r.Context()

	response, err := h.service.Generate(ctx, &req)
	if err != nil {
		log.Printf("❌ [Studio] Generation error: %v", err)
	}
	if response == nil {
		response = &GenerateResponse{
			Success:      false,
			ErrorMessage: "Generation failed",
			ErrorCode:    model.ErrCodeInternalError,
		}
	}

	log.Printf("✅ [Studio] Response sent: success=%v", response.Success)
	json.NewEncoder(w).Encode(response)
}
