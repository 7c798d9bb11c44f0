package suggest

import (
	"encoding/json"
	"log"
	"net/http"

	"product-studio-server/modules/common/model"
)

type Handler struct {
	service *Service
}

func NewHandler() *Handler {
	return &Handler{
		service: NewService(),
	}
}

// HandleSuggestOptions - POST /api/suggest/options
// 제품 이미지 기반 장면 옵션 추천 (스키마 강제 JSON)
func (h *Handler) HandleSuggestOptions(w http.ResponseWriter, r *http.Request) {
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

	if h.service == nil {
		log.Println("❌ [Suggest] Service not initialized")
		json.NewEncoder(w).Encode(SuggestOptionsResponse{
			Success:      false,
			ErrorMessage: "Service unavailable",
			ErrorCode:    model.ErrCodeInternalError,
		})
		return
	}

	var req SuggestOptionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Suggest] Invalid request: %v", err)
		json.NewEncoder(w).Encode(SuggestOptionsResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
			ErrorCode:    model.ErrCodeInvalidRequest,
		})
		return
	}

	response, err := h.service.SuggestOptions(r.Context(), &req)
	if err != nil {
		log.Printf("❌ [Suggest] Options error: %v", err)
	}
	if response == nil {
		response = &SuggestOptionsResponse{
			Success:      false,
			ErrorMessage: "Suggestion failed",
			ErrorCode:    model.ErrCodeInternalError,
		}
	}

	json.NewEncoder(w).Encode(response)
}

// HandleSuggestSubject - POST /api/suggest/subject
// 제품 이미지 기반 피사체 설명 추천
func (h *Handler) HandleSuggestSubject(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.service == nil {
		log.Println("❌ [Suggest] Service not initialized")
		json.NewEncoder(w).Encode(SuggestSubjectResponse{
			Success:      false,
			ErrorMessage: "Service unavailable",
			ErrorCode:    model.ErrCodeInternalError,
		})
		return
	}

	var req SuggestSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Suggest] Invalid request: %v", err)
		json.NewEncoder(w).Encode(SuggestSubjectResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
			ErrorCode:    model.ErrCodeInvalidRequest,
		})
		return
	}

	response, err := h.service.SuggestSubject(r.Context(), &req)
	if err != nil {
		log.Printf("❌ [Suggest] Subject error: %v", err)
	}
	if response == nil {
		response = &SuggestSubjectResponse{
			Success:      false,
			ErrorMessage: "Suggestion failed",
			ErrorCode:    model.ErrCodeInternalError,
		}
	}

	json.NewEncoder(w).Encode(response)
}
