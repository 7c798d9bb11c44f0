package photoshoot

import (
	"encoding/json"
	"log"
	"net/http"

	goredis "github.com/redis/go-redis/v9"

	"product-studio-server/modules/common/model"
)

type Handler struct {
	service *Service
	store   *model.Store
}

func NewHandler(store *model.Store, rdb *goredis.Client) *Handler {
	return &Handler{
		service: NewService(store, rdb),
		store:   store,
	}
}

// Service - 워커 디스패치용 서비스 접근자
func (h *Handler) Service() *Service {
	return h.service
}

// HandleGenerate - POST /api/photoshoot/generate
// 카탈로그 샷 배치를 동기로 생성 (모든 샷 정착 후 응답)
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
		log.Println("❌ [Photoshoot] Service not initialized")
		json.NewEncoder(w).Encode(PhotoshootResponse{
			Success:      false,
			ErrorMessage: "Service unavailable",
			ErrorCode:    model.ErrCodeInternalError,
		})
		return
	}

	// Request 파싱
	var req PhotoshootRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Photoshoot] Invalid request: %v", err)
		json.NewEncoder(w).Encode(PhotoshootResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
			ErrorCode:    model.ErrCodeInvalidRequest,
		})
		return
	}

	ctx := r.Context()

	response, err := h.service.GeneratePhotoshoot(ctx, &req)
	if err != nil {
		log.Printf("❌ [Photoshoot] Generation error: %v", err)
	}
	if response == nil {
		response = &PhotoshootResponse{
			Success:      false,
			ErrorMessage: "Generation failed",
			ErrorCode:    model.ErrCodeInternalError,
		}
	}

	log.Printf("✅ [Photoshoot] Response sent: success=%v, completed=%d/%d", response.Success, response.CompletedShots, response.TotalShots)
	json.NewEncoder(w).Encode(response)
}

// HandleCatalog - GET /api/photoshoot/catalog
// 프론트 그리드 렌더링용 샷 카탈로그 목록
func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	type catalogEntry struct {
		Title         string `json:"title"`
		WaterScenario bool   `json:"waterScenario"`
	}
	entries := make([]catalogEntry, len(DefaultCatalog))
	for i, spec := range DefaultCatalog {
		entries[i] = catalogEntry{Title: spec.Title, WaterScenario: isWaterScenario(spec.Title)}
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"shots":   entries,
	})
}
