package download

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"product-studio-server/modules/common/model"
	"product-studio-server/modules/common/utils"
)

// qualityTier - 다운로드 품질 1종의 출력 파라미터
type qualityTier struct {
	// 출력 긴 변 상한 (0 = 원본 크기 유지)
	MaxEdge int

	// WebP 인코딩 품질 (0 = WebP 변환 없이 PNG 그대로)
	WebPQuality float32

	Extension   string
	ContentType string
}

// qualityTiers - 품질 값 → 출력 파라미터
// 알 수 없는 값은 standard_2k로 처리한다
var qualityTiers = map[string]qualityTier{
	"web_1k":      {MaxEdge: 1024, WebPQuality: 70, Extension: "webp", ContentType: "image/webp"},
	"standard_2k": {MaxEdge: 2048, WebPQuality: 90, Extension: "webp", ContentType: "image/webp"},
	"print_4k":    {MaxEdge: 0, WebPQuality: 0, Extension: "png", ContentType: "image/png"},
}

func tierFor(quality string) qualityTier {
	if tier, ok := qualityTiers[quality]; ok {
		return tier
	}
	return qualityTiers["standard_2k"]
}

// Handler - 완성된 샷 이미지 다운로드 핸들러
type Handler struct {
	store *model.Store
}

func NewHandler(store *model.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes - 라우트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/jobs/{jobId}/shots/{index}/download", h.HandleDownload).Methods("GET", "OPTIONS")
	log.Println("✅ [Download] Routes registered: GET /api/jobs/{jobId}/shots/{index}/download")
}

// HandleDownload - GET /api/jobs/{jobId}/shots/{index}/download?quality=web_1k|standard_2k|print_4k
// 스토어의 PNG 바이트를 품질 파라미터에 맞춰 변환해 내려준다
func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	vars := mux.Vars(r)
	jobID := vars["jobId"]
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		http.Error(w, `{"error": "invalid shot index"}`, http.StatusBadRequest)
		return
	}

	imageData, _, err := h.store.GetShotImage(jobID, index)
	if err != nil {
		log.Printf("❌ [Download] %v", err)
		http.Error(w, `{"error": "shot image not available"}`, http.StatusNotFound)
		return
	}

	tier := tierFor(r.URL.Query().Get("quality"))

	output, err := renderTier(imageData, tier)
	if err != nil {
		log.Printf("❌ [Download] Conversion failed - JobID: %s, Shot: %d: %v", jobID, index, err)
		http.Error(w, `{"error": "failed to convert image"}`, http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("%s-shot-%d.%s", jobID, index, tier.Extension)
	w.Header().Set("Content-Type", tier.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(output)))

	log.Printf("📥 [Download] JobID: %s, Shot: %d, %d bytes (%s)", jobID, index, len(output), tier.Extension)
	w.Write(output)
}

// renderTier - 품질 파라미터에 따라 리사이즈 + 포맷 변환
func renderTier(imageData []byte, tier qualityTier) ([]byte, error) {
	// print_4k는 원본 PNG 그대로
	if tier.WebPQuality == 0 {
		return imageData, nil
	}

	resized, err := resizeToEdge(imageData, tier.MaxEdge)
	if err != nil {
		return nil, err
	}

	return utils.ConvertPNGToWebP(resized, tier.WebPQuality)
}

// resizeToEdge - 긴 변이 maxEdge를 넘으면 비율 유지 축소 후 PNG 재인코딩
func resizeToEdge(imageData []byte, maxEdge int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	longer := width
	if height > longer {
		longer = height
	}
	if maxEdge <= 0 || longer <= maxEdge {
		return imageData, nil
	}

	scale := float64(maxEdge) / float64(longer)
	newWidth := int(float64(width) * scale)
	newHeight := int(float64(height) * scale)

	scaled := utils.ScaleImage(img, newWidth, newHeight)

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
