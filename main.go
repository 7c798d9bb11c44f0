package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"product-studio-server/modules/common/config"
	"product-studio-server/modules/common/model"
	redisutil "product-studio-server/modules/common/redis"
	"product-studio-server/modules/download"
	"product-studio-server/modules/photoshoot"
	"product-studio-server/modules/studio"
	"product-studio-server/modules/suggest"
	"product-studio-server/modules/turntable"
	"product-studio-server/modules/worker"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// 개발용 - 모든 origin 허용
		// 프로덕션에서는 특정 도메인만 허용하도록 수정
		return true
	},
}

// 연결된 클라이언트 정보
type Client struct {
	conn  *websocket.Conn
	jobID string
	send  chan []byte
}

// ProgressHub - job 진행 상황 구독 허브
// 클라이언트는 /ws?job=<id>로 붙어 해당 job의 샷 업데이트를 받는다
type ProgressHub struct {
	mutex       sync.RWMutex
	subscribers map[string]map[*Client]bool
	metrics     *ServerMetrics
}

// 서버 메트릭
type ServerMetrics struct {
	TotalConnections int       `json:"totalConnections"`
	StartTime        time.Time `json:"startTime"`
	mutex            sync.RWMutex
}

var hub = &ProgressHub{
	subscribers: make(map[string]map[*Client]bool),
	metrics: &ServerMetrics{
		StartTime: time.Now(),
	},
}

// subscribe - 클라이언트를 job 구독자로 등록
func (h *ProgressHub) subscribe(client *Client) {
	h.mutex.Lock()
	clients, ok := h.subscribers[client.jobID]
	if !ok {
		clients = make(map[*Client]bool)
		h.subscribers[client.jobID] = clients
	}
	clients[client] = true
	count := len(clients)
	h.mutex.Unlock()

	h.metrics.mutex.Lock()
	h.metrics.TotalConnections++
	h.metrics.mutex.Unlock()

	log.Printf("👤 Client subscribed to job %s (subscribers: %d)", client.jobID, count)
}

// unsubscribe - 클라이언트 제거 (마지막 구독자가 나가면 엔트리도 제거)
// send 채널 close는 Broadcast의 송신과 같은 락으로 직렬화된다
func (h *ProgressHub) unsubscribe(client *Client) {
	h.mutex.Lock()
	if clients, ok := h.subscribers[client.jobID]; ok {
		if clients[client] {
			delete(clients, client)
			close(client.send)
		}
		if len(clients) == 0 {
			delete(h.subscribers, client.jobID)
		}
	}
	h.mutex.Unlock()

	log.Printf("👋 Client unsubscribed from job %s", client.jobID)
}

// Broadcast - 샷 업데이트를 해당 job 구독자 전원에게 전송
// 스토어의 notifier 콜백으로 연결된다
func (h *ProgressHub) Broadcast(update model.ShotUpdate) {
	data, err := json.Marshal(update)
	if err != nil {
		log.Printf("❌ Failed to marshal shot update: %v", err)
		return
	}

	h.mutex.RLock()
	for client := range h.subscribers[update.JobID] {
		select {
		case client.send <- data:
		default:
			// 수신이 막힌 클라이언트는 건너뛴다
		}
	}
	h.mutex.RUnlock()
}

// handleWebSocket - GET /ws?job=<id>
func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	jobID := r.URL.Query().Get("job")
	if jobID == "" {
		http.Error(w, `{"error": "job query parameter is required"}`, http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("❌ WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		conn:  conn,
		jobID: jobID,
		send:  make(chan []byte, 64),
	}

	hub.subscribe(client)

	go client.writePump()
	go client.readPump()
}

// readPump - 클라이언트 수신 루프 (연결 종료 감지용)
func (c *Client) readPump() {
	defer func() {
		hub.unsubscribe(c)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// 클라이언트로 메시지 쓰기
func (c *Client) writePump() {
	defer c.conn.Close()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("WebSocket write error: %v", err)
				return
			}
		}
	}
}

// CORS 헤더 추가
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// 헬스 체크 엔드포인트
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "product-studio-server",
	})
}

// 서버 메트릭 조회 엔드포인트
func getMetrics(store *model.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hub.metrics.mutex.RLock()
		startTime := hub.metrics.StartTime
		totalConnections := hub.metrics.TotalConnections
		hub.metrics.mutex.RUnlock()

		hub.mutex.RLock()
		watchedJobs := len(hub.subscribers)
		currentClients := 0
		for _, clients := range hub.subscribers {
			currentClients += len(clients)
		}
		hub.mutex.RUnlock()

		total, active, completed, failed := store.Metrics()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"server": map[string]interface{}{
				"uptime":           time.Since(startTime).String(),
				"startTime":        startTime,
				"totalConnections": totalConnections,
				"currentClients":   currentClients,
				"watchedJobs":      watchedJobs,
			},
			"jobs": map[string]interface{}{
				"total":     total,
				"active":    active,
				"completed": completed,
				"failed":    failed,
			},
		})
	}
}

// startCleanupRoutine - 정착한 지 오래된 job의 이미지 메모리 회수
func startCleanupRoutine(store *model.Store) {
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			if cleaned := store.CleanupOldJobs(1 * time.Hour); cleaned > 0 {
				log.Printf("🧹 Cleaned up %d settled jobs", cleaned)
			}
		}
	}()
}

func main() {
	// 환경변수 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// 인메모리 잡 스토어 + 진행 상황 허브 연결
	store := model.NewStore()
	store.SetNotifier(hub.Broadcast)

	// Redis 연결 (큐/취소 플래그용)
	rdb := redisutil.Connect(cfg)
	if rdb == nil {
		log.Println("⚠️ Redis unavailable - async queue and cancel disabled")
	}

	// 정리 루틴 시작
	startCleanupRoutine(store)

	// 모듈 핸들러 초기화
	studioHandler := studio.NewHandler(store)
	photoshootHandler := photoshoot.NewHandler(store, rdb)
	turntableHandler := turntable.NewHandler(store, rdb)
	suggestHandler := suggest.NewHandler()
	downloadHandler := download.NewHandler(store)
	statusHandler := worker.NewStatusHandler(store)

	// Redis Queue Worker 시작 (백그라운드)
	go worker.StartWorker(store, rdb, worker.Services{
		Photoshoot: photoshootHandler.Service(),
		Turntable:  turntableHandler.Service(),
		Studio:     studioHandler.Service(),
	})

	// 라우터 설정
	r := mux.NewRouter()

	// CORS 미들웨어 적용
	r.Use(enableCORS)

	// 라우트 설정
	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")
	r.HandleFunc("/ws", handleWebSocket)
	r.HandleFunc("/metrics", getMetrics(store)).Methods("GET")

	r.HandleFunc("/api/studio/generate", studioHandler.HandleGenerate).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/photoshoot/generate", photoshootHandler.HandleGenerate).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/photoshoot/catalog", photoshootHandler.HandleCatalog).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/turntable/generate", turntableHandler.HandleGenerate).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/suggest/options", suggestHandler.HandleSuggestOptions).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/suggest/subject", suggestHandler.HandleSuggestSubject).Methods("POST", "OPTIONS")

	statusHandler.RegisterRoutes(r)
	downloadHandler.RegisterRoutes(r)

	if enqueueHandler := worker.NewEnqueueHandler(store, rdb); enqueueHandler != nil {
		enqueueHandler.RegisterRoutes(r)
	}
	if cancelHandler := worker.NewCancelHandler(store, rdb); cancelHandler != nil {
		cancelHandler.RegisterRoutes(r)
	}

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Product Studio Server starting on port %s", port)
	log.Printf("📡 WebSocket endpoint: ws://localhost:%s/ws?job=<jobId>", port)
	log.Printf("❤️  Health check: http://localhost:%s/health", port)
	log.Printf("📊 Metrics: http://localhost:%s/metrics", port)

	// 서버 시작
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
