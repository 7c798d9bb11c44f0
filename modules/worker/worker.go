package worker

import (
	"context"
	"log"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"product-studio-server/modules/common/model"
	"product-studio-server/modules/common/redis"
	"product-studio-server/modules/photoshoot"
	"product-studio-server/modules/studio"
	"product-studio-server/modules/turntable"
)

// Services - 큐 워커가 디스패치할 수 있는 워크플로 서비스 묶음
type Services struct {
	Photoshoot *photoshoot.Service
	Turntable  *turntable.Service
	Studio     *studio.Service
}

// StartWorker - Redis Queue Worker 시작
// /api/enqueue로 들어온 배치 잡을 BRPOP으로 꺼내 워크플로별로 라우팅한다
func StartWorker(store *model.Store, rdb *goredis.Client, services Services) {
	log.Println("🔄 Redis Queue Worker starting...")

	if rdb == nil {
		log.Println("❌ [Worker] No Redis connection - queue worker disabled")
		return
	}

	// Queue 감시 시작
	log.Printf("👀 Watching queue: %s", redis.JobQueueKey)

	ctx := context.Background()

	// 무한 루프로 Queue 감시
	for {
		// Job 받기 (BRPOP - Blocking Right Pop)
		result, err := rdb.BRPop(ctx, 0, redis.JobQueueKey).Result()
		if err != nil {
			log.Printf("❌ Redis BRPOP error: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		// result[0]은 큐 이름, result[1]이 실제 job_id
		jobID := result[1]
		log.Printf("🎯 Received new job: %s", jobID)

		// Job 처리 (goroutine으로 비동기)
		go processJob(ctx, store, jobID, services)
	}
}

// processJob - Job 처리 함수 (workflow 기반 라우팅)
func processJob(ctx context.Context, store *model.Store, jobID string, services Services) {
	log.Printf("🚀 Processing job: %s", jobID)

	job, ok := store.GetJob(jobID)
	if !ok {
		log.Printf("❌ Job not found in store: %s", jobID)
		return
	}

	log.Printf("📦 Job Data:")
	log.Printf("   JobID: %s", job.JobID)
	log.Printf("   Workflow: %s", job.Workflow)
	log.Printf("   Status: %s", job.Status)

	switch job.Workflow {
	case "photoshoot":
		if services.Photoshoot == nil {
			log.Printf("❌ Photoshoot service not available for job %s", jobID)
			store.FailJob(jobID, "Service unavailable")
			return
		}
		if err := services.Photoshoot.ProcessJob(ctx, job); err != nil {
			log.Printf("❌ Photoshoot job failed: %v", err)
		}

	case "studio":
		if services.Studio == nil {
			log.Printf("❌ Studio service not available for job %s", jobID)
			store.FailJob(jobID, "Service unavailable")
			return
		}
		if err := services.Studio.ProcessJob(ctx, job); err != nil {
			log.Printf("❌ Studio job failed: %v", err)
		}

	case "turntable":
		if services.Turntable == nil {
			log.Printf("❌ Turntable service not available for job %s", jobID)
			store.FailJob(jobID, "Service unavailable")
			return
		}
		if err := services.Turntable.ProcessJob(ctx, job); err != nil {
			log.Printf("❌ Turntable job failed: %v", err)
		}

	default:
		log.Printf("❌ Unknown workflow %q for job %s", job.Workflow, jobID)
		store.FailJob(jobID, "Unknown workflow")
	}
}
