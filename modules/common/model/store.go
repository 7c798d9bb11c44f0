package model

import (
	"fmt"
	"sync"
	"time"
)

// Store - 생성 작업의 인메모리 저장소
// 외부 영속성은 없다: 서버 재시작과 함께 잊혀지는 세션 결과만 담는다
type Store struct {
	mu   sync.RWMutex
	jobs map[string]*GenerationJob

	// 진행 상황 알림 콜백 (main의 WebSocket 허브가 설정)
	notify func(update ShotUpdate)
}

// NewStore - 저장소 생성
func NewStore() *Store {
	return &Store{
		jobs: make(map[string]*GenerationJob),
	}
}

// SetNotifier - 진행 상황 브로드캐스트 콜백 등록
func (s *Store) SetNotifier(notify func(update ShotUpdate)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify = notify
}

// CreateJob - 새 작업 등록 (모든 샷 슬롯을 placeholder로 미리 생성)
func (s *Store) CreateJob(job *GenerationJob, shotLabels []string) {
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	if job.Status == "" {
		job.Status = StatusPending
	}

	// placeholder 슬롯 - 어떤 호출도 시작되기 전에 전부 존재해야
	// 부분 결과가 순서와 무관하게 채워질 수 있다
	job.Shots = make([]ShotResult, len(shotLabels))
	for i, label := range shotLabels {
		job.Shots[i] = ShotResult{
			Index:  i,
			Label:  label,
			Status: ShotPending,
		}
	}
	job.TotalShots = len(shotLabels)

	s.mu.Lock()
	s.jobs[job.JobID] = job
	s.mu.Unlock()
}

// GetJob - 작업 조회 (스냅샷 복사본 반환)
func (s *Store) GetJob(jobID string) (*GenerationJob, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return nil, false
	}

	snapshot := *job
	snapshot.Shots = make([]ShotResult, len(job.Shots))
	copy(snapshot.Shots, job.Shots)
	return &snapshot, true
}

// GetShotImage - 다운로드용 샷 이미지 바이트 조회
func (s *Store) GetShotImage(jobID string, shotIndex int) ([]byte, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return nil, "", fmt.Errorf("job not found: %s", jobID)
	}
	if shotIndex < 0 || shotIndex >= len(job.Shots) {
		return nil, "", fmt.Errorf("shot index out of range: %d", shotIndex)
	}
	shot := job.Shots[shotIndex]
	if shot.Status != ShotCompleted || len(shot.ImageData) == 0 {
		return nil, "", fmt.Errorf("shot %d has no completed image", shotIndex)
	}
	return shot.ImageData, shot.MimeType, nil
}

// UpdateJobStatus - 작업 상태 변경
func (s *Store) UpdateJobStatus(jobID, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if job, ok := s.jobs[jobID]; ok {
		job.Status = status
		job.UpdatedAt = time.Now()
	}
}

// FailJob - 작업 전체 실패 처리
func (s *Store) FailJob(jobID, errorMsg string) {
	s.mu.Lock()
	var notify func(ShotUpdate)
	var update ShotUpdate
	if job, ok := s.jobs[jobID]; ok {
		job.Status = StatusFailed
		job.ErrorMessage = errorMsg
		job.UpdatedAt = time.Now()
		notify = s.notify
		update = ShotUpdate{
			Type:   "job_done",
			JobID:  jobID,
			Total:  job.TotalShots,
			Status: StatusFailed,
		}
	}
	s.mu.Unlock()

	if notify != nil {
		notify(update)
	}
}

// CompleteShot - 샷 하나의 결과/에러를 자신의 슬롯에 기록하고 알림
// 실패는 해당 슬롯에 격리되며 형제 샷에 전파되지 않는다
func (s *Store) CompleteShot(jobID string, shot ShotResult) {
	s.mu.Lock()
	var notify func(ShotUpdate)
	var update ShotUpdate
	if job, ok := s.jobs[jobID]; ok && shot.Index >= 0 && shot.Index < len(job.Shots) {
		job.Shots[shot.Index] = shot
		job.UpdatedAt = time.Now()

		completed, failed := 0, 0
		for _, sh := range job.Shots {
			switch sh.Status {
			case ShotCompleted:
				completed++
			case ShotFailed:
				failed++
			}
		}
		job.CompletedShots = completed
		job.FailedShots = failed

		notify = s.notify
		broadcastShot := shot
		update = ShotUpdate{
			Type:      "shot_update",
			JobID:     jobID,
			Shot:      &broadcastShot,
			Completed: completed,
			Failed:    failed,
			Total:     job.TotalShots,
		}
	}
	s.mu.Unlock()

	if notify != nil {
		notify(update)
	}
}

// FinishJob - 모든 샷이 정착한 뒤 한 번만 호출되는 완료 신호
func (s *Store) FinishJob(jobID string) {
	s.mu.Lock()
	var notify func(ShotUpdate)
	var update ShotUpdate
	if job, ok := s.jobs[jobID]; ok {
		skipped := 0
		for _, sh := range job.Shots {
			if sh.Status == ShotSkipped {
				skipped++
			}
		}

		switch {
		case job.Status == StatusUserCancelled:
			// 취소된 job은 최종 상태를 유지한다 (완주한 샷 결과는 남는다)
		case job.CompletedShots > 0:
			job.Status = StatusCompleted
		case skipped > 0 && job.FailedShots == 0:
			// 샷이 전부 건너뛰어졌다면 실패가 아니라 취소다
			job.Status = StatusUserCancelled
		default:
			job.Status = StatusFailed
			if job.ErrorMessage == "" {
				job.ErrorMessage = "All shot generations failed"
			}
		}
		job.UpdatedAt = time.Now()

		notify = s.notify
		update = ShotUpdate{
			Type:      "job_done",
			JobID:     jobID,
			Completed: job.CompletedShots,
			Failed:    job.FailedShots,
			Total:     job.TotalShots,
			Status:    job.Status,
		}
	}
	s.mu.Unlock()

	if notify != nil {
		notify(update)
	}
}

// Metrics - 서버 메트릭용 집계
func (s *Store) Metrics() (total, active, completed, failed int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, job := range s.jobs {
		total++
		switch job.Status {
		case StatusPending, StatusProcessing:
			active++
		case StatusCompleted:
			completed++
		case StatusFailed:
			failed++
		}
	}
	return
}

// CleanupOldJobs - 오래된 작업 정리 (이미지 바이트가 메모리를 차지하므로)
func (s *Store) CleanupOldJobs(maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	cleaned := 0
	for jobID, job := range s.jobs {
		settled := job.Status == StatusCompleted || job.Status == StatusFailed || job.Status == StatusUserCancelled
		if settled && now.Sub(job.UpdatedAt) > maxAge {
			delete(s.jobs, jobID)
			cleaned++
		}
	}
	return cleaned
}
