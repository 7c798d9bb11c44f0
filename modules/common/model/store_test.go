package model

import "testing"

func newJobWithSlots(store *Store, jobID string, labels []string) *GenerationJob {
	job := &GenerationJob{JobID: jobID, Workflow: "photoshoot", Status: StatusProcessing}
	store.CreateJob(job, labels)
	return job
}

// 전부 건너뛰어진 배치는 실패가 아니라 취소로 끝나야 한다
func TestFinishJobAllSkippedEndsCancelled(t *testing.T) {
	store := NewStore()
	newJobWithSlots(store, "job-skip", []string{"A", "B", "C"})

	for i, label := range []string{"A", "B", "C"} {
		store.CompleteShot("job-skip", ShotResult{
			Index:  i,
			Label:  label,
			Status: ShotSkipped,
		})
	}
	store.FinishJob("job-skip")

	job, ok := store.GetJob("job-skip")
	if !ok {
		t.Fatal("job not found after FinishJob")
	}
	if job.Status != StatusUserCancelled {
		t.Errorf("all-skipped job status = %q, want %q", job.Status, StatusUserCancelled)
	}
	if job.ErrorMessage != "" {
		t.Errorf("all-skipped job should carry no error message, got %q", job.ErrorMessage)
	}
}

// 이미 취소된 job의 최종 상태는 FinishJob이 덮어쓰면 안 된다
func TestFinishJobPreservesUserCancelled(t *testing.T) {
	store := NewStore()
	newJobWithSlots(store, "job-keep", []string{"A", "B"})

	store.CompleteShot("job-keep", ShotResult{Index: 0, Label: "A", Status: ShotCompleted, ImageBase64: "aW1n"})
	store.UpdateJobStatus("job-keep", StatusUserCancelled)
	store.CompleteShot("job-keep", ShotResult{Index: 1, Label: "B", Status: ShotSkipped})
	store.FinishJob("job-keep")

	job, _ := store.GetJob("job-keep")
	if job.Status != StatusUserCancelled {
		t.Errorf("cancelled job status = %q, want %q", job.Status, StatusUserCancelled)
	}
	// 취소 전에 완주한 샷 결과는 남아야 한다
	if job.Shots[0].Status != ShotCompleted {
		t.Errorf("completed shot should survive cancellation, got %q", job.Shots[0].Status)
	}
}

// skipped + failed 혼합에 완주가 없으면 실패로 끝나야 한다
func TestFinishJobSkippedWithFailureEndsFailed(t *testing.T) {
	store := NewStore()
	newJobWithSlots(store, "job-mixed", []string{"A", "B"})

	store.CompleteShot("job-mixed", ShotResult{Index: 0, Label: "A", Status: ShotFailed, ErrorMessage: "Generation failed"})
	store.CompleteShot("job-mixed", ShotResult{Index: 1, Label: "B", Status: ShotSkipped})
	store.FinishJob("job-mixed")

	job, _ := store.GetJob("job-mixed")
	if job.Status != StatusFailed {
		t.Errorf("failed-and-skipped job status = %q, want %q", job.Status, StatusFailed)
	}
}
