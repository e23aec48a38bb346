package assessment

import (
	"testing"
	"time"
)

func TestAggregate_ZeroAttempts(t *testing.T) {
	res := Aggregate("u1", "a1", nil)

	if res.Attempts != 0 || res.Latest != nil {
		t.Fatalf("expected zero-attempt view, got %+v", res)
	}
	if res.Chart.Labels == nil || len(res.Chart.Labels) != 0 || len(res.Chart.Datasets) != 0 {
		t.Fatalf("expected empty chart, got %+v", res.Chart)
	}
	if len(res.PerQuestion.Datasets) != 0 {
		t.Fatalf("expected empty per-question chart, got %+v", res.PerQuestion)
	}
}

func TestAggregate_LatestIsLastAppended(t *testing.T) {
	now := time.Now()
	first := Submission{ID: "s1", CorrectCount: 3, TotalQuestions: 3, SubmittedAt: now}
	second := Submission{
		ID:             "s2",
		CorrectCount:   1,
		TotalQuestions: 3,
		SubmittedAt:    now.Add(-time.Hour),
		Breakdown: []BreakdownEntry{
			{QuestionID: "q1", Correct: true},
			{QuestionID: "q2"},
			{QuestionID: "q3"},
		},
	}

	res := Aggregate("u1", "a1", []Submission{first, second})

	if res.Attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", res.Attempts)
	}
	if res.Latest == nil || res.Latest.ID != "s2" {
		t.Fatalf("expected latest s2 regardless of timestamp, got %+v", res.Latest)
	}

	ds := res.Chart.Datasets[0]
	if ds.Data[0] != 1 || ds.Data[1] != 2 {
		t.Fatalf("unexpected distribution: %v", ds.Data)
	}

	pq := res.PerQuestion.Datasets[0]
	if len(res.PerQuestion.Labels) != 3 || res.PerQuestion.Labels[0] != "q1" {
		t.Fatalf("unexpected labels: %v", res.PerQuestion.Labels)
	}
	if pq.Data[0] != 1 || pq.Data[1] != 0 || pq.BackgroundColor[0] != ColorCorrect || pq.BackgroundColor[1] != ColorWrong {
		t.Fatalf("unexpected per-question dataset: %+v", pq)
	}
}
