package progress_test

import (
	"testing"

	"github.com/Tiliavir/studyhub/internal/model"
	"github.com/Tiliavir/studyhub/internal/progress"
	"github.com/Tiliavir/studyhub/internal/store"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		part, total int
		want        int
	}{
		{0, 0, 0},
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 66},
		{3, 3, 100},
	}
	for _, tt := range tests {
		if got := progress.Percent(tt.part, tt.total); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.part, tt.total, got, tt.want)
		}
	}
}

func TestComputeEmpty(t *testing.T) {
	r := progress.Compute(store.New().Snapshot())
	if r.Total != 0 || r.Percent != 0 || len(r.Subjects) != 0 {
		t.Errorf("empty report = %+v", r)
	}
}

func TestComputeSeed(t *testing.T) {
	s := store.NewSeeded()
	done := true
	s.UpdateAssignment(1, model.AssignmentPatch{Completed: &done})
	if _, err := s.AddAssignment(model.Assignment{Title: "Fractions", Subject: "Math", Priority: model.PriorityHigh}); err != nil {
		t.Fatal(err)
	}

	r := progress.Compute(s.Snapshot())
	if r.Total != 4 || r.Completed != 1 || r.Pending != 3 {
		t.Errorf("counts = %d/%d/%d, want 4/1/3", r.Total, r.Completed, r.Pending)
	}
	if r.Percent != 25 {
		t.Errorf("percent = %d, want 25", r.Percent)
	}
	if r.Routine != 8 {
		t.Errorf("routine = %d, want 8", r.Routine)
	}

	wantSubjects := []progress.SubjectProgress{
		{Subject: "Math", Completed: 1, Total: 2, Percent: 50},
		{Subject: "History", Completed: 0, Total: 1, Percent: 0},
		{Subject: "Science", Completed: 0, Total: 1, Percent: 0},
	}
	if len(r.Subjects) != len(wantSubjects) {
		t.Fatalf("subjects = %+v", r.Subjects)
	}
	for i, want := range wantSubjects {
		if r.Subjects[i] != want {
			t.Errorf("subject[%d] = %+v, want %+v", i, r.Subjects[i], want)
		}
	}

	if r.ByPriority[model.PriorityHigh] != 1 || r.ByPriority[model.PriorityMedium] != 1 || r.ByPriority[model.PriorityLow] != 1 {
		t.Errorf("pending by priority = %v", r.ByPriority)
	}
}
