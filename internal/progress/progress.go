package progress

import (
	"github.com/Tiliavir/studyhub/internal/model"
	"github.com/Tiliavir/studyhub/internal/store"
)

// SubjectProgress is the completion state of one subject.
type SubjectProgress struct {
	Subject   string `json:"subject"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Percent   int    `json:"percent"`
}

// Report summarises a store snapshot for the progress screen.
type Report struct {
	Total      int                    `json:"total"`
	Completed  int                    `json:"completed"`
	Pending    int                    `json:"pending"`
	Percent    int                    `json:"percent"`
	Subjects   []SubjectProgress      `json:"subjects"`
	ByPriority map[model.Priority]int `json:"pending_by_priority"`
	Routine    int                    `json:"routine_items"`
}

// Compute builds a Report. Subjects appear in the order they are first seen.
func Compute(snap store.Snapshot) Report {
	r := Report{
		Subjects: []SubjectProgress{},
		ByPriority: map[model.Priority]int{
			model.PriorityHigh:   0,
			model.PriorityMedium: 0,
			model.PriorityLow:    0,
		},
		Routine: len(snap.RoutineItems),
	}

	index := map[string]int{}
	for _, a := range snap.Assignments {
		r.Total++
		i, ok := index[a.Subject]
		if !ok {
			i = len(r.Subjects)
			index[a.Subject] = i
			r.Subjects = append(r.Subjects, SubjectProgress{Subject: a.Subject})
		}
		r.Subjects[i].Total++
		if a.Completed {
			r.Completed++
			r.Subjects[i].Completed++
			continue
		}
		r.Pending++
		r.ByPriority[a.Priority]++
	}

	r.Percent = Percent(r.Completed, r.Total)
	for i := range r.Subjects {
		r.Subjects[i].Percent = Percent(r.Subjects[i].Completed, r.Subjects[i].Total)
	}
	return r
}

// Percent returns part/total as a whole percentage, rounded down. A zero
// total yields 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return part * 100 / total
}
