package store

import "github.com/Tiliavir/studyhub/internal/model"

// NewSeeded returns a store holding the fixed sample data every session
// starts with.
func NewSeeded() *Store {
	s := New()
	s.assignments = seedAssignments()
	s.routine = seedRoutine()
	s.lastAssignmentID = int64(len(s.assignments))
	s.lastRoutineID = int64(len(s.routine))
	return s
}

func seedAssignments() []model.Assignment {
	return []model.Assignment{
		{
			ID:          1,
			Title:       "Algebra Assignment",
			Subject:     "Math",
			Description: "Complete exercises 1-20 from Chapter 5",
			DueDate:     "Due Today",
			DueTime:     "11:59 PM",
			Priority:    model.PriorityHigh,
		},
		{
			ID:          2,
			Title:       "Essay on World War II",
			Subject:     "History",
			Description: "Write a 1000-word essay on the causes of WWII",
			DueDate:     "Due Tomorrow",
			DueTime:     "5:00 PM",
			Priority:    model.PriorityMedium,
		},
		{
			ID:          3,
			Title:       "Science Lab Report",
			Subject:     "Science",
			Description: "Complete lab report on chemical reactions",
			DueDate:     "Due in 3 days",
			DueTime:     "2:00 PM",
			Priority:    model.PriorityLow,
		},
	}
}

func seedRoutine() []model.RoutineItem {
	return []model.RoutineItem{
		{ID: 1, Title: "Study Session", Time: "8:00 AM - 9:00 AM", Kind: model.KindStudy, Color: "blue", Days: []model.Weekday{}},
		{ID: 2, Title: "Breakfast", Time: "9:00 AM - 9:30 AM", Kind: model.KindBreak, Color: "orange", Days: []model.Weekday{}},
		{ID: 3, Title: "Math Homework", Time: "9:30 AM - 10:30 AM", Kind: model.KindHomework, Color: "green", Days: []model.Weekday{}},
		{ID: 4, Title: "Break", Time: "10:30 AM - 11:00 AM", Kind: model.KindMorning, Color: "yellow", Days: []model.Weekday{}},
		{ID: 5, Title: "Science Project", Time: "11:00 AM - 12:00 PM", Kind: model.KindScience, Color: "purple", Days: []model.Weekday{}},
		{ID: 6, Title: "Lunch", Time: "12:00 PM - 1:00 PM", Kind: model.KindMeal, Color: "red", Days: []model.Weekday{}},
		{ID: 7, Title: "Reading", Time: "1:00 PM - 2:00 PM", Kind: model.KindReading, Color: "indigo", Days: []model.Weekday{}},
		{ID: 8, Title: "Free Time", Time: "2:00 PM - 3:00 PM", Kind: model.KindFun, Color: "pink", Days: []model.Weekday{}},
	}
}
