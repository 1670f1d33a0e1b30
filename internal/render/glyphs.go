package render

import (
	"strings"

	"github.com/Tiliavir/studyhub/internal/model"
)

var subjectGlyphs = map[string]string{
	"math":    "📅",
	"history": "📖",
	"science": "⚗",
	"english": "✎",
	"art":     "🎨",
}

var routineGlyphs = map[model.RoutineKind]string{
	model.KindStudy:    "📖",
	model.KindBreak:    "☕",
	model.KindHomework: "✎",
	model.KindMorning:  "☀",
	model.KindScience:  "⚗",
	model.KindMeal:     "🥪",
	model.KindReading:  "📚",
	model.KindFun:      "🎮",
}

// SubjectGlyph returns the glyph shown next to an assignment of the given
// subject.
func SubjectGlyph(subject string) string {
	if g, ok := subjectGlyphs[strings.ToLower(strings.TrimSpace(subject))]; ok {
		return g
	}
	return "📖"
}

// RoutineGlyph returns the glyph for a routine kind.
func RoutineGlyph(kind model.RoutineKind) string {
	if g, ok := routineGlyphs[kind]; ok {
		return g
	}
	return "•"
}
