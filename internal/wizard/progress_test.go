package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/topocapital/suitability/internal/catalog"
)

func TestProgress_FirstQuestion(t *testing.T) {
	w, s := started(t)
	p := w.Progress(s)
	assert.Equal(t, 1, p.QuestionNumber)
	assert.Equal(t, 10, p.Total)
	assert.Equal(t, 0, p.Answered)
	assert.Equal(t, 0.0, p.Overall)
	assert.Equal(t, 1, p.SectionNumber)
	assert.Equal(t, 3, p.SectionCount)
	assert.Equal(t, 0.5, p.SectionProgress)
	assert.False(t, p.IsLast)
}

func TestProgress_QuestionNumberAcrossSections(t *testing.T) {
	w, s := started(t)
	for i := 0; i < 5; i++ {
		s = answerAndNext(t, w, s, 0)
	}
	// Third section, second question.
	p := w.Progress(s)
	assert.Equal(t, 6, p.QuestionNumber)
	assert.Equal(t, 5, p.Answered)
	assert.Equal(t, 50, p.OverallPercent())
	assert.InDelta(t, 2.0/6.0, p.SectionProgress, 1e-9)
}

func TestProgress_IsLast(t *testing.T) {
	w, s := started(t)
	for i := 0; i < 9; i++ {
		s = answerAndNext(t, w, s, 0)
	}
	p := w.Progress(s)
	assert.True(t, p.IsLast)
	assert.Equal(t, 10, p.QuestionNumber)
	assert.Equal(t, 1.0, p.SectionProgress)
	assert.Equal(t, 90, p.OverallPercent())
}

func TestProgress_OutsideAnswering(t *testing.T) {
	w := New(catalog.MustBuiltin())
	p := w.Progress(w.Initial())
	assert.Equal(t, 0, p.QuestionNumber)
	assert.Equal(t, 0, p.OverallPercent())
}
