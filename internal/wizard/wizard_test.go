package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topocapital/suitability/internal/catalog"
	"github.com/topocapital/suitability/internal/scoring"
)

func started(t *testing.T) (*Wizard, State) {
	t.Helper()
	w := New(catalog.MustBuiltin())
	s, err := w.Start(w.Initial())
	require.NoError(t, err)
	return w, s
}

// answerAndNext selects idx for the current question and advances.
func answerAndNext(t *testing.T, w *Wizard, s State, idx int) State {
	t.Helper()
	s, err := w.SelectCurrent(s, idx)
	require.NoError(t, err)
	s, err = w.Next(s)
	require.NoError(t, err)
	return s
}

func TestStart(t *testing.T) {
	w, s := started(t)
	assert.Equal(t, PhaseAnswering, s.Phase)
	sec, q, ok := w.Current(s)
	require.True(t, ok)
	assert.Equal(t, "Experiência", sec.Name)
	assert.Equal(t, 0, q.ID)

	_, err := w.Start(s)
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestNext_RefusesUnanswered(t *testing.T) {
	w, s := started(t)
	next, err := w.Next(s)
	assert.ErrorIs(t, err, ErrUnanswered)
	assert.Equal(t, s, next)
	assert.False(t, w.CanAdvance(s))
}

func TestNext_WithinSectionThenAcrossSections(t *testing.T) {
	w, s := started(t)

	s = answerAndNext(t, w, s, 1)
	assert.Equal(t, 0, s.Section)
	assert.Equal(t, 1, s.Question)

	s = answerAndNext(t, w, s, 1)
	assert.Equal(t, 1, s.Section)
	assert.Equal(t, 0, s.Question)
	_, q, _ := w.Current(s)
	assert.Equal(t, 7, q.ID)
}

func TestNext_LastQuestionClassifiesOnce(t *testing.T) {
	w, s := started(t)
	for i := 0; i < 10; i++ {
		require.Equal(t, PhaseAnswering, s.Phase, "question %d", i)
		s = answerAndNext(t, w, s, 2)
	}
	assert.Equal(t, PhaseResults, s.Phase)
	require.NotNil(t, s.Result)
	assert.Equal(t, catalog.Aggressive, s.Result.Profile)
	assert.InDelta(t, 100.0, s.Result.Normalized, 1e-9)

	// No further transition can reclassify.
	again, err := w.Next(s)
	assert.ErrorIs(t, err, ErrWrongPhase)
	assert.Same(t, s.Result, again.Result)
}

func TestFullRun_MatchesClassify(t *testing.T) {
	w, s := started(t)
	choices := []int{0, 1, 2, 0, 1, 2, 0, 1, 2, 1}
	for _, c := range choices {
		s = answerAndNext(t, w, s, c)
	}
	require.Equal(t, PhaseResults, s.Phase)
	assert.Equal(t, scoring.Classify(catalog.MustBuiltin(), s.Answers), s.Result.Profile)
	assert.Len(t, s.Answers, 10)
}

func TestPrev(t *testing.T) {
	w, s := started(t)

	// (0,0) -> welcome
	back, err := w.Prev(s)
	require.NoError(t, err)
	assert.Equal(t, PhaseWelcome, back.Phase)

	// Move into the second section and go back across the boundary.
	s = answerAndNext(t, w, s, 0)
	s = answerAndNext(t, w, s, 2)
	require.Equal(t, 1, s.Section)

	s, err = w.Prev(s)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Section)
	assert.Equal(t, 1, s.Question)

	// Answers survive going back.
	idx, ok := s.Answer(6)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.True(t, w.CanAdvance(s))

	s, err = w.Prev(s)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Question)
}

func TestPrev_TwiceCrossesIntoPreviousSection(t *testing.T) {
	w, s := started(t)
	for i := 0; i < 4; i++ {
		s = answerAndNext(t, w, s, 1)
	}
	// first question of "Tolerância"
	require.Equal(t, 2, s.Section)
	s = answerAndNext(t, w, s, 1)
	s, err := w.Prev(s)
	require.NoError(t, err)
	s, err = w.Prev(s)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Section)
	assert.Equal(t, 1, s.Question)
}

func TestPrev_WrongPhase(t *testing.T) {
	w := New(catalog.MustBuiltin())
	_, err := w.Prev(w.Initial())
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestSelect_Validation(t *testing.T) {
	w, s := started(t)

	_, err := w.Select(s, 42, 0)
	assert.ErrorIs(t, err, ErrUnknownQuestion)

	_, err = w.Select(s, 0, 3)
	assert.ErrorIs(t, err, ErrInvalidOption)

	_, err = w.Select(s, 0, -1)
	assert.ErrorIs(t, err, ErrInvalidOption)

	_, err = w.Select(w.Initial(), 0, 1)
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestSelect_DoesNotMutatePreviousState(t *testing.T) {
	w, s := started(t)
	s1, err := w.SelectCurrent(s, 1)
	require.NoError(t, err)
	s2, err := w.SelectCurrent(s1, 2)
	require.NoError(t, err)

	assert.Empty(t, s.Answers)
	assert.Equal(t, 1, s1.Answers[0])
	assert.Equal(t, 2, s2.Answers[0])
}

func TestRestart_ClearsEverything(t *testing.T) {
	w, s := started(t)
	for i := 0; i < 10; i++ {
		s = answerAndNext(t, w, s, 1)
	}
	require.Equal(t, PhaseResults, s.Phase)

	s = w.Restart(s)
	assert.Equal(t, PhaseWelcome, s.Phase)
	assert.Empty(t, s.Answers)
	assert.Nil(t, s.Result)
	assert.Equal(t, 0, s.Section)
	assert.Equal(t, 0, s.Question)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "welcome", PhaseWelcome.String())
	assert.Equal(t, "results", PhaseResults.String())
	assert.Equal(t, "phase(9)", Phase(9).String())
}
