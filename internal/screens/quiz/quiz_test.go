package quiz

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topocapital/suitability/internal/catalog"
	"github.com/topocapital/suitability/internal/glossary"
	"github.com/topocapital/suitability/internal/llm"
	"github.com/topocapital/suitability/internal/router"
	"github.com/topocapital/suitability/internal/screen"
	"github.com/topocapital/suitability/internal/session"
	"github.com/topocapital/suitability/internal/store"
	"github.com/topocapital/suitability/internal/wizard"
)

type fakeRecorder struct {
	actions []string
	results []store.ResultData
}

func (f *fakeRecorder) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	f.actions = append(f.actions, d.Action)
	return nil
}

func (f *fakeRecorder) AppendResult(_ context.Context, d store.ResultData) error {
	f.results = append(f.results, d)
	return nil
}

type resultsStub struct{ state wizard.State }

func (s *resultsStub) Init() tea.Cmd                          { return nil }
func (s *resultsStub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *resultsStub) View(int, int) string                   { return "results" }
func (s *resultsStub) Title() string                          { return "results" }

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: string(code)}
}

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	esc   = tea.KeyPressMsg{Code: tea.KeyEscape}
	left  = tea.KeyPressMsg{Code: tea.KeyLeft}
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
)

func newTestQuiz(svc *glossary.Service) (*QuizScreen, *fakeRecorder) {
	rec := &fakeRecorder{}
	q := New(Options{
		Wizard:   wizard.New(catalog.MustBuiltin()),
		Tracker:  session.NewTracker(rec),
		Glossary: svc,
		Results:  func(s wizard.State) screen.Screen { return &resultsStub{state: s} },
	})
	q.Init()
	return q, rec
}

// send delivers msg and feeds back a message produced by the returned
// command, unless it is a router message, which is returned instead.
func send(t *testing.T, q *QuizScreen, msg tea.Msg) tea.Msg {
	t.Helper()
	_, cmd := q.Update(msg)
	if cmd == nil {
		return nil
	}
	out := cmd()
	switch out.(type) {
	case router.PopScreenMsg, router.ReplaceScreenMsg, router.PushScreenMsg:
		return out
	}
	if out != nil {
		q.Update(out)
	}
	return nil
}

func TestNew_StartsOnFirstQuestion(t *testing.T) {
	q, rec := newTestQuiz(nil)

	assert.Equal(t, wizard.PhaseAnswering, q.State().Phase)
	assert.Equal(t, []string{store.ActionStart}, rec.actions)

	pct, ok := q.HeaderProgress()
	assert.True(t, ok)
	assert.Equal(t, 0, pct)

	v := q.View(120, 40)
	assert.Contains(t, v, "Seção: Experiência")
	assert.Contains(t, v, "Pergunta 1 de 10")
	assert.Contains(t, v, "Próximo")
}

func TestNext_RequiresAnswer(t *testing.T) {
	q, _ := newTestQuiz(nil)

	assert.Nil(t, send(t, q, enter))
	assert.Contains(t, q.View(120, 40), "Selecione uma opção")
	assert.Equal(t, 1, q.opts.Wizard.Progress(q.State()).QuestionNumber)
}

func TestPickAndAdvance(t *testing.T) {
	q, _ := newTestQuiz(nil)

	send(t, q, press('2'))
	idx, ok := q.State().Answer(0)
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	send(t, q, enter)
	assert.Equal(t, 2, q.opts.Wizard.Progress(q.State()).QuestionNumber)

	pct, _ := q.HeaderProgress()
	assert.Equal(t, 10, pct)
}

func TestPickWithSpace(t *testing.T) {
	q, _ := newTestQuiz(nil)

	send(t, q, down)
	send(t, q, tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})

	idx, ok := q.State().Answer(0)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestBack_KeepsAnswer(t *testing.T) {
	q, _ := newTestQuiz(nil)

	send(t, q, press('3'))
	send(t, q, enter)
	send(t, q, left)

	assert.Equal(t, 1, q.opts.Wizard.Progress(q.State()).QuestionNumber)
	assert.Equal(t, 2, q.options.Chosen)
}

func TestFinish_ReplacesWithResults(t *testing.T) {
	q, rec := newTestQuiz(nil)

	var out tea.Msg
	for i := 0; i < 10; i++ {
		send(t, q, press('3'))
		out = send(t, q, enter)
	}

	replace, ok := out.(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg, got %T", out)
	res := replace.Screen.(*resultsStub)
	require.NotNil(t, res.state.Result)
	assert.Equal(t, catalog.Aggressive, res.state.Result.Profile)

	assert.Equal(t, []string{store.ActionStart, store.ActionComplete}, rec.actions)
	require.Len(t, rec.results, 1)
	assert.Equal(t, "arrojado", rec.results[0].Profile)
	assert.InDelta(t, 100.0, rec.results[0].Normalized, 1e-9)
}

func TestFinishButtonOnLastQuestion(t *testing.T) {
	q, _ := newTestQuiz(nil)
	for i := 0; i < 9; i++ {
		send(t, q, press('1'))
		send(t, q, enter)
	}
	assert.Contains(t, q.View(120, 40), "Finalizar")
}

func TestBackFromFirstQuestion_PausesWithoutAbandon(t *testing.T) {
	rec := &fakeRecorder{}
	var paused *QuizScreen
	q := New(Options{
		Wizard:  wizard.New(catalog.MustBuiltin()),
		Tracker: session.NewTracker(rec),
		Results: func(s wizard.State) screen.Screen { return &resultsStub{state: s} },
		Pause:   func(s *QuizScreen) { paused = s },
	})
	q.Init()

	send(t, q, press('2'))
	out := send(t, q, left)
	assert.IsType(t, router.PopScreenMsg{}, out)
	assert.Same(t, q, paused)
	assert.Equal(t, []string{store.ActionStart}, rec.actions)

	// Resuming keeps the answer and does not record a second start.
	assert.Nil(t, paused.Init())
	assert.Equal(t, []string{store.ActionStart}, rec.actions)
	idx, ok := paused.State().Answer(0)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 1, paused.options.Chosen)
}

func TestPickThenEnter_AnswersQuestionOnScreen(t *testing.T) {
	q, _ := newTestQuiz(nil)

	send(t, q, press('1'))
	_, cmd := q.Update(press('3'))
	assert.Nil(t, cmd)
	_, _ = q.Update(enter)

	first, ok := q.State().Answer(0)
	require.True(t, ok)
	assert.Equal(t, 2, first)

	_, answered := q.State().Answer(6)
	assert.False(t, answered, "the next question must stay unanswered")
	assert.Equal(t, 2, q.opts.Wizard.Progress(q.State()).QuestionNumber)
	assert.Equal(t, -1, q.options.Chosen)
}

func TestEscape_Abandons(t *testing.T) {
	q, rec := newTestQuiz(nil)
	assert.True(t, q.HandlesEscape())

	out := send(t, q, esc)
	assert.IsType(t, router.PopScreenMsg{}, out)
	assert.Equal(t, []string{store.ActionStart, store.ActionAbandon}, rec.actions)
}

func TestGlossary_OpenAndClose(t *testing.T) {
	q, rec := newTestQuiz(nil)

	send(t, q, press('?'))
	require.NotNil(t, q.panel)
	v := q.View(120, 40)
	assert.Contains(t, v, "Glossário")
	assert.Contains(t, v, "Configure um provedor")

	assert.Nil(t, send(t, q, enter))

	assert.Nil(t, send(t, q, esc))
	assert.Nil(t, q.panel)
	assert.Equal(t, []string{store.ActionStart}, rec.actions, "closing the panel must not abandon")
}

func TestGlossary_ExplainsSelectedTerm(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: []byte(`{"term":"CDI","explanation":"Taxa de referência entre bancos.","example":"Um CDB que paga 100% do CDI.","risk":"baixo"}`),
	})
	q, _ := newTestQuiz(glossary.NewService(mock, glossary.DefaultConfig()))

	send(t, q, press('?'))
	require.NotNil(t, q.panel)

	_, cmd := q.Update(enter)
	require.NotNil(t, cmd)
	assert.Contains(t, q.View(120, 40), "Gerando explicação")

	msgs := []tea.Msg{cmd()}
	if batch, ok := msgs[0].(tea.BatchMsg); ok {
		msgs = msgs[:0]
		for _, c := range batch {
			msgs = append(msgs, c())
		}
	}
	for _, m := range msgs {
		if _, ok := m.(explainedMsg); ok {
			q.Update(m)
		}
	}

	v := q.View(120, 40)
	assert.Contains(t, v, "Taxa de referência")
	assert.Contains(t, v, "Risco: baixo")
	assert.Equal(t, 1, mock.CallCount())
}
