// Package wizard drives the linear questionnaire: welcome, one question at a
// time grouped by section, then results.
package wizard

import (
	"errors"
	"fmt"

	"github.com/topocapital/suitability/internal/catalog"
	"github.com/topocapital/suitability/internal/scoring"
)

// Phase is the coarse position of the questionnaire.
type Phase int

const (
	PhaseWelcome   Phase = iota // Intro, nothing answered yet
	PhaseAnswering              // Showing one question
	PhaseResults                // Classified, showing the profile
)

func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhaseAnswering:
		return "answering"
	case PhaseResults:
		return "results"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

var (
	// ErrUnanswered is returned by Next when the current question has no answer.
	ErrUnanswered = errors.New("current question is unanswered")

	// ErrWrongPhase is returned when a transition is not valid in the current phase.
	ErrWrongPhase = errors.New("transition not allowed in this phase")

	// ErrUnknownQuestion is returned by Select for IDs outside the catalog.
	ErrUnknownQuestion = errors.New("unknown question")

	// ErrInvalidOption is returned by Select for an out-of-range option index.
	ErrInvalidOption = errors.New("invalid option index")
)

// State is the questionnaire position and the answers collected so far.
// Transitions never modify a State in place; they return a new one.
type State struct {
	Phase    Phase
	Section  int
	Question int
	Answers  scoring.Answers
	Result   *scoring.Result
}

// Answer returns the recorded option for a question.
func (s State) Answer(id int) (int, bool) {
	idx, ok := s.Answers[id]
	return idx, ok
}

// Wizard holds the sectioned catalog the transitions walk over.
type Wizard struct {
	cat      *catalog.Catalog
	sections []catalog.Section
}

// New creates a Wizard over the catalog's sections.
func New(cat *catalog.Catalog) *Wizard {
	return &Wizard{cat: cat, sections: cat.Sections()}
}

// Catalog returns the catalog the wizard walks.
func (w *Wizard) Catalog() *catalog.Catalog { return w.cat }

// Sections returns the ordered sections.
func (w *Wizard) Sections() []catalog.Section { return w.sections }

// Initial returns the welcome state with an empty answer set.
func (w *Wizard) Initial() State {
	return State{Phase: PhaseWelcome, Answers: scoring.Answers{}}
}

// Start moves from welcome to the first question of the first section.
func (w *Wizard) Start(s State) (State, error) {
	if s.Phase != PhaseWelcome {
		return s, ErrWrongPhase
	}
	s.Phase = PhaseAnswering
	s.Section, s.Question = 0, 0
	if s.Answers == nil {
		s.Answers = scoring.Answers{}
	}
	return s, nil
}

// Current returns the section and question at the state's position.
func (w *Wizard) Current(s State) (catalog.Section, catalog.Question, bool) {
	if s.Phase != PhaseAnswering || s.Section < 0 || s.Section >= len(w.sections) {
		return catalog.Section{}, catalog.Question{}, false
	}
	sec := w.sections[s.Section]
	if s.Question < 0 || s.Question >= len(sec.Questions) {
		return catalog.Section{}, catalog.Question{}, false
	}
	return sec, sec.Questions[s.Question], true
}

// Select records an answer. Selecting again overwrites the previous choice.
func (w *Wizard) Select(s State, id, index int) (State, error) {
	if s.Phase != PhaseAnswering {
		return s, ErrWrongPhase
	}
	q, ok := w.cat.Question(id)
	if !ok {
		return s, fmt.Errorf("%w: %d", ErrUnknownQuestion, id)
	}
	if index < 0 || index >= len(q.Options) {
		return s, fmt.Errorf("%w: %d for question %d", ErrInvalidOption, index, id)
	}
	answers := s.Answers.Clone()
	answers[id] = index
	s.Answers = answers
	return s, nil
}

// SelectCurrent records an answer for the question on screen.
func (w *Wizard) SelectCurrent(s State, index int) (State, error) {
	_, q, ok := w.Current(s)
	if !ok {
		return s, ErrWrongPhase
	}
	return w.Select(s, q.ID, index)
}

// Next advances to the following question, the first question of the next
// section, or, from the very last question, classifies the answers and
// enters the results phase.
func (w *Wizard) Next(s State) (State, error) {
	sec, q, ok := w.Current(s)
	if !ok {
		return s, ErrWrongPhase
	}
	if _, answered := s.Answers[q.ID]; !answered {
		return s, ErrUnanswered
	}

	switch {
	case s.Question < len(sec.Questions)-1:
		s.Question++
	case s.Section < len(w.sections)-1:
		s.Section++
		s.Question = 0
	default:
		r := scoring.Evaluate(w.cat, s.Answers)
		s.Result = &r
		s.Phase = PhaseResults
	}
	return s, nil
}

// Prev steps back one question, to the last question of the previous
// section, or from the first question back to welcome. Answers are kept.
func (w *Wizard) Prev(s State) (State, error) {
	if s.Phase != PhaseAnswering {
		return s, ErrWrongPhase
	}
	switch {
	case s.Question > 0:
		s.Question--
	case s.Section > 0:
		s.Section--
		s.Question = len(w.sections[s.Section].Questions) - 1
	default:
		s.Phase = PhaseWelcome
	}
	return s, nil
}

// Restart discards all answers and any result and returns to welcome.
func (w *Wizard) Restart(State) State {
	return w.Initial()
}
