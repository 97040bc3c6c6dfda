package wizard

import "github.com/topocapital/suitability/internal/catalog"

// Progress is the read-out shown above a question.
type Progress struct {
	QuestionNumber  int     // 1-based across all sections
	Total           int     // questions in the catalog
	Answered        int     // questions with a recorded answer
	Overall         float64 // Answered / Total, 0-1
	SectionNumber   int     // 1-based
	SectionCount    int
	SectionProgress float64 // (Question+1) / len(section), 0-1
	IsLast          bool    // last question of the last section
}

// OverallPercent returns the overall progress rounded to a whole percent.
func (p Progress) OverallPercent() int {
	return int(p.Overall*100 + 0.5)
}

// Progress computes the read-out for the state's position. Outside the
// answering phase only the answer counts are meaningful.
func (w *Wizard) Progress(s State) Progress {
	p := Progress{
		Total:        w.cat.Len(),
		SectionCount: len(w.sections),
	}
	for id := range s.Answers {
		if _, ok := w.cat.Question(id); ok {
			p.Answered++
		}
	}
	if p.Total > 0 {
		p.Overall = float64(p.Answered) / float64(p.Total)
	}

	sec, _, ok := w.Current(s)
	if !ok {
		return p
	}
	p.QuestionNumber = catalog.Offset(w.sections, s.Section) + s.Question + 1
	p.SectionNumber = s.Section + 1
	p.SectionProgress = float64(s.Question+1) / float64(len(sec.Questions))
	p.IsLast = s.Section == len(w.sections)-1 && s.Question == len(sec.Questions)-1
	return p
}

// CanAdvance reports whether Next would succeed.
func (w *Wizard) CanAdvance(s State) bool {
	_, q, ok := w.Current(s)
	if !ok {
		return false
	}
	_, answered := s.Answers[q.ID]
	return answered
}
