package catalog

// Section is a named, ordered group of questions.
type Section struct {
	Name      string
	Questions []Question
}

// GroupBySection partitions questions by section name. Sections appear in
// the order their first question appears; questions keep their relative
// order within a section.
func GroupBySection(questions []Question) []Section {
	var sections []Section
	index := make(map[string]int)

	for _, q := range questions {
		i, ok := index[q.Section]
		if !ok {
			i = len(sections)
			index[q.Section] = i
			sections = append(sections, Section{Name: q.Section})
		}
		sections[i].Questions = append(sections[i].Questions, q)
	}
	return sections
}

// SectionMap returns the same grouping keyed by section name.
func SectionMap(questions []Question) map[string][]Question {
	m := make(map[string][]Question)
	for _, s := range GroupBySection(questions) {
		m[s.Name] = s.Questions
	}
	return m
}

// Offset returns the number of questions in the sections before index i.
func Offset(sections []Section, i int) int {
	n := 0
	for j := 0; j < i && j < len(sections); j++ {
		n += len(sections[j].Questions)
	}
	return n
}
