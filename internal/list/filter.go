package list

import "strings"

// FilterAll is the sentinel value clearing a filter constraint.
const FilterAll = "all"

// FilterState holds the current search text and active filter constraints.
type FilterState struct {
	Search  string
	Filters map[string]string
}

// matches reports whether a record satisfies every active filter constraint
// AND the search predicate. Search is substring containment over the
// searchable fields, case-insensitive, not tokenized.
func (s Schema[T]) matches(record T, state FilterState) bool {
	for field, want := range state.Filters {
		extract, ok := s.Filterable[field]
		if !ok {
			return false
		}
		if extract(record) != want {
			return false
		}
	}

	if state.Search == "" {
		return true
	}
	needle := strings.ToLower(state.Search)
	for _, extract := range s.Searchable {
		if strings.Contains(strings.ToLower(extract(record)), needle) {
			return true
		}
	}
	return false
}
