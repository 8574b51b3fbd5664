package model

// Selection scopes every derived computation: a subset of entities plus an
// inclusive week range. The entity order is preserved so that derived tables
// (matrix rows, win-pct series) come back in the order the caller asked for.
type Selection struct {
	Entities []string
	WeekLo   int
	WeekHi   int
}

// NewSelection builds a selection, dropping duplicate entities while keeping
// first-occurrence order.
func NewSelection(entities []string, weekLo, weekHi int) Selection {
	seen := make(map[string]bool, len(entities))
	uniq := make([]string, 0, len(entities))
	for _, e := range entities {
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		uniq = append(uniq, e)
	}
	return Selection{Entities: uniq, WeekLo: weekLo, WeekHi: weekHi}
}

// EntitySet returns a lookup set over the selected entities.
func (s Selection) EntitySet() map[string]bool {
	set := make(map[string]bool, len(s.Entities))
	for _, e := range s.Entities {
		set[e] = true
	}
	return set
}

// InRange reports whether week falls inside the inclusive [WeekLo, WeekHi]
// window.
func (s Selection) InRange(week int) bool {
	return week >= s.WeekLo && week <= s.WeekHi
}
