package models

import "strings"

// SelectionRequest is the query-string form of a dashboard selection.
// Entities is comma-separated; empty means "all known entities". Week bounds
// of zero mean "no bound on that side".
type SelectionRequest struct {
	Entities string `form:"entities"`
	WeekLo   int    `form:"week_lo"`
	WeekHi   int    `form:"week_hi"`
}

// EntityList splits and trims the comma-separated entity parameter.
func (r SelectionRequest) EntityList() []string {
	if strings.TrimSpace(r.Entities) == "" {
		return nil
	}
	parts := strings.Split(r.Entities, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
