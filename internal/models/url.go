package models

import "time"

// Visit is a single redirect through a short code.
type Visit struct {
	Short     string
	VisitorID string
	At        time.Time
}

// VisitLog holds the visits of one short code in arrival order plus the set
// of distinct visitors.
type VisitLog struct {
	Entries  []Visit
	Visitors map[string]struct{}
}

// NewVisitLog returns an empty visit log.
func NewVisitLog() VisitLog {
	return VisitLog{Visitors: make(map[string]struct{})}
}

// Add appends v to the log.
func (l *VisitLog) Add(v Visit) {
	if l.Visitors == nil {
		l.Visitors = make(map[string]struct{})
	}
	l.Entries = append(l.Entries, v)
	l.Visitors[v.VisitorID] = struct{}{}
}

// Total returns the number of recorded visits.
func (l VisitLog) Total() int {
	return len(l.Entries)
}

// Unique returns the number of distinct visitors.
func (l VisitLog) Unique() int {
	return len(l.Visitors)
}

// Clone creates a deep copy of the log.
func (l VisitLog) Clone() VisitLog {
	c := VisitLog{
		Entries:  make([]Visit, len(l.Entries)),
		Visitors: make(map[string]struct{}, len(l.Visitors)),
	}
	copy(c.Entries, l.Entries)
	for id := range l.Visitors {
		c.Visitors[id] = struct{}{}
	}
	return c
}

// URLRecord maps a short code to its destination and owner.
type URLRecord struct {
	Short     string
	Original  string
	UserID    string
	CreatedAt time.Time
	Visits    VisitLog
}

// Clone creates a deep copy of the record.
func (r *URLRecord) Clone() *URLRecord {
	return &URLRecord{
		Short:     r.Short,
		Original:  r.Original,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
		Visits:    r.Visits.Clone(),
	}
}
