package model

// Snapshot is the complete persisted state: the job map keyed by the
// composite (order, task) key, and the site enrichment cache keyed by site
// ID. The two maps are distinct fields on purpose; they are never comingled
// in one keyed container.
type Snapshot struct {
	Jobs  map[string]Job `json:"jobs"`
	Sites map[int64]Site `json:"sites"`
}

// NewSnapshot returns an empty snapshot with both maps allocated.
func NewSnapshot() Snapshot {
	return Snapshot{
		Jobs:  make(map[string]Job),
		Sites: make(map[int64]Site),
	}
}

// Normalize allocates any nil map so callers can mutate freely.
func (s *Snapshot) Normalize() {
	if s.Jobs == nil {
		s.Jobs = make(map[string]Job)
	}
	if s.Sites == nil {
		s.Sites = make(map[int64]Site)
	}
}

// Clone returns a deep copy of the snapshot. Job and Site values are plain
// data, so copying the maps is sufficient.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Jobs:  make(map[string]Job, len(s.Jobs)),
		Sites: make(map[int64]Site, len(s.Sites)),
	}
	for k, v := range s.Jobs {
		out.Jobs[k] = v
	}
	for k, v := range s.Sites {
		out.Sites[k] = v
	}
	return out
}
