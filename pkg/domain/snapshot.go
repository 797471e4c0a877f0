package domain

// Snapshot is an immutable view of the feed state published to observers
type Snapshot struct {
	Category   Category `json:"category,omitempty"`
	Items      []Quote  `json:"items"`
	Index      int      `json:"index"`
	Current    *Quote   `json:"current,omitempty"`
	Loading    bool     `json:"loading"`
	ReachedEnd bool     `json:"reached_end"`
}

// HasCategory reports whether a category is selected
func (s Snapshot) HasCategory() bool {
	return s.Category.Valid()
}

// Find returns the loaded quote with the given id
func (s Snapshot) Find(id string) (Quote, bool) {
	for _, q := range s.Items {
		if q.ID == id {
			return q, true
		}
	}
	return Quote{}, false
}
