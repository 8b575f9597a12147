package browse

import "github.com/pcarver/galleria/internal/artic"

// Selection is a set of artworks keyed by ID, accumulated across page
// fetches. Membership order is preserved for display but is irrelevant
// for correctness. The set never contains two artworks with the same ID.
type Selection struct {
	items []artic.Artwork
	byID  map[int]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{byID: make(map[int]struct{})}
}

// Add inserts the artwork if its ID is not already present. Returns true
// when the artwork was added.
func (s *Selection) Add(a artic.Artwork) bool {
	if _, ok := s.byID[a.ID]; ok {
		return false
	}
	s.byID[a.ID] = struct{}{}
	s.items = append(s.items, a)
	return true
}

// Remove deletes the artwork with the given ID. Returns true when a
// record was removed.
func (s *Selection) Remove(id int) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return true
}

// Toggle adds the artwork when absent and removes it when present.
// Returns true when the artwork is selected afterwards.
func (s *Selection) Toggle(a artic.Artwork) bool {
	if s.Contains(a.ID) {
		s.Remove(a.ID)
		return false
	}
	s.Add(a)
	return true
}

// Contains reports whether the given ID is selected.
func (s *Selection) Contains(id int) bool {
	_, ok := s.byID[id]
	return ok
}

// Len returns the number of selected artworks.
func (s *Selection) Len() int {
	return len(s.items)
}

// Items returns the selected artworks in insertion order. The returned
// slice is a copy.
func (s *Selection) Items() []artic.Artwork {
	out := make([]artic.Artwork, len(s.items))
	copy(out, s.items)
	return out
}

// Clear removes every selected artwork.
func (s *Selection) Clear() {
	s.items = nil
	s.byID = make(map[int]struct{})
}

// AddAll adds every artwork in the slice, skipping duplicates.
func (s *Selection) AddAll(artworks []artic.Artwork) {
	for _, a := range artworks {
		s.Add(a)
	}
}

// RemoveAll removes every artwork in the slice that is selected.
func (s *Selection) RemoveAll(artworks []artic.Artwork) {
	for _, a := range artworks {
		s.Remove(a.ID)
	}
}
