package coords

import "sort"

// Set maps position tags (BASE, GUIDE, SKY, ...) to coordinates. Tags
// are normalized on the way in and on lookup, so Get is
// case-insensitive and honors the TARGET alias.
type Set struct {
	byTag map[string]*Coord
}

func NewSet() *Set {
	return &Set{byTag: map[string]*Coord{}}
}

func (s *Set) Put(tag string, c *Coord) {
	s.byTag[normalizeTag(tag)] = c
}

// Get returns the coordinate stored under tag, or nil when the set has
// none.
func (s *Set) Get(tag string) *Coord {
	return s.byTag[normalizeTag(tag)]
}

func (s *Set) Len() int {
	return len(s.byTag)
}

// Tags returns the stored tags, sorted.
func (s *Set) Tags() []string {
	tags := make([]string, 0, len(s.byTag))
	for tag := range s.byTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
