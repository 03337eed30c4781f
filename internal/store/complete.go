package store

import (
	"slices"
	"strings"
)

// Kind names an entity collection for id completion.
type Kind string

const (
	KindUser    Kind = "user"
	KindProject Kind = "project"
	KindTask    Kind = "task"
	KindTag     Kind = "tag"
	KindComment Kind = "comment"
)

// CompleteIDs returns the ids in the given collection that start with the
// prefix, case-insensitively, sorted. An empty prefix lists every id.
// Backs prompt-argument autocompletion and the resource id listings.
func (s *Store) CompleteIDs(kind Kind, prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0)
	collect := func(id string) {
		ids = append(ids, id)
	}
	switch kind {
	case KindUser:
		for id := range s.users {
			collect(id)
		}
	case KindProject:
		for id := range s.projects {
			collect(id)
		}
	case KindTask:
		for id := range s.tasks {
			collect(id)
		}
	case KindTag:
		for id := range s.tags {
			collect(id)
		}
	case KindComment:
		for id := range s.comments {
			collect(id)
		}
	}

	p := strings.ToLower(prefix)
	matched := ids[:0]
	for _, id := range ids {
		if strings.HasPrefix(strings.ToLower(id), p) {
			matched = append(matched, id)
		}
	}
	slices.Sort(matched)
	return matched
}
