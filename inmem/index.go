package inmem

import (
	"strings"
	"sync"

	scholarnexus "github.com/jayadityagandham/Scholar-Nexus"
)

// ResourceIndex is a naive in-memory implementation of
// scholarnexus.ResourceIndex: suggestions are substring matches over title,
// authors and categories.
type ResourceIndex struct {
	mu        sync.RWMutex
	resources []scholarnexus.Resource
}

func NewResourceIndex() *ResourceIndex {
	return &ResourceIndex{
		resources: make([]scholarnexus.Resource, 0),
	}
}

func (s *ResourceIndex) Index(resource *scholarnexus.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, stored := range s.resources {
		if stored.ID == resource.ID {
			s.resources[i] = cloneResource(*resource)
			return nil
		}
	}
	s.resources = append(s.resources, cloneResource(*resource))
	return nil
}

func (s *ResourceIndex) Suggest(q string, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q = strings.ToLower(strings.TrimSpace(q))
	ids := make([]string, 0)
	if q == "" {
		return ids, nil
	}

	for _, resource := range s.resources {
		if len(ids) >= limit {
			break
		}
		if matchesSuggestion(resource, q) {
			ids = append(ids, resource.ID)
		}
	}
	return ids, nil
}

func matchesSuggestion(resource scholarnexus.Resource, q string) bool {
	if strings.Contains(strings.ToLower(resource.Title), q) {
		return true
	}
	for _, author := range resource.Authors {
		if strings.Contains(strings.ToLower(author), q) {
			return true
		}
	}
	for _, category := range resource.Category {
		if strings.Contains(strings.ToLower(category), q) {
			return true
		}
	}
	return false
}
