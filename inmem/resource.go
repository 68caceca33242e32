package inmem

import (
	"errors"
	"strconv"
	"sync"

	scholarnexus "github.com/jayadityagandham/Scholar-Nexus"
)

// ResourceRepository is an in-memory implementation of
// scholarnexus.ResourceRepository, used in tests and development.
type ResourceRepository struct {
	mu        sync.RWMutex
	resources []scholarnexus.Resource
	lastID    uint64
}

func NewResourceRepository() *ResourceRepository {
	return &ResourceRepository{
		resources: make([]scholarnexus.Resource, 0),
	}
}

func (r *ResourceRepository) Get(ids ...string) ([]scholarnexus.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resources := make([]scholarnexus.Resource, 0, len(ids))
	for _, id := range ids {
		for _, resource := range r.resources {
			if resource.ID == id {
				resources = append(resources, cloneResource(resource))
				break
			}
		}
	}
	return resources, nil
}

func (r *ResourceRepository) List() ([]scholarnexus.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resources := make([]scholarnexus.Resource, len(r.resources))
	for i, resource := range r.resources {
		resources[i] = cloneResource(resource)
	}
	return resources, nil
}

func (r *ResourceRepository) Insert(resource *scholarnexus.Resource) error {
	if resource.ID != "" {
		return errors.New("id already set")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	resource.ID = strconv.FormatUint(r.lastID, 10)
	r.resources = append(r.resources, cloneResource(*resource))
	return nil
}

// cloneResource copies the slices so stored resources cannot be mutated
// through returned values.
func cloneResource(resource scholarnexus.Resource) scholarnexus.Resource {
	clone := resource
	clone.Authors = append([]string(nil), resource.Authors...)
	clone.Category = append([]string(nil), resource.Category...)
	return clone
}
