package services

import (
	"fmt"
	"sort"
	"strings"

	scholarnexus "github.com/jayadityagandham/Scholar-Nexus"
	"github.com/jayadityagandham/Scholar-Nexus/errors"
	"github.com/jayadityagandham/Scholar-Nexus/log"
	"github.com/jayadityagandham/Scholar-Nexus/notify"
)

func errResourceNotFound(id string) error {
	return errors.New(fmt.Sprintf("resource %s not found", id), errors.NotFound())
}

// ResourceService answers catalog queries and inserts new resources. It
// performs no validation on the resource content, that is the caller's
// responsibility.
type ResourceService struct {
	repository scholarnexus.ResourceRepository
	index      scholarnexus.ResourceIndex

	notifier notify.Notifier
	logger   log.Logger
}

func NewResourceService(
	repo scholarnexus.ResourceRepository,
	index scholarnexus.ResourceIndex,
	notifier notify.Notifier,
	logger log.Logger,
) *ResourceService {
	return &ResourceService{
		repository: repo,
		index:      index,

		notifier: notifier,
		logger:   logger,
	}
}

// Search returns the resources passing every predicate of the filter, in
// the order requested by filter.SortBy. The underlying catalog is never
// mutated: sorting happens on a fresh slice.
func (s *ResourceService) Search(filter scholarnexus.ResourceFilter) ([]scholarnexus.Resource, error) {
	resources, err := s.repository.List()
	if err != nil {
		return nil, err
	}

	filtered := make([]scholarnexus.Resource, 0, len(resources))
	for _, resource := range resources {
		if matches(resource, filter) {
			filtered = append(filtered, resource)
		}
	}

	// Sorts are stable so resources with equal keys keep the catalog
	// insertion order.
	switch filter.SortBy {
	case scholarnexus.SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Year > filtered[j].Year })
	case scholarnexus.SortOldest:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Year < filtered[j].Year })
	case scholarnexus.SortCitations:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].CitationCount > filtered[j].CitationCount })
	default:
		// Relevance keeps the catalog insertion order.
	}

	return filtered, nil
}

func (s *ResourceService) Get(id string) (scholarnexus.Resource, error) {
	resources, err := s.repository.Get(id)
	if err != nil {
		return scholarnexus.Resource{}, err
	} else if len(resources) != 1 {
		return scholarnexus.Resource{}, errResourceNotFound(id)
	}

	return resources[0], nil
}

func (s *ResourceService) Create(resource scholarnexus.Resource) (scholarnexus.Resource, error) {
	if resource.ID != "" {
		return scholarnexus.Resource{}, errors.New("id already set", errors.BadRequest())
	}

	if err := s.repository.Insert(&resource); err != nil {
		return scholarnexus.Resource{}, err
	}

	// The suggestion index is auxiliary and can be rebuilt from the catalog,
	// so a failed indexing never undoes the insert.
	if err := s.index.Index(&resource); err != nil {
		s.logger.Errorf("could not index resource %s: %v", resource.ID, err)
	}

	s.notifier.Notify(notify.Notification{
		Event:   "resource.created",
		Title:   "Resource Added",
		Message: fmt.Sprintf("%q has been added to the catalog.", resource.Title),
		Payload: resource,
	})

	return resource, nil
}

// Featured returns the count resources with the highest citation counts,
// best first. A count of 0 yields an empty result, a count larger than the
// catalog yields the whole catalog.
func (s *ResourceService) Featured(count int) ([]scholarnexus.Resource, error) {
	if count <= 0 {
		return []scholarnexus.Resource{}, nil
	}

	resources, err := s.repository.List()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(resources, func(i, j int) bool { return resources[i].CitationCount > resources[j].CitationCount })
	if count < len(resources) {
		resources = resources[:count]
	}
	return resources, nil
}

// Suggest returns the resources matching a partial query, for search-as-you-
// type boxes.
func (s *ResourceService) Suggest(q string, limit int) ([]scholarnexus.Resource, error) {
	if limit <= 0 {
		limit = 10
	}

	ids, err := s.index.Suggest(q, limit)
	if err != nil {
		return nil, err
	}

	return s.repository.Get(ids...)
}

func matches(resource scholarnexus.Resource, filter scholarnexus.ResourceFilter) bool {
	if len(filter.Types) > 0 && !containsType(filter.Types, resource.Type) {
		return false
	}

	if len(filter.AccessLevels) > 0 && !containsAccess(filter.AccessLevels, resource.Access) {
		return false
	}

	// A resource passes when it has at least one of the filtered categories.
	if len(filter.Categories) > 0 && !hasAnyCategory(resource.Category, filter.Categories) {
		return false
	}

	// The year bound is always applied.
	if resource.Year < filter.YearRange.Min || resource.Year > filter.YearRange.Max {
		return false
	}

	if filter.Q != "" && !matchesQuery(resource, filter.Q) {
		return false
	}

	return true
}

// matchesQuery reports whether q is a case-insensitive substring of the
// title, any author, any category, the abstract, the publisher or the
// journal.
func matchesQuery(resource scholarnexus.Resource, q string) bool {
	q = strings.ToLower(q)

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
	if resource.Abstract != "" && strings.Contains(strings.ToLower(resource.Abstract), q) {
		return true
	}
	if resource.Publisher != "" && strings.Contains(strings.ToLower(resource.Publisher), q) {
		return true
	}
	if resource.Journal != "" && strings.Contains(strings.ToLower(resource.Journal), q) {
		return true
	}
	return false
}

func containsType(a []scholarnexus.ResourceType, v scholarnexus.ResourceType) bool {
	for _, t := range a {
		if t == v {
			return true
		}
	}
	return false
}

func containsAccess(a []scholarnexus.AccessLevel, v scholarnexus.AccessLevel) bool {
	for _, l := range a {
		if l == v {
			return true
		}
	}
	return false
}

func containsString(a []string, v string) bool {
	for _, s := range a {
		if s == v {
			return true
		}
	}
	return false
}

func hasAnyCategory(categories, allowed []string) bool {
	for _, category := range categories {
		if containsString(allowed, category) {
			return true
		}
	}
	return false
}
