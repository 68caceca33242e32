package services

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scholarnexus "github.com/jayadityagandham/Scholar-Nexus"
	"github.com/jayadityagandham/Scholar-Nexus/errors"
	"github.com/jayadityagandham/Scholar-Nexus/inmem"
	"github.com/jayadityagandham/Scholar-Nexus/log"
	"github.com/jayadityagandham/Scholar-Nexus/notify"
	"github.com/jayadityagandham/Scholar-Nexus/seed"
)

// allYears leaves the mandatory year bound effectively unrestricted.
var allYears = scholarnexus.YearRange{Min: 0, Max: 9999}

func createResourceService(t *testing.T) (*ResourceService, *notify.InMemNotifier) {
	notifier := &notify.InMemNotifier{}
	service := NewResourceService(inmem.NewResourceRepository(), inmem.NewResourceIndex(), notifier, log.New("test"))

	for _, resource := range seed.Resources() {
		_, err := service.Create(resource)
		require.NoError(t, err)
	}
	return service, notifier
}

func titles(resources []scholarnexus.Resource) []string {
	ts := make([]string, len(resources))
	for i, resource := range resources {
		ts[i] = resource.Title
	}
	return ts
}

func TestResourceService_Search_Filters(t *testing.T) {
	service, _ := createResourceService(t)

	tts := map[string]struct {
		filter scholarnexus.ResourceFilter
		titles []string
	}{
		"no restriction keeps catalog order": {
			filter: scholarnexus.ResourceFilter{YearRange: allYears},
			titles: []string{
				"Machine Learning: A Probabilistic Perspective",
				"Attention Is All You Need",
				"Introduction to Algorithms",
				"Deep Learning",
				"CS50: Introduction to Computer Science",
			},
		},
		"by type": {
			filter: scholarnexus.ResourceFilter{
				Types:     []scholarnexus.ResourceType{scholarnexus.ResourceTypeBook},
				YearRange: allYears,
			},
			titles: []string{
				"Machine Learning: A Probabilistic Perspective",
				"Introduction to Algorithms",
				"Deep Learning",
			},
		},
		"by access level": {
			filter: scholarnexus.ResourceFilter{
				AccessLevels: []scholarnexus.AccessLevel{scholarnexus.AccessOpen},
				YearRange:    allYears,
			},
			titles: []string{
				"Attention Is All You Need",
				"Deep Learning",
				"CS50: Introduction to Computer Science",
			},
		},
		"categories match any": {
			filter: scholarnexus.ResourceFilter{
				Categories: []string{"Deep Learning", "Algorithms"},
				YearRange:  allYears,
			},
			titles: []string{
				"Attention Is All You Need",
				"Introduction to Algorithms",
				"Deep Learning",
			},
		},
		"year range is always applied": {
			filter: scholarnexus.ResourceFilter{YearRange: scholarnexus.YearRange{Min: 2009, Max: 2009}},
			titles: []string{"Introduction to Algorithms"},
		},
		"empty year intersection": {
			filter: scholarnexus.ResourceFilter{YearRange: scholarnexus.YearRange{Min: 1990, Max: 1995}},
			titles: []string{},
		},
		"query matches publisher": {
			filter: scholarnexus.ResourceFilter{Q: "mit press", YearRange: allYears},
			titles: []string{
				"Machine Learning: A Probabilistic Perspective",
				"Introduction to Algorithms",
				"Deep Learning",
			},
		},
		"query matches author": {
			filter: scholarnexus.ResourceFilter{Q: "cormen", YearRange: allYears},
			titles: []string{"Introduction to Algorithms"},
		},
		"query matches journal": {
			filter: scholarnexus.ResourceFilter{Q: "neural information", YearRange: allYears},
			titles: []string{"Attention Is All You Need"},
		},
		"predicates combine by and": {
			filter: scholarnexus.ResourceFilter{
				Types:        []scholarnexus.ResourceType{scholarnexus.ResourceTypeBook},
				AccessLevels: []scholarnexus.AccessLevel{scholarnexus.AccessOpen},
				YearRange:    allYears,
			},
			titles: []string{"Deep Learning"},
		},
	}

	for name, tt := range tts {
		t.Run(name, func(t *testing.T) {
			resources, err := service.Search(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.titles, titles(resources))
		})
	}
}

func TestResourceService_Search_Sort(t *testing.T) {
	service, _ := createResourceService(t)

	tts := map[string]struct {
		sortBy scholarnexus.SortOrder
		titles []string
	}{
		"citations, missing count last": {
			sortBy: scholarnexus.SortCitations,
			titles: []string{
				"Introduction to Algorithms",
				"Attention Is All You Need",
				"Deep Learning",
				"Machine Learning: A Probabilistic Perspective",
				"CS50: Introduction to Computer Science",
			},
		},
		"newest": {
			sortBy: scholarnexus.SortNewest,
			titles: []string{
				"CS50: Introduction to Computer Science",
				"Attention Is All You Need",
				"Deep Learning",
				"Machine Learning: A Probabilistic Perspective",
				"Introduction to Algorithms",
			},
		},
		"oldest": {
			sortBy: scholarnexus.SortOldest,
			titles: []string{
				"Introduction to Algorithms",
				"Machine Learning: A Probabilistic Perspective",
				"Deep Learning",
				"Attention Is All You Need",
				"CS50: Introduction to Computer Science",
			},
		},
		"relevance keeps insertion order": {
			sortBy: scholarnexus.SortRelevance,
			titles: []string{
				"Machine Learning: A Probabilistic Perspective",
				"Attention Is All You Need",
				"Introduction to Algorithms",
				"Deep Learning",
				"CS50: Introduction to Computer Science",
			},
		},
	}

	for name, tt := range tts {
		t.Run(name, func(t *testing.T) {
			resources, err := service.Search(scholarnexus.ResourceFilter{YearRange: allYears, SortBy: tt.sortBy})
			require.NoError(t, err)
			assert.Equal(t, tt.titles, titles(resources))
		})
	}
}

func TestResourceService_Search_DoesNotMutateCatalog(t *testing.T) {
	service, _ := createResourceService(t)

	_, err := service.Search(scholarnexus.ResourceFilter{YearRange: allYears, SortBy: scholarnexus.SortCitations})
	require.NoError(t, err)

	// A sorted search must not reorder the underlying catalog.
	resources, err := service.Search(scholarnexus.ResourceFilter{YearRange: allYears})
	require.NoError(t, err)
	assert.Equal(t, "Machine Learning: A Probabilistic Perspective", resources[0].Title)
	assert.Equal(t, "CS50: Introduction to Computer Science", resources[4].Title)
}

func TestResourceService_Featured(t *testing.T) {
	service, _ := createResourceService(t)

	resources, err := service.Featured(3)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Introduction to Algorithms",
		"Attention Is All You Need",
		"Deep Learning",
	}, titles(resources))

	resources, err = service.Featured(0)
	require.NoError(t, err)
	assert.Empty(t, resources)

	resources, err = service.Featured(50)
	require.NoError(t, err)
	assert.Len(t, resources, 5)
}

func TestResourceService_Create(t *testing.T) {
	service, notifier := createResourceService(t)

	resource := scholarnexus.Resource{
		Title:         "The Art of Computer Programming",
		Authors:       []string{"Donald E. Knuth"},
		Type:          scholarnexus.ResourceTypeBook,
		Year:          1968,
		Publisher:     "Addison-Wesley",
		Category:      []string{"Computer Science", "Algorithms"},
		Access:        scholarnexus.AccessStudent,
		CitationCount: 12001,
	}

	created, err := service.Create(resource)
	require.NoError(t, err)
	assert.Equal(t, "6", created.ID)

	expected := resource
	expected.ID = created.ID
	assert.Equal(t, expected, created)

	// The new resource is retrievable and the prior catalog is untouched.
	retrieved, err := service.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, retrieved)

	resources, err := service.Search(scholarnexus.ResourceFilter{YearRange: allYears})
	require.NoError(t, err)
	require.Len(t, resources, 6)
	assert.Equal(t, titles(seed.Resources()), titles(resources[:5]))

	// One notification per creation: 5 seeds + this one.
	notifications := notifier.Notifications()
	require.Len(t, notifications, 6)
	assert.Equal(t, "resource.created", notifications[5].Event)
}

// failingIndex refuses every indexing call.
type failingIndex struct{}

func (failingIndex) Index(*scholarnexus.Resource) error { return fmt.Errorf("index down") }

func (failingIndex) Suggest(string, int) ([]string, error) { return nil, fmt.Errorf("index down") }

func TestResourceService_Create_IndexFailure(t *testing.T) {
	notifier := &notify.InMemNotifier{}
	service := NewResourceService(inmem.NewResourceRepository(), failingIndex{}, notifier, log.New("test"))

	created, err := service.Create(scholarnexus.Resource{
		Title: "Clean Code",
		Type:  scholarnexus.ResourceTypeBook,
		Year:  2008,
	})
	require.NoError(t, err)
	assert.Equal(t, "1", created.ID)

	// The catalog holds the resource and the creation was signalled even
	// though indexing failed: the index is rebuilt separately.
	retrieved, err := service.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, retrieved)

	notifications := notifier.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, "resource.created", notifications[0].Event)
}

func TestResourceService_Create_IDAlreadySet(t *testing.T) {
	service, _ := createResourceService(t)

	_, err := service.Create(scholarnexus.Resource{ID: "12", Title: "nope"})
	require.Error(t, err)
	errors.AssertCode(t, err, http.StatusBadRequest)
}

func TestResourceService_Get_NotFound(t *testing.T) {
	service, _ := createResourceService(t)

	_, err := service.Get("42")
	require.Error(t, err)
	errors.AssertCode(t, err, http.StatusNotFound)
}

func TestResourceService_Suggest(t *testing.T) {
	service, _ := createResourceService(t)

	resources, err := service.Suggest("algorithm", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Introduction to Algorithms"}, titles(resources))

	resources, err = service.Suggest("", 10)
	require.NoError(t, err)
	assert.Empty(t, resources)
}
