package scholarnexus

// ResourceType enumerates the kinds of academic resources held in the catalog.
type ResourceType string

const (
	ResourceTypePaper  ResourceType = "paper"
	ResourceTypeBook   ResourceType = "book"
	ResourceTypeVideo  ResourceType = "video"
	ResourceTypeCourse ResourceType = "course"
)

// AccessLevel is the visibility tier controlling which roles may view a resource.
type AccessLevel string

const (
	AccessOpen       AccessLevel = "open"
	AccessStudent    AccessLevel = "student"
	AccessFaculty    AccessLevel = "faculty"
	AccessRestricted AccessLevel = "restricted"
)

type Resource struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Authors []string     `json:"authors"`
	Type    ResourceType `json:"type"`
	Year    int          `json:"year"`

	Publisher string   `json:"publisher,omitempty"`
	Journal   string   `json:"journal,omitempty"`
	Category  []string `json:"category"`
	Abstract  string   `json:"abstract,omitempty"`

	Access AccessLevel `json:"access"`

	// CitationCount is 0 when unknown, which ranks last in citation sorts.
	CitationCount int `json:"citationCount,omitempty"`
}

type SortOrder string

const (
	SortRelevance SortOrder = "relevance"
	SortNewest    SortOrder = "newest"
	SortOldest    SortOrder = "oldest"
	SortCitations SortOrder = "citations"
)

// YearRange is an inclusive bound on the publication year. Unlike the other
// filters it is always applied: there is no empty value meaning "no
// restriction".
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ResourceFilter describes a catalog query. Empty Types, AccessLevels and
// Categories leave the corresponding dimension unrestricted. Categories
// match when the resource has at least one of the listed categories.
type ResourceFilter struct {
	Types        []ResourceType `json:"types"`
	AccessLevels []AccessLevel  `json:"accessLevels"`
	Categories   []string       `json:"categories"`
	YearRange    YearRange      `json:"yearRange"`
	Q            string         `json:"q"`
	SortBy       SortOrder      `json:"sortBy"`
}

type ResourceRepository interface {
	Get(...string) ([]Resource, error)
	List() ([]Resource, error)
	Insert(*Resource) error
}

type ResourceIndex interface {
	Index(*Resource) error
	Suggest(q string, limit int) ([]string, error)
}
