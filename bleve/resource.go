package bleve

import (
	"strings"

	"github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/search/query"

	scholarnexus "github.com/jayadityagandham/Scholar-Nexus"
)

// ResourceIndex answers partial-query suggestions over the catalog. The
// exact filtering semantics live in the service layer, the index only
// serves search-as-you-type.
type ResourceIndex struct {
	index bleve.Index
}

// Open opens the index at path, creating it if needed.
func (s *ResourceIndex) Open(path string) error {
	index, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		index, err = bleve.New(path, bleve.NewIndexMapping())
	}
	if err != nil {
		return err
	}

	s.index = index
	return nil
}

func (s *ResourceIndex) Close() error {
	if s.index == nil {
		return nil
	}

	return s.index.Close()
}

func (s *ResourceIndex) Index(resource *scholarnexus.Resource) error {
	data := map[string]interface{}{
		"title":      resource.Title,
		"authors":    resource.Authors,
		"categories": resource.Category,
	}

	return s.index.Index(resource.ID, data)
}

// Suggest returns the ids of the resources matching the partial query q,
// every word of q being a prefix of a word in the title, an author or a
// category.
func (s *ResourceIndex) Suggest(q string, limit int) ([]string, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return []string{}, nil
	}

	words := strings.Fields(q)
	qs := make([]query.Query, 0, len(words))
	for _, word := range words {
		qs = append(qs, orQ(
			prefixQ(word, "title"),
			prefixQ(word, "authors"),
			prefixQ(word, "categories"),
		))
	}

	searchRequest := bleve.NewSearchRequest(andQ(qs...))
	searchRequest.Size = limit

	searchResults, err := s.index.Search(searchRequest)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(searchResults.Hits))
	for i, hit := range searchResults.Hits {
		ids[i] = hit.ID
	}
	return ids, nil
}

func prefixQ(prefix, field string) query.Query {
	q := query.NewPrefixQuery(prefix)
	q.SetField(field)
	return q
}

func andQ(qs ...query.Query) query.Query {
	ands := make([]query.Query, 0, len(qs))
	for _, q := range qs {
		if q != nil {
			ands = append(ands, q)
		}
	}

	if len(ands) == 0 {
		return nil
	}
	return query.NewConjunctionQuery(ands)
}

func orQ(qs ...query.Query) query.Query {
	ors := make([]query.Query, 0, len(qs))
	for _, q := range qs {
		if q != nil {
			ors = append(ors, q)
		}
	}

	if len(ors) == 0 {
		return nil
	}
	return query.NewDisjunctionQuery(ors)
}
