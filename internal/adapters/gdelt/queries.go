package gdelt

import (
	"net/url"
	"strconv"

	"github.com/daybreakbrief/news-bot/internal/adapters/config"
)

// QueryVector is one independently-issued query expression targeting a
// disjoint topical facet. Immutable once constructed; declaration order
// decides deduplication priority downstream.
type QueryVector struct {
	Name  string
	Query string
}

// StaticParams are the request parameters shared by every vector
type StaticParams struct {
	MaxRecords int
	Sort       string
	Mode       string
	Format     string
}

// DefaultParams returns the DOC 2.0 ArtList request parameters
func DefaultParams(maxRecords int) StaticParams {
	return StaticParams{
		MaxRecords: maxRecords,
		Sort:       "DateDesc",
		Mode:       "ArtList",
		Format:     "json",
	}
}

// Vectors builds the ordered vector set from the configured facets.
// Splitting keeps each single query within GDELT's complexity limits.
func Vectors(cfg *config.GDELTConfig) []QueryVector {
	return []QueryVector{
		{Name: "assets", Query: cfg.AssetsQuery},
		{Name: "regulatory", Query: cfg.RegulatoryQuery},
		{Name: "geopolitics", Query: cfg.GeopoliticsQuery},
	}
}

// Values encodes one vector plus the static parameters as a query string
func (p StaticParams) Values(v QueryVector) url.Values {
	values := url.Values{}
	values.Set("query", v.Query)
	values.Set("mode", p.Mode)
	values.Set("format", p.Format)
	values.Set("maxrecords", strconv.Itoa(p.MaxRecords))
	values.Set("sort", p.Sort)
	return values
}
