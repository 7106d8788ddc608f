package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterFromQuery_Defaults(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{})

	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 0, filter.Offset)
	assert.True(t, filter.WithPagination)
	assert.Empty(t, filter.Search)
}

func TestParseFilterFromQuery_LimitCap(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{"limit": {"9999"}})
	assert.Equal(t, MaxLimit, filter.Limit)
}

func TestParseFilterFromQuery_PageToOffset(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{"limit": {"50"}, "page": {"3"}})

	assert.Equal(t, 50, filter.Limit)
	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 100, filter.Offset)
}

func TestParseFilterFromQuery_SortAndFilter(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{
		"sort[created_at]": {"DESC"},
		"sort[name]":       {"sideways"}, // недопустимое направление игнорируется
		"filter[status]":   {"Available"},
		"filter[category]": {"Measurement"},
		"search":           {"fluke"},
	})

	assert.Equal(t, map[string]string{"created_at": "desc"}, filter.Sort)
	assert.Equal(t, "Available", filter.Filter["status"])
	assert.Equal(t, "Measurement", filter.Filter["category"])
	assert.Equal(t, "fluke", filter.Search)
}
