package catalog

import (
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id, title string, tags ...domain.Collection) domain.Product {
	return domain.Product{ID: id, Title: title, Collections: tags}
}

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

var sample = []domain.Product{
	product("1", "Gaming Mouse", domain.CollectionFlash),
	product("2", "Sony Headphones", domain.CollectionBest),
	product("3", "iPhone"),
	product("4", "Smart Watch", domain.CollectionFlash, domain.CollectionExplore),
	product("5", "Laptop Stand"),
	product("6", "Camera", domain.CollectionBest, domain.CollectionFlash),
}

func TestFilter_EmptyCriteriaReturnsEverything(t *testing.T) {
	got := Filter(sample, Criteria{Selector: All()})
	assert.Equal(t, sample, got)
}

func TestFilter_ByTagKeepsOrder(t *testing.T) {
	assert.Equal(t, []string{"1", "4", "6"}, ids(Filter(sample, Criteria{Selector: Tagged(domain.CollectionFlash)})))
	assert.Equal(t, []string{"2", "6"}, ids(Filter(sample, Criteria{Selector: Tagged(domain.CollectionBest)})))
	assert.Equal(t, []string{"4"}, ids(Filter(sample, Criteria{Selector: Tagged(domain.CollectionExplore)})))
}

func TestFilter_Unassigned(t *testing.T) {
	assert.Equal(t, []string{"3", "5"}, ids(Filter(sample, Criteria{Selector: Unassigned()})))
}

func TestFilter_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	products := []domain.Product{
		product("a", "Sony Headphones", domain.CollectionBest),
		product("b", "iPhone"),
	}

	got := Filter(products, Criteria{SearchTerm: "phone", Selector: All()})
	assert.Equal(t, []string{"a", "b"}, ids(got))

	got = Filter(products, Criteria{SearchTerm: "  IPHONE ", Selector: All()})
	assert.Equal(t, []string{"b"}, ids(got))
}

func TestFilter_SearchAndSelectorCombine(t *testing.T) {
	got := Filter(sample, Criteria{SearchTerm: "a", Selector: Tagged(domain.CollectionFlash)})
	assert.Equal(t, []string{"1", "4", "6"}, ids(got))

	got = Filter(sample, Criteria{SearchTerm: "watch", Selector: Tagged(domain.CollectionBest)})
	assert.Empty(t, got)
}

func TestFilter_IsIdempotentAndDoesNotAlias(t *testing.T) {
	criteria := Criteria{SearchTerm: "s", Selector: All()}

	first := Filter(sample, criteria)
	second := Filter(sample, criteria)
	assert.Equal(t, first, second)

	first[0].Title = "mutated"
	assert.NotEqual(t, "mutated", sample[0].Title)
}

func TestParseSelector(t *testing.T) {
	tests := []struct {
		in   string
		want Selector
	}{
		{in: "", want: All()},
		{in: "all", want: All()},
		{in: "unassigned", want: Unassigned()},
		{in: "uncategorized", want: Unassigned()},
		{in: "Flash", want: Tagged(domain.CollectionFlash)},
		{in: "best", want: Tagged(domain.CollectionBest)},
		{in: "explore", want: Tagged(domain.CollectionExplore)},
	}

	for _, tt := range tests {
		got, err := ParseSelector(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseSelector("weekly")
	assert.ErrorIs(t, err, e.ErrUnknownSelector)
}

func TestSelector_String(t *testing.T) {
	assert.Equal(t, "all", All().String())
	assert.Equal(t, "unassigned", Unassigned().String())
	assert.Equal(t, "best", Tagged(domain.CollectionBest).String())
}

func TestFilterCategories(t *testing.T) {
	categories := []domain.Category{{ID: "1", Name: "Phones"}, {ID: "2", Name: "Cameras"}, {ID: "3", Name: "Headphones"}}

	got := FilterCategories(categories, "PHONE")
	assert.Equal(t, []domain.Category{categories[0], categories[2]}, got)
	assert.Equal(t, categories, FilterCategories(categories, ""))
}
