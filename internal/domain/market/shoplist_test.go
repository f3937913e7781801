package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shopNames(entries []ShopEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Shop.Name)
	}
	return names
}

func TestListShops_EmptySearchIncludesAll(t *testing.T) {
	entries := ListShops(demoCatalogue(), "", "", Filters{})
	assert.Equal(t, []string{"Monument Bank", "Artificial Industries", "VEC Incorporated"},
		shopNames(entries))
}

func TestListShops_SubstringQueryFiltersShops(t *testing.T) {
	entries := ListShops(demoCatalogue(), "", "rep", Filters{})
	assert.Equal(t, []string{"Monument Bank", "Artificial Industries"}, shopNames(entries))
}

func TestListShops_ActiveItemUsesExactNormalizedEquality(t *testing.T) {
	// active item "Repeater" must not pull in shops that merely contain
	// "repeater" as a substring of another name
	cat := append(demoCatalogue(), Shop{
		Name:   "Knockoffs",
		Rating: 3,
		Items:  []Item{{Name: "Repeater Casing", Price: 1}},
	})

	entries := ListShops(cat, "Repeater", "rep", Filters{})
	assert.Equal(t, []string{"Monument Bank", "Artificial Industries"}, shopNames(entries))
}

func TestListShops_NoPositionPreservesCatalogueOrder(t *testing.T) {
	entries := ListShops(demoCatalogue(), "", "", Filters{})
	for _, e := range entries {
		assert.False(t, e.Distance.Known)
	}
	assert.Equal(t, []string{"Monument Bank", "Artificial Industries", "VEC Incorporated"},
		shopNames(entries))
}

func TestListShops_SortsByDistanceWithPosition(t *testing.T) {
	f := Filters{UserX: ParseNumber("200"), UserZ: ParseNumber("300")}
	entries := ListShops(demoCatalogue(), "", "", f)

	require.Len(t, entries, 3)
	assert.Equal(t, "Artificial Industries", entries[0].Shop.Name)
	assert.Equal(t, 0, entries[0].Distance.Blocks)
	assert.Equal(t, "Monument Bank", entries[1].Shop.Name)
	assert.Equal(t, "VEC Incorporated", entries[2].Shop.Name)
}

func TestListShops_UnknownDistanceSortsLast(t *testing.T) {
	cat := []Shop{
		{Name: "nowhere", Rating: 4, Items: []Item{{Name: "Redstone", Price: 1}}},
		{Name: "near", Coordinates: &Coordinate{X: 1, Y: 64, Z: 1}, Rating: 4,
			Items: []Item{{Name: "Redstone", Price: 1}}},
	}
	f := Filters{UserX: ParseNumber("0"), UserZ: ParseNumber("0")}

	entries := ListShops(cat, "", "", f)
	require.Len(t, entries, 2)
	assert.Equal(t, "near", entries[0].Shop.Name)
	assert.Equal(t, "nowhere", entries[1].Shop.Name)
}

func TestListShops_RatingAndDistanceFilters(t *testing.T) {
	f := Filters{
		UserX:       ParseNumber("123"),
		UserZ:       ParseNumber("467"),
		MaxDistance: ParseNumber("500"),
		MinRating:   ParseNumber("3"),
	}
	entries := ListShops(demoCatalogue(), "", "", f)

	// VEC is both too far and under-rated; the other two stay
	assert.Equal(t, []string{"Monument Bank", "Artificial Industries"}, shopNames(entries))
}

func TestListShops_UnknownDistancePassesMaxDistance(t *testing.T) {
	cat := []Shop{
		{Name: "nowhere", Rating: 4, Items: []Item{{Name: "Redstone", Price: 1}}},
	}
	f := Filters{
		UserX:       ParseNumber("0"),
		UserZ:       ParseNumber("0"),
		MaxDistance: ParseNumber("10"),
	}
	entries := ListShops(cat, "", "", f)
	assert.Equal(t, []string{"nowhere"}, shopNames(entries))
}

func TestListShops_ActiveItemWithFilters(t *testing.T) {
	f := Filters{MinRating: ParseNumber("4.2")}
	entries := ListShops(demoCatalogue(), "Repeater", "rep", f)
	assert.Equal(t, []string{"Monument Bank"}, shopNames(entries))
}

func TestListShops_NoMatchesYieldsEmptyList(t *testing.T) {
	entries := ListShops(demoCatalogue(), "Elytra", "Elytra", Filters{})
	assert.Empty(t, entries)
}
