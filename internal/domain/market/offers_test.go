package market

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swordShops: A survives the rating filter, B is cheaper per unit outright.
func swordShops() []Shop {
	return []Shop{
		{
			Name:        "A",
			Coordinates: &Coordinate{X: 0, Y: 64, Z: 0},
			Rating:      4.5,
			Items:       []Item{{Name: "Diamond Sword", Price: 20, Quantity: 1}},
		},
		{
			Name:        "B",
			Coordinates: &Coordinate{X: 10, Y: 64, Z: 0},
			Rating:      2.0,
			Items:       []Item{{Name: "Diamond Sword", Price: 30, Quantity: 2}},
		},
	}
}

func TestBestOffers_MinRatingBeatsCheaperUnitPrice(t *testing.T) {
	offers := BestOffers(swordShops(), "Diamond Sword",
		Filters{MinRating: ParseNumber("3")}, RankCheapest)

	require.Len(t, offers, 1)
	assert.Equal(t, "A", offers[0].Shop.Name)
	assert.Equal(t, 20.0, offers[0].UnitPrice)
}

func TestBestOffers_CheapestRanksByUnitPrice(t *testing.T) {
	offers := BestOffers(swordShops(), "Diamond Sword", Filters{}, RankCheapest)

	require.Len(t, offers, 2)
	// B's unit price is 30/2 = 15, ahead of A's 20
	assert.Equal(t, "B", offers[0].Shop.Name)
	assert.Equal(t, 15.0, offers[0].UnitPrice)
	assert.Equal(t, "A", offers[1].Shop.Name)
}

func TestBestOffers_QuantityDefaultsToOne(t *testing.T) {
	cat := []Shop{{Name: "A", Rating: 5, Items: []Item{{Name: "Redstone", Price: 8, Quantity: 0}}}}
	offers := BestOffers(cat, "Redstone", Filters{}, RankCheapest)

	require.Len(t, offers, 1)
	assert.Equal(t, 1, offers[0].Quantity)
	assert.Equal(t, 8.0, offers[0].UnitPrice)
}

func TestBestOffers_TruncatesToFive(t *testing.T) {
	var cat []Shop
	for i := 0; i < 8; i++ {
		cat = append(cat, Shop{
			Name:   fmt.Sprintf("shop-%d", i),
			Rating: 4,
			Items:  []Item{{Name: "Redstone", Price: float64(i + 1)}},
		})
	}

	offers := BestOffers(cat, "Redstone", Filters{}, RankCheapest)
	require.Len(t, offers, 5)
	assert.Equal(t, 1.0, offers[0].UnitPrice)
	assert.Equal(t, 5.0, offers[4].UnitPrice)
}

func TestBestOffers_EmptyForUnknownItem(t *testing.T) {
	assert.Empty(t, BestOffers(demoCatalogue(), "Elytra", Filters{}, RankCheapest))
}

func TestBestOffers_ModeChangesOrderNotSet(t *testing.T) {
	f := Filters{
		UserX:     ParseNumber("150"),
		UserZ:     ParseNumber("400"),
		MinRating: ParseNumber("3"),
	}
	cheapest := BestOffers(demoCatalogue(), "Repeater", f, RankCheapest)
	closest := BestOffers(demoCatalogue(), "Repeater", f, RankClosest)

	names := func(offers []Offer) map[string]bool {
		set := make(map[string]bool)
		for _, o := range offers {
			set[o.Shop.Name] = true
		}
		return set
	}
	assert.Equal(t, names(cheapest), names(closest))
}

func TestBestOffers_ClosestRanksByDistance(t *testing.T) {
	f := Filters{UserX: ParseNumber("123"), UserZ: ParseNumber("467")}
	offers := BestOffers(demoCatalogue(), "Repeater", f, RankClosest)

	require.Len(t, offers, 2)
	assert.Equal(t, "Monument Bank", offers[0].Shop.Name)
	assert.Equal(t, 0, offers[0].Distance.Blocks)
	assert.Equal(t, "Artificial Industries", offers[1].Shop.Name)
}

func TestBestOffers_UnknownDistancePassesMaxDistanceFilter(t *testing.T) {
	cat := []Shop{
		{Name: "near", Coordinates: &Coordinate{X: 0, Y: 64, Z: 0}, Rating: 4,
			Items: []Item{{Name: "Redstone", Price: 5}}},
		{Name: "far", Coordinates: &Coordinate{X: 5000, Y: 64, Z: 5000}, Rating: 4,
			Items: []Item{{Name: "Redstone", Price: 1}}},
		{Name: "nowhere", Rating: 4,
			Items: []Item{{Name: "Redstone", Price: 3}}},
	}
	f := Filters{
		UserX:       ParseNumber("0"),
		UserZ:       ParseNumber("0"),
		MaxDistance: ParseNumber("100"),
	}

	offers := BestOffers(cat, "Redstone", f, RankClosest)

	// "far" exceeds the bound; "nowhere" has no coordinates and is kept
	require.Len(t, offers, 2)
	assert.Equal(t, "near", offers[0].Shop.Name)
	assert.Equal(t, "nowhere", offers[1].Shop.Name)
	assert.False(t, offers[1].Distance.Known)
}

func TestBestOffers_UnknownDistanceKeptByRatingFilterOnly(t *testing.T) {
	cat := []Shop{
		{Name: "nowhere", Rating: 1, Items: []Item{{Name: "Redstone", Price: 3}}},
	}
	f := Filters{
		UserX:       ParseNumber("0"),
		UserZ:       ParseNumber("0"),
		MaxDistance: ParseNumber("100"),
		MinRating:   ParseNumber("2"),
	}
	assert.Empty(t, BestOffers(cat, "Redstone", f, RankCheapest))
}

func TestBestOffers_BlankCoordsClosestFallsBackToUnitPrice(t *testing.T) {
	// No user position: every distance is unknown, so closest mode
	// degenerates to the unit-price tie-break.
	offers := BestOffers(demoCatalogue(), "Repeater", Filters{}, RankClosest)

	require.Len(t, offers, 2)
	assert.False(t, offers[0].Distance.Known)
	assert.False(t, offers[1].Distance.Known)
	assert.Equal(t, "Monument Bank", offers[0].Shop.Name) // unit price 2 before 5
}

func TestBestOffers_MaxDistanceIgnoredWithoutUserPosition(t *testing.T) {
	f := Filters{MaxDistance: ParseNumber("1")}
	offers := BestOffers(demoCatalogue(), "Repeater", f, RankCheapest)
	assert.Len(t, offers, 2)
}

func TestBestOffers_CheapestTiesKeepCatalogueOrder(t *testing.T) {
	cat := []Shop{
		{Name: "first", Rating: 4, Items: []Item{{Name: "Redstone", Price: 2}}},
		{Name: "second", Rating: 4, Items: []Item{{Name: "Redstone", Price: 2}}},
	}
	offers := BestOffers(cat, "Redstone", Filters{}, RankCheapest)

	require.Len(t, offers, 2)
	assert.Equal(t, "first", offers[0].Shop.Name)
	assert.Equal(t, "second", offers[1].Shop.Name)
}

func TestBestOffers_MatchesNameByNormalizedEquality(t *testing.T) {
	cat := []Shop{
		{Name: "A", Rating: 4, Items: []Item{{Name: "  REPEATER ", Price: 2}}},
	}
	offers := BestOffers(cat, "Repeater", Filters{}, RankCheapest)
	assert.Len(t, offers, 1)
}
