package market

// demoCatalogue returns the stock three-shop catalogue used across the
// engine tests. Fresh per call so tests can check inputs stay unmutated.
func demoCatalogue() []Shop {
	return []Shop{
		{
			Name:        "Monument Bank",
			Coordinates: &Coordinate{X: 123, Y: 65, Z: 467},
			Rating:      4.5,
			Items: []Item{
				{Name: "Diamond Sword", Price: 20},
				{Name: "Enchanted Book", Price: 8},
				{Name: "Repeater", Price: 2},
			},
		},
		{
			Name:        "Artificial Industries",
			Coordinates: &Coordinate{X: 200, Y: 70, Z: 300},
			Rating:      4.0,
			Items: []Item{
				{Name: "Redstone", Price: 1},
				{Name: "Repeater", Price: 5},
				{Name: "Piston", Price: 2},
			},
		},
		{
			Name:        "VEC Incorporated",
			Coordinates: &Coordinate{X: 2020, Y: 74, Z: -3040},
			Rating:      2.5,
			Items: []Item{
				{Name: "Blaze Rod", Price: 12.5},
				{Name: "Nether Wart", Price: 7},
			},
		},
	}
}

func ratingPtr(v float64) *float64 { return &v }
