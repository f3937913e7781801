package market

import "math"

// BlockDistance computes the Euclidean distance between two 2-D positions,
// rounded to the nearest whole block. The result is unavailable (Known=false),
// never an error, when any input is NaN or infinite.
func BlockDistance(x1, z1, x2, z2 float64) Distance {
	if !isFinite(x1) || !isFinite(z1) || !isFinite(x2) || !isFinite(z2) {
		return Distance{}
	}
	d := math.Sqrt((x1-x2)*(x1-x2) + (z1-z2)*(z1-z2))
	return Distance{Blocks: int(math.Round(d)), Known: true}
}

// shopDistance computes the user-to-shop distance. Unavailable unless the
// shop has a usable coordinate and both user components are present.
func shopDistance(shop Shop, f Filters) Distance {
	if shop.Coordinates == nil || !shop.Coordinates.Usable() || !f.HasPosition() {
		return Distance{}
	}
	return BlockDistance(f.UserX.Value, f.UserZ.Value, shop.Coordinates.X, shop.Coordinates.Z)
}
