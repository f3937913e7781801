package web

import "github.com/civmc-shops/shopdex/internal/domain/market"

// offerDTO is the wire form of one ranked offer. Distance is null when it
// could not be computed.
type offerDTO struct {
	Shop        string             `json:"shop"`
	Coordinates *market.Coordinate `json:"coordinates,omitempty"`
	Rating      float64            `json:"rating"`
	Item        string             `json:"item"`
	PackSize    int                `json:"pack_size"`
	Measure     string             `json:"measure,omitempty"`
	TotalPrice  float64            `json:"total_price"`
	UnitPrice   float64            `json:"unit_price"`
	Distance    *int               `json:"distance"`
}

// shopDTO is the wire form of one aggregated shop entry.
type shopDTO struct {
	Name        string             `json:"name"`
	Coordinates *market.Coordinate `json:"coordinates,omitempty"`
	Rating      float64            `json:"rating"`
	Items       []market.Item      `json:"items"`
	Distance    *int               `json:"distance"`
}

func offerDTOs(offers []market.Offer) []offerDTO {
	out := make([]offerDTO, 0, len(offers))
	for _, o := range offers {
		dto := offerDTO{
			Shop:        o.Shop.Name,
			Coordinates: o.Shop.Coordinates,
			Rating:      o.Shop.Rating,
			Item:        o.Item.Name,
			PackSize:    o.Quantity,
			TotalPrice:  o.Item.Price,
			UnitPrice:   o.UnitPrice,
			Distance:    distancePtr(o.Distance),
		}
		if o.Item.HasMeasure() {
			dto.Measure = o.Item.Measure
		}
		out = append(out, dto)
	}
	return out
}

func shopDTOs(entries []market.ShopEntry) []shopDTO {
	out := make([]shopDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, shopDTO{
			Name:        e.Shop.Name,
			Coordinates: e.Shop.Coordinates,
			Rating:      e.Shop.Rating,
			Items:       e.Shop.Items,
			Distance:    distancePtr(e.Distance),
		})
	}
	return out
}

func distancePtr(d market.Distance) *int {
	if !d.Known {
		return nil
	}
	blocks := d.Blocks
	return &blocks
}
