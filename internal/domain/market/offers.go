package market

import "sort"

// maxOffers bounds the ranked offer list shown to the user.
const maxOffers = 5

// BestOffers produces the filtered, ranked, size-bounded offer list for the
// active item. An empty result is a value, not an error; callers distinguish
// "no item selected" from "nothing found under current filters" themselves.
//
// One offer is collected per (shop, item) pair whose normalized name equals
// the active item's. Distance is attached only when the shop coordinate is
// usable and both user coordinates are present.
//
// Filtering: MinRating always applies when set. MaxDistance applies only when
// both user coordinates are present and the offer's distance is known; an
// offer with unknown distance is never dropped by the distance bound. The
// asymmetry with the rating filter is deliberate.
func BestOffers(catalogue []Shop, activeItem string, f Filters, mode RankMode) []Offer {
	active := Normalize(activeItem)
	if active == "" {
		return nil
	}

	var offers []Offer
	for _, shop := range catalogue {
		for _, it := range shop.Items {
			if Normalize(it.Name) != active {
				continue
			}
			offers = append(offers, Offer{
				Shop:      shop,
				Item:      it,
				Quantity:  it.PackSize(),
				UnitPrice: it.UnitPrice(),
				Distance:  shopDistance(shop, f),
			})
		}
	}

	offers = filterOffers(offers, f)
	rankOffers(offers, mode)

	if len(offers) > maxOffers {
		offers = offers[:maxOffers]
	}
	return offers
}

func filterOffers(offers []Offer, f Filters) []Offer {
	kept := offers[:0:0]
	for _, o := range offers {
		if f.MinRating.Valid && o.Shop.Rating < f.MinRating.Value {
			continue
		}
		if f.MaxDistance.Valid && f.HasPosition() &&
			o.Distance.Known && float64(o.Distance.Blocks) > f.MaxDistance.Value {
			continue
		}
		kept = append(kept, o)
	}
	return kept
}

// rankOffers sorts in place. Both modes are stable so that equal keys keep
// catalogue traversal order.
func rankOffers(offers []Offer, mode RankMode) {
	switch mode {
	case RankClosest:
		sort.SliceStable(offers, func(i, j int) bool {
			a, b := offers[i], offers[j]
			if a.Distance.Known && b.Distance.Known {
				return a.Distance.Blocks < b.Distance.Blocks
			}
			if a.Distance.Known != b.Distance.Known {
				return a.Distance.Known
			}
			// Both unknown: fall back to unit price.
			return a.UnitPrice < b.UnitPrice
		})
	default:
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].UnitPrice < offers[j].UnitPrice
		})
	}
}
