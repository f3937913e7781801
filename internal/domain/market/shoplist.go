package market

import "sort"

// ShopEntry is one row of the aggregated shop list: the shop plus its
// distance-or-unknown to the user.
type ShopEntry struct {
	Shop     Shop
	Distance Distance
}

// ListShops produces the shop-grouped view. With an active item, a shop is
// included iff at least one of its items normalized-equals the active item.
// Without one, every shop is included when the search is empty, otherwise
// shops with at least one substring-matching item. The same rating and
// distance filters as the offer engine apply, with the same unknown-distance-
// passes policy.
//
// The list is sorted ascending by distance (unknown last, stable) only when
// both user coordinate components are present; otherwise catalogue order is
// preserved.
func ListShops(catalogue []Shop, activeItem, search string, f Filters) []ShopEntry {
	active := Normalize(activeItem)
	query := Normalize(search)

	var entries []ShopEntry
	for _, shop := range catalogue {
		if active != "" {
			if !sellsItem(shop, active) {
				continue
			}
		} else if query != "" && !anyItemMatches(shop, query) {
			continue
		}

		dist := shopDistance(shop, f)
		if f.MinRating.Valid && shop.Rating < f.MinRating.Value {
			continue
		}
		if f.MaxDistance.Valid && f.HasPosition() &&
			dist.Known && float64(dist.Blocks) > f.MaxDistance.Value {
			continue
		}
		entries = append(entries, ShopEntry{Shop: shop, Distance: dist})
	}

	if f.HasPosition() {
		sort.SliceStable(entries, func(i, j int) bool {
			a, b := entries[i], entries[j]
			if a.Distance.Known != b.Distance.Known {
				return a.Distance.Known
			}
			if !a.Distance.Known {
				return false
			}
			return a.Distance.Blocks < b.Distance.Blocks
		})
	}
	return entries
}

func sellsItem(shop Shop, normalizedName string) bool {
	for _, it := range shop.Items {
		if Normalize(it.Name) == normalizedName {
			return true
		}
	}
	return false
}

func anyItemMatches(shop Shop, normalizedQuery string) bool {
	for _, it := range shop.Items {
		if NameMatches(it.Name, normalizedQuery) {
			return true
		}
	}
	return false
}
