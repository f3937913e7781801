package market

// Resolve merges shopkeeper overrides into the base shop list, producing the
// effective catalogue every query runs against. For each base shop, override
// fields replace the base field-by-field; fields absent in the override fall
// back to the base record. Base-list order and length are preserved 1:1;
// inputs are not mutated.
func Resolve(base []Shop, overrides map[string]Override) []Shop {
	out := make([]Shop, len(base))
	for i, shop := range base {
		ov, ok := overrides[shop.Name]
		if !ok {
			out[i] = shop
			continue
		}
		merged := shop
		if ov.Coordinates != nil {
			c := *ov.Coordinates
			merged.Coordinates = &c
		}
		if ov.Rating != nil {
			merged.Rating = *ov.Rating
		}
		if ov.Items != nil {
			merged.Items = ov.Items
		}
		out[i] = merged
	}
	return out
}

// ItemNames returns the distinct item names across the catalogue in traversal
// order (shop-major, then item-major), deduplicated by normalized equality.
// The first-seen casing of each name is kept.
func ItemNames(catalogue []Shop) []string {
	seen := make(map[string]bool)
	var names []string
	for _, shop := range catalogue {
		for _, it := range shop.Items {
			key := Normalize(it.Name)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			names = append(names, it.Name)
		}
	}
	return names
}
