package market

// ResolutionState is the outcome of matching a free-text query against the
// catalogue's item names.
type ResolutionState string

const (
	// StateIdle means the search text is empty: no query, no active item.
	StateIdle ResolutionState = "idle"
	// StateNoMatch means the query matched no item name.
	StateNoMatch ResolutionState = "no_match"
	// StateAmbiguous means several distinct names match and no explicit
	// selection has been made; the caller must disambiguate.
	StateAmbiguous ResolutionState = "ambiguous"
	// StateResolved means a single active item is established, either
	// automatically (exactly one match) or by explicit selection.
	StateResolved ResolutionState = "resolved"
)

// Resolution is the result of ResolveItem. ActiveItem is non-empty only in
// StateResolved. Matches holds every distinct matching name in catalogue
// traversal order, regardless of state, so callers can render a
// disambiguation list.
type Resolution struct {
	State      ResolutionState
	ActiveItem string
	Matches    []string
}

// Active reports whether a single item is established as the query target.
func (r Resolution) Active() bool {
	return r.State == StateResolved
}

// ResolveItem turns a raw search text plus an optional explicit selection
// into a Resolution against the effective catalogue.
//
// An empty (or whitespace-only) search yields StateIdle regardless of any
// selection: a selection only exists to resolve a prior ambiguity, and the
// stateful caller discards it whenever the search text changes. A non-empty
// selection otherwise wins outright, however many names currently match.
// With no selection, exactly one matching name auto-resolves, several are
// ambiguous, and zero is a plain no-match (not an error).
func ResolveItem(catalogue []Shop, search, selected string) Resolution {
	query := Normalize(search)
	if query == "" {
		return Resolution{State: StateIdle}
	}

	seen := make(map[string]bool)
	var matches []string
	for _, shop := range catalogue {
		for _, it := range shop.Items {
			if !NameMatches(it.Name, query) {
				continue
			}
			key := Normalize(it.Name)
			if seen[key] {
				continue
			}
			seen[key] = true
			matches = append(matches, it.Name)
		}
	}

	if selected != "" {
		return Resolution{State: StateResolved, ActiveItem: selected, Matches: matches}
	}
	switch len(matches) {
	case 0:
		return Resolution{State: StateNoMatch}
	case 1:
		return Resolution{State: StateResolved, ActiveItem: matches[0], Matches: matches}
	default:
		return Resolution{State: StateAmbiguous, Matches: matches}
	}
}
