package market

import "strings"

// Normalize canonicalizes an item or query string for matching:
// leading/trailing whitespace trimmed, then lowercased.
//
// Two names denote the same item iff their normalized forms are equal.
// A name matches a query iff its normalized form contains the normalized
// query as a substring. An empty query would match everything under the
// substring rule, so callers must special-case it as "no query".
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SameName reports whether two names denote the same item.
func SameName(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// NameMatches reports whether name matches the query under the substring
// rule. The query must already be normalized and non-empty.
func NameMatches(name, normalizedQuery string) bool {
	return strings.Contains(Normalize(name), normalizedQuery)
}
