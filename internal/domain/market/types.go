// Package market implements the offer-matching and ranking engine for the
// shops directory: resolving a free-text item query against the catalogue,
// collecting and ranking shop offers, and aggregating the shop list view.
//
// Every function in this package is pure: inputs are never mutated, outputs
// are freshly constructed, and there is no I/O. The calling layer owns all
// mutable state (catalogue snapshot, overrides, user inputs) and re-runs the
// engine in full on every input change.
package market

import (
	"math"
	"strconv"
	"strings"
)

// Coordinate is an in-game position. Y is carried for display only and never
// enters distance math.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Usable reports whether the coordinate can be used for distance math:
// X and Z must both be finite.
func (c Coordinate) Usable() bool {
	return isFinite(c.X) && isFinite(c.Z)
}

// Item is one priced listing in a shop's catalogue. Price is the total for
// the listed Quantity. Measure is an optional unit label; "" and the sentinel
// "none" both mean no unit.
type Item struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity,omitempty"`
	Measure  string  `json:"measure,omitempty"`
}

// PackSize returns the effective quantity: absent or non-positive means 1.
func (it Item) PackSize() int {
	if it.Quantity <= 0 {
		return 1
	}
	return it.Quantity
}

// UnitPrice is the cross-shop comparison metric: total price per single unit.
func (it Item) UnitPrice() float64 {
	return it.Price / float64(it.PackSize())
}

// HasMeasure reports whether the item carries a real unit label.
func (it Item) HasMeasure() bool {
	return it.Measure != "" && it.Measure != "none"
}

// Shop is one catalogue entry. Name is the unique identifier used as the
// override map key. Coordinates may be absent. Item order is display order.
type Shop struct {
	Name        string      `json:"name"`
	Coordinates *Coordinate `json:"coordinates,omitempty"`
	Rating      float64     `json:"rating"`
	Items       []Item      `json:"items"`
}

// Override is a partial shop record saved by a shopkeeper. Nil fields fall
// back to the base shop; present fields replace it wholesale (shallow merge).
type Override struct {
	Coordinates *Coordinate `json:"coordinates,omitempty"`
	Rating      *float64    `json:"rating,omitempty"`
	Items       []Item      `json:"items,omitempty"`
}

// Offer is a derived, per-query tuple: one shop's listing of the active item
// annotated with unit price and optional distance. Never persisted.
type Offer struct {
	Shop      Shop
	Item      Item
	Quantity  int
	UnitPrice float64
	Distance  Distance
}

// Distance is an optional block distance. Known is false when either
// endpoint's coordinates were missing or non-numeric.
type Distance struct {
	Blocks int
	Known  bool
}

// Number is an optional numeric input parsed from a raw form value.
// The zero value means "not set".
type Number struct {
	Value float64
	Valid bool
}

// ParseNumber parses a raw user input leniently: empty, whitespace-only, or
// non-numeric input means the constraint is not set, never an error.
func ParseNumber(raw string) Number {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Number{}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !isFinite(v) {
		return Number{}
	}
	return Number{Value: v, Valid: true}
}

// Filters are the user-supplied query constraints. Unset fields do not
// constrain; they are never an error condition.
type Filters struct {
	UserX       Number
	UserZ       Number
	MaxDistance Number
	MinRating   Number
}

// HasPosition reports whether both user coordinate components are present.
func (f Filters) HasPosition() bool {
	return f.UserX.Valid && f.UserZ.Valid
}

// RankMode selects the offer ranking policy.
type RankMode string

const (
	// RankCheapest orders offers by ascending unit price (stable).
	RankCheapest RankMode = "cheapest"
	// RankClosest orders offers by ascending distance; unknown distances
	// sort last and tie-break on unit price.
	RankClosest RankMode = "closest"
)

// ParseRankMode maps a raw mode string to a RankMode, defaulting to cheapest.
func ParseRankMode(raw string) RankMode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "closest", "distance", "nearest":
		return RankClosest
	default:
		return RankCheapest
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
