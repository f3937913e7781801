package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber_Lenient(t *testing.T) {
	assert.Equal(t, Number{Value: 42, Valid: true}, ParseNumber("42"))
	assert.Equal(t, Number{Value: -3.5, Valid: true}, ParseNumber(" -3.5 "))
	assert.False(t, ParseNumber("").Valid)
	assert.False(t, ParseNumber("   ").Valid)
	assert.False(t, ParseNumber("abc").Valid)
	assert.False(t, ParseNumber("12x").Valid)
	assert.False(t, ParseNumber("NaN").Valid)
	assert.False(t, ParseNumber("Inf").Valid)
}

func TestItem_PackSize(t *testing.T) {
	assert.Equal(t, 1, Item{Name: "Repeater", Price: 2}.PackSize())
	assert.Equal(t, 1, Item{Name: "Repeater", Price: 2, Quantity: 0}.PackSize())
	assert.Equal(t, 1, Item{Name: "Repeater", Price: 2, Quantity: -4}.PackSize())
	assert.Equal(t, 16, Item{Name: "Repeater", Price: 2, Quantity: 16}.PackSize())
}

func TestItem_UnitPrice(t *testing.T) {
	assert.Equal(t, 15.0, Item{Name: "Diamond Sword", Price: 30, Quantity: 2}.UnitPrice())
	// absent quantity acts as 1
	assert.Equal(t, 20.0, Item{Name: "Diamond Sword", Price: 20}.UnitPrice())
}

func TestItem_HasMeasure(t *testing.T) {
	assert.False(t, Item{}.HasMeasure())
	assert.False(t, Item{Measure: "none"}.HasMeasure())
	assert.True(t, Item{Measure: "ci"}.HasMeasure())
}

func TestParseRankMode(t *testing.T) {
	assert.Equal(t, RankCheapest, ParseRankMode(""))
	assert.Equal(t, RankCheapest, ParseRankMode("price"))
	assert.Equal(t, RankClosest, ParseRankMode("closest"))
	assert.Equal(t, RankClosest, ParseRankMode("Distance"))
	assert.Equal(t, RankClosest, ParseRankMode(" nearest "))
}

func TestFilters_HasPosition(t *testing.T) {
	assert.False(t, Filters{}.HasPosition())
	assert.False(t, Filters{UserX: ParseNumber("5")}.HasPosition())
	assert.True(t, Filters{UserX: ParseNumber("5"), UserZ: ParseNumber("-2")}.HasPosition())
}
