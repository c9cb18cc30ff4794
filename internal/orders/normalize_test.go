package orders

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestStringListAcceptsArrayAndDelimitedString(t *testing.T) {
	var fromArray StringList
	require.NoError(t, json.Unmarshal([]byte(`["Red","Blue"]`), &fromArray))
	require.Equal(t, StringList{"Red", "Blue"}, fromArray)

	var fromString StringList
	require.NoError(t, json.Unmarshal([]byte(`"Red, Blue , ,Green"`), &fromString))
	require.Equal(t, StringList{"Red", "Blue", "Green"}, fromString)

	var blank StringList
	require.NoError(t, json.Unmarshal([]byte(`" , "`), &blank))
	require.Empty(t, blank)
}

func TestStringListRoundTripIsStable(t *testing.T) {
	var first StringList
	require.NoError(t, json.Unmarshal([]byte(`"S,M,L"`), &first))

	encoded, err := json.Marshal(first)
	require.NoError(t, err)

	var second StringList
	require.NoError(t, json.Unmarshal(encoded, &second))
	require.Equal(t, first, second)
}

func TestBreakdownColorListUpgradesLegacyNames(t *testing.T) {
	var legacy BreakdownColorList
	require.NoError(t, json.Unmarshal([]byte(`["Red","Blue"]`), &legacy))
	require.Equal(t, BreakdownColorList{
		{Name: "Red", UnitPrice: decimal.Zero},
		{Name: "Blue", UnitPrice: decimal.Zero},
	}, legacy)

	// Re-normalizing the canonical output is a no-op.
	encoded, err := json.Marshal(legacy)
	require.NoError(t, err)
	var again BreakdownColorList
	require.NoError(t, json.Unmarshal(encoded, &again))
	require.Equal(t, legacy, again)
}

func TestBreakdownColorListKeepsCanonicalRecords(t *testing.T) {
	var colors BreakdownColorList
	require.NoError(t, json.Unmarshal([]byte(`[{"name":"Black","unit_price":295}]`), &colors))
	require.Len(t, colors, 1)
	require.Equal(t, "Black", colors[0].Name)
	require.True(t, colors[0].UnitPrice.Equal(decimal.NewFromInt(295)))

	var empty BreakdownColorList
	require.NoError(t, json.Unmarshal([]byte(`[]`), &empty))
	require.Empty(t, empty)
}

func TestNormalizeLinesDerivesFromBreakdown(t *testing.T) {
	breakdown := SizeColourBreakdown{
		Sizes:  []string{"S", "M"},
		Colors: BreakdownColorList{{Name: "Black", UnitPrice: decimal.NewFromInt(295)}},
	}
	lines := normalizeLines([]OrderLine{{StyleCode: "NL-01"}}, breakdown)
	require.Equal(t, StringList{"Black"}, lines[0].Colors)
	require.Equal(t, StringList{"S", "M"}, lines[0].SizeRange)
	require.Equal(t, "pcs", lines[0].Unit)
}

func TestNormalizeLinesNeverOverwritesExplicitValues(t *testing.T) {
	breakdown := SizeColourBreakdown{
		Sizes:  []string{"S", "M"},
		Colors: BreakdownColorList{{Name: "Black"}},
	}
	lines := normalizeLines([]OrderLine{{
		Colors:    StringList{"White"},
		SizeRange: StringList{"XL"},
		Unit:      "dozen",
	}}, breakdown)
	require.Equal(t, StringList{"White"}, lines[0].Colors)
	require.Equal(t, StringList{"XL"}, lines[0].SizeRange)
	require.Equal(t, "dozen", lines[0].Unit)
}

func TestNormalizeLinesIdempotent(t *testing.T) {
	breakdown := SizeColourBreakdown{
		Sizes:  []string{"S"},
		Colors: BreakdownColorList{{Name: "Navy"}},
	}
	once := normalizeLines([]OrderLine{{StyleCode: "NL-02"}}, breakdown)
	twice := normalizeLines(once, breakdown)
	require.Equal(t, once, twice)
}
