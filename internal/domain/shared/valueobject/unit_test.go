package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input   string
		want    Unit
		wantErr bool
	}{
		{"g", UnitGram, false},
		{"kg", UnitKilogram, false},
		{"oz", UnitOunce, false},
		{"lbs", UnitPound, false},
		{"ml", UnitMillilit, false},
		{"L", UnitLitre, false},
		{"l", UnitLitre, false}, // only unit matched case-insensitively
		{"cups", UnitCup, false},
		{"units", UnitPiece, false},
		{"dozen", UnitDozen, false},
		{"trays", UnitTray, false},
		{" kg ", UnitKilogram, false},
		{"KG", "", true},
		{"grams", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUnit(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnit_IsValid(t *testing.T) {
	for _, u := range AllUnits {
		assert.True(t, u.IsValid(), "unit %q should be valid", u)
	}
	assert.False(t, Unit("bushels").IsValid())
	assert.False(t, Unit("").IsValid())
}

func TestUnit_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(UnitDozen)
	require.NoError(t, err)
	assert.Equal(t, `"dozen"`, string(data))

	var u Unit
	require.NoError(t, json.Unmarshal([]byte(`"kg"`), &u))
	assert.Equal(t, UnitKilogram, u)

	assert.Error(t, json.Unmarshal([]byte(`"furlongs"`), &u))
}

func TestUnit_Scan(t *testing.T) {
	var u Unit
	require.NoError(t, u.Scan("trays"))
	assert.Equal(t, UnitTray, u)

	require.NoError(t, u.Scan([]byte("ml")))
	assert.Equal(t, UnitMillilit, u)

	require.NoError(t, u.Scan(nil))
	assert.Equal(t, Unit(""), u)

	assert.Error(t, u.Scan(42))
}
