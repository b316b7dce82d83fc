package maths

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// taxAt20 mirrors the worked examples the rounding rules were tuned on:
// a 20% tax share of a retail price.
func taxAt20(price string) decimal.Decimal {
	p := decimal.RequireFromString(price)
	return p.Div(decimal.NewFromInt(100)).Mul(decimal.NewFromInt(20))
}

func TestRoundNearest(t *testing.T) {
	tests := []struct {
		name   string
		value  decimal.Decimal
		places int32
		want   string
	}{
		{"82.83 tax to 0", taxAt20("82.83"), 0, "17"},
		{"82.83 tax to 1", taxAt20("82.83"), 1, "16.6"},
		{"82.83 tax to 2", taxAt20("82.83"), 2, "16.57"},
		{"82.83 tax to 3", taxAt20("82.83"), 3, "16.566"},
		{"49.62 tax to 0", taxAt20("49.62"), 0, "10"},
		{"49.62 tax to 1", taxAt20("49.62"), 1, "9.9"},
		{"49.62 tax to 2", taxAt20("49.62"), 2, "9.92"},
		{"49.62 tax to 3", taxAt20("49.62"), 3, "9.924"},
		{"28.34 tax to 0", taxAt20("28.34"), 0, "6"},
		{"28.34 tax to 1", taxAt20("28.34"), 1, "5.7"},
		{"28.34 tax to 2", taxAt20("28.34"), 2, "5.67"},
		{"28.34 tax to 3", taxAt20("28.34"), 3, "5.668"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, version := range []Version{V1, V2} {
				got, err := RoundNearest(tc.value, tc.places, version)
				require.NoError(t, err)
				assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
					"%s: got %s want %s", version, got, tc.want)
			}
		})
	}
}

func TestRoundDown(t *testing.T) {
	tests := []struct {
		value  decimal.Decimal
		places int32
		want   string
	}{
		{taxAt20("82.83"), 0, "16"},
		{taxAt20("82.83"), 1, "16.5"},
		{taxAt20("82.83"), 2, "16.56"},
		{taxAt20("82.83"), 3, "16.566"},
		{taxAt20("49.62"), 0, "9"},
		{taxAt20("49.62"), 1, "9.9"},
		{taxAt20("49.62"), 2, "9.92"},
		{taxAt20("49.62"), 3, "9.924"},
		{taxAt20("28.34"), 0, "5"},
		{taxAt20("28.34"), 1, "5.6"},
		{taxAt20("28.34"), 2, "5.66"},
		{taxAt20("28.34"), 3, "5.668"},
	}

	for _, tc := range tests {
		got, err := RoundDown(tc.value, tc.places, V2)
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"round down %s to %d: got %s want %s", tc.value, tc.places, got, tc.want)
	}
}

func TestRoundUp(t *testing.T) {
	tests := []struct {
		value  decimal.Decimal
		places int32
		want   string
	}{
		{taxAt20("82.83"), 0, "17"},
		{taxAt20("82.83"), 1, "16.6"},
		{taxAt20("82.83"), 2, "16.57"},
		{taxAt20("82.83"), 3, "16.566"},
		{taxAt20("49.62"), 0, "10"},
		{taxAt20("49.62"), 1, "10"},
		{taxAt20("49.62"), 2, "9.93"},
		{taxAt20("49.62"), 3, "9.924"},
		{taxAt20("28.34"), 0, "6"},
		{taxAt20("28.34"), 1, "5.7"},
		{taxAt20("28.34"), 2, "5.67"},
		{taxAt20("28.34"), 3, "5.668"},
	}

	for _, tc := range tests {
		got, err := RoundUp(tc.value, tc.places, V2)
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"round up %s to %d: got %s want %s", tc.value, tc.places, got, tc.want)
	}
}

func TestRoundZeroPlacesIsCeilFloor(t *testing.T) {
	up, err := RoundUp(decimal.RequireFromString("5.1"), 0, V2)
	require.NoError(t, err)
	assert.True(t, up.Equal(decimal.NewFromInt(6)))

	down, err := RoundDown(decimal.RequireFromString("5.9"), 0, V2)
	require.NoError(t, err)
	assert.True(t, down.Equal(decimal.NewFromInt(5)))
}

// V1 never special-cases whole-number rounding: at zero places the
// direction is ignored and the plain half-up primitive applies.
func TestVersionsDisagreeAtZeroPlaces(t *testing.T) {
	v := taxAt20("82.83") // 16.566

	v1, err := RoundDown(v, 0, V1)
	require.NoError(t, err)
	assert.True(t, v1.Equal(decimal.NewFromInt(17)))

	v2, err := RoundDown(v, 0, V2)
	require.NoError(t, err)
	assert.True(t, v2.Equal(decimal.NewFromInt(16)))
}

func TestRoundNegativeValues(t *testing.T) {
	refund := decimal.RequireFromString("-5.668")

	up, err := RoundUp(refund, 0, V2)
	require.NoError(t, err)
	assert.True(t, up.Equal(decimal.NewFromInt(-5)), "up is toward +Inf: got %s", up)

	down, err := RoundDown(refund, 0, V2)
	require.NoError(t, err)
	assert.True(t, down.Equal(decimal.NewFromInt(-6)), "down is toward -Inf: got %s", down)

	up2, err := RoundUp(refund, 2, V2)
	require.NoError(t, err)
	assert.True(t, up2.Equal(decimal.RequireFromString("-5.66")), "got %s", up2)

	down2, err := RoundDown(refund, 2, V2)
	require.NoError(t, err)
	assert.True(t, down2.Equal(decimal.RequireFromString("-5.67")), "got %s", down2)
}

func TestRoundDirectionOrdering(t *testing.T) {
	values := []string{"0", "0.005", "5.1", "5.5", "9.924", "16.566", "100.2345"}
	for _, s := range values {
		v := decimal.RequireFromString(s)
		for _, places := range []int32{0, 1, 2, 3} {
			up, err := RoundUp(v, places, V2)
			require.NoError(t, err)
			nearest, err := RoundNearest(v, places, V2)
			require.NoError(t, err)
			down, err := RoundDown(v, places, V2)
			require.NoError(t, err)

			assert.True(t, up.GreaterThanOrEqual(nearest),
				"%s places %d: up %s < nearest %s", s, places, up, nearest)
			assert.True(t, nearest.GreaterThanOrEqual(down),
				"%s places %d: nearest %s < down %s", s, places, nearest, down)
		}
	}
}

func TestRoundNegativePlaces(t *testing.T) {
	_, err := Round(decimal.NewFromInt(1), -1, ModeNearest, V2)
	assert.ErrorIs(t, err, ErrNegativePlaces)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("down")
	require.NoError(t, err)
	assert.Equal(t, ModeDown, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeNearest, m)

	_, err = ParseMode("sideways")
	assert.Error(t, err)
}

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("v1")
	require.NoError(t, err)
	assert.Equal(t, V1, v)

	v, err = ParseVersion("")
	require.NoError(t, err)
	assert.Equal(t, V2, v)

	_, err = ParseVersion("v3")
	assert.Error(t, err)
}
