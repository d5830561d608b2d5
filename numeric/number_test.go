package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Number
		wantErr bool
	}{
		{name: "integer", in: "3", want: FromInt64(3)},
		{name: "negative integer", in: "-7", want: FromInt64(-7)},
		{name: "fraction", in: "1/2", want: FromFrac(1, 2)},
		{name: "reducible fraction", in: "2/4", want: FromFrac(1, 2)},
		{name: "negative fraction", in: "-1/2", want: FromFrac(-1, 2)},
		{name: "zero denominator", in: "1/0", wantErr: true},
		{name: "negative denominator", in: "1/-2", wantErr: true},
		{name: "garbage", in: "abc", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "Parse(%q) = %s, want %s", tt.in, got, tt.want)
		})
	}
}

func TestCanonicalization(t *testing.T) {
	a := FromFrac(2, 4)
	b := FromFrac(1, 2)
	assert.True(t, a.Equal(b))
	assert.Equal(t, "1/2", a.String())
}

func TestArithmetic(t *testing.T) {
	a := FromFrac(1, 3)
	b := FromFrac(1, 6)
	assert.True(t, a.Add(b).Equal(FromFrac(1, 2)))
	assert.True(t, a.Sub(b).Equal(FromFrac(1, 6)))
	assert.True(t, a.Mul(b).Equal(FromFrac(1, 18)))
	assert.True(t, a.Quo(b).Equal(FromInt64(2)))
	assert.True(t, a.Neg().Equal(FromFrac(-1, 3)))
}

func TestComparisons(t *testing.T) {
	a := FromFrac(1, 3)
	b := FromFrac(1, 2)
	assert.True(t, a.Less(b))
	assert.True(t, b.Greater(a))
	assert.True(t, a.LessOrEqual(a))
	assert.True(t, a.GreaterOrEqual(a))
	assert.Equal(t, -1, a.Cmp(b))
	assert.False(t, a.IsZero())
	assert.True(t, Zero().IsZero())
}

func TestScaledFloor(t *testing.T) {
	tests := []struct {
		name  string
		n     Number
		scale int64
		want  int64
	}{
		{name: "one", n: One(), scale: 1_000_000, want: 1_000_000},
		{name: "half", n: FromFrac(1, 2), scale: 1_000_000, want: 500_000},
		{name: "zero", n: Zero(), scale: 1_000_000, want: 0},
		{name: "third truncates", n: FromFrac(1, 3), scale: 1_000_000, want: 333_333},
		{name: "two thirds truncates", n: FromFrac(2, 3), scale: 1_000_000, want: 666_666},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.n.ScaledFloor(tt.scale))
		})
	}
}

func TestStringFormsIntegersWithoutDenominator(t *testing.T) {
	assert.Equal(t, "3", FromInt64(3).String())
	assert.Equal(t, "-3", FromInt64(-3).String())
	assert.Equal(t, "1/2", FromFrac(1, 2).String())
}
