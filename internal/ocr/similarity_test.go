package ocr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trenthp/raiderCompanion/internal/ocr"
)

func TestSimilarity(t *testing.T) {
	type testCase struct {
		name string
		a    string
		b    string
		want float64
	}

	tests := []testCase{
		{name: "Identical", a: "Bandage", b: "Bandage", want: 1},
		{name: "CaseInsensitive", a: "BANDAGE", b: "bandage", want: 1},
		{name: "BothEmpty", a: "", b: "", want: 1},
		{name: "OneEmpty", a: "Bandage", b: "", want: 0},
		{name: "Disjoint", a: "zzz", b: "Bandage", want: 0},
		// One substitution over seven characters.
		{name: "SingleTypo", a: "Bandege", b: "Bandage", want: 1 - 1.0/7},
		// Two trailing inserts over nine characters.
		{name: "Truncated", a: "Rifle Am", b: "Rifle Ammo", want: 1 - 2.0/10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ocr.Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarity_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"Bandage", "Medical Kit"},
		{"x", "Titanium Alloy"},
		{"", "Wires"},
		{"Adrenaline Shot", "Adrenaline Shot"},
		{"qqqqqqqqqqqqqqqqqqqq", "a"},
	}

	for _, p := range pairs {
		got := ocr.Similarity(p[0], p[1])

		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"Bandage", "Bandage Kit"},
		{"Scrap Metal", "Scrap"},
		{"heavy ammo", "Heavy Ammunition"},
	}

	for _, p := range pairs {
		assert.Equal(t, ocr.Similarity(p[0], p[1]), ocr.Similarity(p[1], p[0]))
	}
}
