package ocr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trenthp/raiderCompanion/internal/ocr"
)

func TestSegment(t *testing.T) {
	type testCase struct {
		name string
		raw  string
		want []ocr.Candidate
	}

	tests := []testCase{
		{
			name: "NamesWithQuantities",
			raw:  "Bandage x5\nRifle Ammunition x25",
			want: []ocr.Candidate{
				{Text: "Bandage", Quantity: 5},
				{Text: "Rifle Ammunition", Quantity: 25},
			},
		},
		{
			name: "DefaultQuantity",
			raw:  "Medical Kit",
			want: []ocr.Candidate{{Text: "Medical Kit", Quantity: 1}},
		},
		{
			name: "QuantityWithoutSeparator",
			raw:  "Scrap Metal 12",
			want: []ocr.Candidate{{Text: "Scrap Metal", Quantity: 12}},
		},
		{
			name: "CommaSeparated",
			raw:  "Bandage x2, Wires x4",
			want: []ocr.Candidate{
				{Text: "Bandage", Quantity: 2},
				{Text: "Wires", Quantity: 4},
			},
		},
		{
			name: "BlankLinesDropped",
			raw:  "\n\nBandage x3\n\n",
			want: []ocr.Candidate{{Text: "Bandage", Quantity: 3}},
		},
		{
			name: "WhitespaceOnlyLinesDropped",
			raw:  "   \n\t\nBandage",
			want: []ocr.Candidate{{Text: "Bandage", Quantity: 1}},
		},
		{
			name: "Empty",
			raw:  "",
			want: nil,
		},
		{
			name: "OrderPreserved",
			raw:  "Wires\nBandage\nAdrenaline Shot",
			want: []ocr.Candidate{
				{Text: "Wires", Quantity: 1},
				{Text: "Bandage", Quantity: 1},
				{Text: "Adrenaline Shot", Quantity: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ocr.Segment(tt.raw))
		})
	}
}

func TestSegment_TrailingXIsQuantityMarker(t *testing.T) {
	// The x is consumed as the quantity marker, not kept in the name.
	got := ocr.Segment("Bandage x5")

	assert.Equal(t, []ocr.Candidate{{Text: "Bandage", Quantity: 5}}, got)
}
