package drawing

import (
	"encoding/json"
	"testing"

	"github.com/WahpiTrex/Draw2Gather/geometry"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStroke(t *testing.T) {
	points := []geometry.Point{{X: 1, Y: 1}, {X: 2, Y: 3}, {X: 4, Y: 4}}

	op, err := NewStroke(ToolPencil, RGB{R: 255, G: 107, B: 107}, 5, points)

	require.NoError(t, err)
	assert.True(t, op.IsStroke())
	assert.False(t, op.IsFill())
	assert.Len(t, op.Points, 3)
}

func TestNewStroke_RejectsSinglePoint(t *testing.T) {
	_, err := NewStroke(ToolPencil, RGB{}, 5, []geometry.Point{{X: 1, Y: 1}})

	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestNewStroke_RejectsZeroWidth(t *testing.T) {
	points := []geometry.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}

	_, err := NewStroke(ToolEraser, RGB{}, 0, points)

	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestNewFill(t *testing.T) {
	op, err := NewFill(RGB{R: 0x4E, G: 0xCD, B: 0xC4}, geometry.Point{X: 5000, Y: 5000})

	require.NoError(t, err)
	assert.True(t, op.IsFill())
	require.NotNil(t, op.Seed)
	assert.Equal(t, geometry.Point{X: 5000, Y: 5000}, *op.Seed)
	// A fill must never carry stroke geometry.
	assert.Empty(t, op.Points)
}

func TestNewFill_RejectsSeedOutsideCanvas(t *testing.T) {
	testCases := []geometry.Point{
		{X: -1, Y: 50},
		{X: 50, Y: -0.5},
		{X: WorldWidth + 1, Y: 50},
		{X: 50, Y: WorldHeight + 1},
	}

	for _, seed := range testCases {
		_, err := NewFill(RGB{}, seed)
		assert.ErrorIs(t, err, ErrOutOfBounds, "seed %+v", seed)
	}
}

func TestValidate_UnknownTool(t *testing.T) {
	op := Op{Tool: "spraycan"}

	assert.ErrorIs(t, op.Validate(), ErrInvalidOperation)
}

func TestOp_WireFormat(t *testing.T) {
	stroke, err := NewStroke(ToolPencil, RGB{R: 255, G: 107, B: 107}, 5, []geometry.Point{{X: 1, Y: 2}, {X: 3, Y: 4}})
	require.NoError(t, err)

	data, err := json.Marshal(stroke)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"tool": "pencil",
		"color": "#FF6B6B",
		"size": 5,
		"points": [{"x":1,"y":2},{"x":3,"y":4}]
	}`, string(data))

	var decoded Op
	require.NoError(t, json.Unmarshal(data, &decoded))
	if diff := cmp.Diff(stroke, decoded); diff != "" {
		t.Errorf("stroke changed across the wire (-sent +received):\n%s", diff)
	}
}

func TestOp_WireFormat_Fill(t *testing.T) {
	fill, err := NewFill(RGB{R: 0xF8, G: 0xB5, B: 0}, geometry.Point{X: 120.5, Y: 77})
	require.NoError(t, err)

	data, err := json.Marshal(fill)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"tool": "bucket",
		"color": "#F8B500",
		"seed": {"x":120.5,"y":77}
	}`, string(data))

	var decoded Op
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NoError(t, decoded.Validate())
	assert.Equal(t, *fill.Seed, *decoded.Seed)
}

func TestRGB_UnmarshalRejectsGarbage(t *testing.T) {
	var c RGB

	assert.Error(t, json.Unmarshal([]byte(`"red"`), &c))
	assert.Error(t, json.Unmarshal([]byte(`"#GG0000"`), &c))
	assert.Error(t, json.Unmarshal([]byte(`42`), &c))
}

func TestRGB_HexRoundTrip(t *testing.T) {
	c := RGB{R: 0xBB, G: 0x8F, B: 0xCE}

	var decoded RGB
	require.NoError(t, json.Unmarshal([]byte(`"`+c.Hex()+`"`), &decoded))

	assert.Equal(t, c, decoded)
}
