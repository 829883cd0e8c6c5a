package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Edges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	assert.Equal(t, 10.0, r.Left())
	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 20.0, r.Top())
	assert.Equal(t, 60.0, r.Bottom())
}

func TestRect_Overlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"partial overlap", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"touching right edge", Rect{X: 10, Y: 0, Width: 5, Height: 10}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, Width: 10, Height: 5}, false},
		{"touching corner", Rect{X: 10, Y: 10, Width: 5, Height: 5}, false},
		{"apart horizontally", Rect{X: 20, Y: 0, Width: 5, Height: 5}, false},
		{"apart vertically", Rect{X: 0, Y: -20, Width: 5, Height: 5}, false},
		{"overlap x only", Rect{X: 5, Y: 15, Width: 5, Height: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := CenteredRect(600, 450, 200, 80)

	assert.True(t, r.Contains(600, 450))
	assert.True(t, r.Contains(501, 411))
	assert.False(t, r.Contains(500, 450), "left edge is outside")
	assert.False(t, r.Contains(700, 450), "right edge is outside")
	assert.False(t, r.Contains(600, 410), "top edge is outside")
	assert.False(t, r.Contains(600, 490), "bottom edge is outside")
	assert.False(t, r.Contains(0, 0))
}
