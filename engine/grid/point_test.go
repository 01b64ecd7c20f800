package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want int
	}{
		{"same cell", Pt(2, 2), Pt(2, 2), 0},
		{"horizontal", Pt(0, 0), Pt(3, 0), 3},
		{"diagonal", Pt(0, 0), Pt(2, 2), 4},
		{"negative", Pt(-1, 4), Pt(2, -1), 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Distance(tt.b))
			assert.Equal(t, tt.want, tt.b.Distance(tt.a))
		})
	}
}

func TestInRange_HalfOpen(t *testing.T) {
	min, max := Pt(0, 0), Pt(3, 3)

	assert.True(t, Pt(0, 0).InRange(min, max))
	assert.True(t, Pt(2, 2).InRange(min, max))
	assert.False(t, Pt(3, 0).InRange(min, max))
	assert.False(t, Pt(0, 3).InRange(min, max))
	assert.False(t, Pt(-1, 1).InRange(min, max))
}

func TestNeighbors(t *testing.T) {
	n := Pt(1, 1).Neighbors()
	assert.Equal(t, [4]Point{{2, 1}, {0, 1}, {1, 2}, {1, 0}}, n)
	for _, p := range n {
		assert.Equal(t, 1, p.Distance(Pt(1, 1)))
	}
}

func TestAddSub(t *testing.T) {
	assert.Equal(t, Pt(3, 5), Pt(1, 2).Add(Pt(2, 3)))
	assert.Equal(t, Pt(-1, -1), Pt(1, 2).Sub(Pt(2, 3)))
	assert.Equal(t, "(1, 2)", Pt(1, 2).String())
}
