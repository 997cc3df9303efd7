package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySwipe(t *testing.T) {
	cases := []struct {
		name    string
		start   Vec2
		end     Vec2
		min     float64
		wantDir SwipeDirection
		wantOK  bool
	}{
		{"left_past_threshold", Vec2{100, 0}, Vec2{97, 0}, 2, SwipeLeft, true},
		{"left_below_threshold", Vec2{100, 0}, Vec2{99, 0}, 2, SwipeNone, false},
		{"left_exact_threshold", Vec2{100, 0}, Vec2{98, 0}, 2, SwipeLeft, true},
		{"right_past_threshold", Vec2{100, 0}, Vec2{140, 0}, 2, SwipeRight, true},
		{"right_exact_threshold", Vec2{100, 0}, Vec2{102, 0}, 2, SwipeRight, true},
		{"vertical_only", Vec2{100, 0}, Vec2{100, 300}, 2, SwipeNone, false},
		{"zero_min_tap_is_right", Vec2{50, 50}, Vec2{50, 50}, 0, SwipeRight, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir, ok := ClassifySwipe(c.start, c.end, c.min)
			assert.Equal(t, c.wantOK, ok)
			assert.Equal(t, c.wantDir, dir)
		})
	}
}

func TestSwipeDirectionSign(t *testing.T) {
	assert.Equal(t, -1.0, SwipeLeft.Sign())
	assert.Equal(t, 1.0, SwipeRight.Sign())
	assert.Equal(t, 0.0, SwipeNone.Sign())
	assert.Equal(t, "left", SwipeLeft.String())
}
