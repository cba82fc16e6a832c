package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucket_FloorsToWidthMultiple(t *testing.T) {
	cases := []struct {
		v, width, want int64
	}{
		{0, 10, 0},
		{9, 10, 0},
		{10, 10, 10},
		{19, 10, 10},
		{99, 50, 50},
		{100, 50, 100},
		{7, 1, 7},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Bucket(c.v, c.width), "Bucket(%d, %d)", c.v, c.width)
	}
}
