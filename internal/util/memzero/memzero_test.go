package memzero

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZero(t *testing.T) {
	a := []byte{1, 2, 3}
	b := []byte{4, 5}

	Zero(a, nil, b)

	assert.Equal(t, []byte{0, 0, 0}, a)
	assert.Equal(t, []byte{0, 0}, b)
}
