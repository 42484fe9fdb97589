package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange_Contains(t *testing.T) {
	r := Range{Min: 90, Max: 220}

	assert.True(t, r.Contains(90), "lower bound is inclusive")
	assert.True(t, r.Contains(220), "upper bound is inclusive")
	assert.True(t, r.Contains(135))
	assert.False(t, r.Contains(89.9))
	assert.False(t, r.Contains(220.1))
}
