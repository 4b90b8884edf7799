package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToastExpiry(t *testing.T) {
	var toast Toast

	first := toast.Show("first", time.Millisecond)
	assert.NotNil(t, first)
	assert.Equal(t, "first", toast.Text())

	second := toast.Show("second", time.Millisecond)
	toast.Update(first())
	assert.Equal(t, "second", toast.Text(), "stale expiry must not hide a newer toast")

	toast.Update(second())
	assert.Empty(t, toast.Text())
	assert.Empty(t, toast.View(80))
}

func TestToastIgnoresOtherToastsExpiry(t *testing.T) {
	var mine, other Toast
	mine.Show("saved", time.Millisecond)
	expire := other.Show("elsewhere", time.Millisecond)

	msg := expire()
	assert.False(t, mine.Owns(msg))
	assert.True(t, other.Owns(msg))

	mine.Update(msg)
	assert.Equal(t, "saved", mine.Text())
}
