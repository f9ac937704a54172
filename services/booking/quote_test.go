package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeQuoteBreakdown(t *testing.T) {
	q := ComputeQuote(200, 3)

	assert.Equal(t, 600.0, q.Subtotal)
	assert.Equal(t, 30.0, q.ServiceFee)
	assert.Equal(t, 108.0, q.Tax)
	// Total deliberately excludes the service fee; see the comment on
	// ComputeQuote before "fixing" this.
	assert.Equal(t, 708.0, q.Total)
}

func TestComputeQuoteRoundsToWholeUnits(t *testing.T) {
	// 150 * 1 = 150; fee 7.5 rounds to 8, tax 27.
	q := ComputeQuote(150, 1)

	assert.Equal(t, 150.0, q.Subtotal)
	assert.Equal(t, 8.0, q.ServiceFee)
	assert.Equal(t, 27.0, q.Tax)
	assert.Equal(t, 177.0, q.Total)
}

func TestComputeQuoteScalesWithDuration(t *testing.T) {
	one := ComputeQuote(300, 1)
	eight := ComputeQuote(300, 8)

	assert.Equal(t, one.Subtotal*8, eight.Subtotal)
	assert.Equal(t, one.Total*8, eight.Total)
}
