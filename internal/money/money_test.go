package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatterAmount(t *testing.T) {
	plain := Default()
	assert.Equal(t, "₹220000", plain.Amount(220000))
	assert.Equal(t, "-₹5000", plain.Amount(-5000))
	assert.Equal(t, "₹0", plain.Amount(0))

	grouped := Formatter{Symbol: "$", Group: true}
	assert.Equal(t, "$1,455,000", grouped.Amount(1455000))
	assert.Equal(t, "$999", grouped.Amount(999))
}

func TestFormatterFloatRounds(t *testing.T) {
	f := Default()
	assert.Equal(t, "₹1650", f.Float(1649.6))
	assert.Equal(t, "₹0", f.Float(math.NaN()))
	assert.Equal(t, "₹0", f.Float(math.Inf(1)))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "88.9%", Percent(88.9))
	assert.Equal(t, "0.0%", Percent(math.NaN()))
}
