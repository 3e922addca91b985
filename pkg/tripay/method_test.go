package tripay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentCodes(t *testing.T) {
	assert.Len(t, ClosedPaymentCodes(), 21)
	assert.Len(t, OpenPaymentCodes(), 8)

	for _, c := range ClosedPaymentCodes() {
		assert.True(t, c.Valid(), c)
		assert.False(t, OpenPaymentCode(c).Valid(), c)
	}
	for _, c := range OpenPaymentCodes() {
		assert.True(t, c.Valid(), c)
		assert.False(t, ClosedPaymentCode(c).Valid(), c)
	}

	assert.False(t, ClosedPaymentCode("").Valid())
	assert.False(t, ClosedPaymentCode("briva").Valid())
}

func TestPaymentCodes_ReturnsCopy(t *testing.T) {
	codes := ClosedPaymentCodes()
	codes[0] = "CHANGED"
	assert.Equal(t, MethodMaybankVA, ClosedPaymentCodes()[0])
}
