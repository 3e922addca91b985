package tripay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildURL(t *testing.T) {
	t.Run("NoQuery", func(t *testing.T) {
		assert.Equal(t, "https://tripay.co.id/api/merchant/payment-channel",
			buildURL("https://tripay.co.id/api/", "/merchant/payment-channel", nil))
	})

	t.Run("KeepsOrder", func(t *testing.T) {
		var q query
		q.add("code", "BRIVA")
		q.add("amount", "10000")
		assert.Equal(t, "https://tripay.co.id/api/x?code=BRIVA&amount=10000", buildURL("https://tripay.co.id/api", "/x", q))
	})

	t.Run("Escapes", func(t *testing.T) {
		var q query
		q.add("pay_code", "a b&c")
		assert.Equal(t, "pay_code=a+b%26c", q.encode())
	})
}

func TestExtractMessage(t *testing.T) {
	assert.Equal(t, "Invalid merchant code", extractMessage(422, []byte(`{"message": "Invalid merchant code"}`)))
	assert.Equal(t, "Unauthorized", extractMessage(401, []byte(`{"message": "  "}`)))
	assert.Equal(t, "Not Found", extractMessage(404, []byte(`not json`)))
	assert.Equal(t, "unknown error", extractMessage(599, nil))
}
