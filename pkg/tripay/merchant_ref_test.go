package tripay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMerchantRef(t *testing.T) {
	t.Run("Format", func(t *testing.T) {
		ref := NewMerchantRef("")

		parts := strings.Split(ref, "-")
		if assert.Len(t, parts, 5) {
			assert.Equal(t, "INV", parts[0])
			assert.Len(t, parts[1], 8)
			assert.Len(t, parts[2], 6)
			assert.Len(t, parts[3], 3)
			assert.Len(t, parts[4], 6)
		}
	})

	t.Run("Prefix", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(NewMerchantRef(" op "), "OP-"))
	})

	t.Run("Uniqueness", func(t *testing.T) {
		assert.NotEqual(t, NewMerchantRef("INV"), NewMerchantRef("INV"))
	})
}
