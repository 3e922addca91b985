package tripay

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// NewMerchantRef builds a merchant reference of the form
// PREFIX-YYYYMMDD-HHMMSS-mmm-RRRRRR. An empty prefix defaults to INV.
func NewMerchantRef(prefix string) string {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		prefix = "INV"
	}

	now := time.Now().UTC()
	millis := now.Nanosecond() / int(time.Millisecond)

	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		n = big.NewInt(now.UnixNano() % 1_000_000)
	}

	return fmt.Sprintf("%s-%s-%03d-%06d", prefix, now.Format("20060102-150405"), millis, n.Int64())
}
