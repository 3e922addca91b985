package tripay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// ClosedTransactionSignature signs merchantCode + merchantRef + amount with
// the merchant private key. Tripay compares the hex digest byte for byte, so
// the fields are concatenated without a separator.
func ClosedTransactionSignature(privateKey, merchantCode, merchantRef string, amount int64) string {
	return sign(privateKey, merchantCode+merchantRef+strconv.FormatInt(amount, 10))
}

// OpenTransactionSignature signs merchantCode + method + merchantRef.
func OpenTransactionSignature(privateKey, merchantCode string, method OpenPaymentCode, merchantRef string) string {
	return sign(privateKey, merchantCode+string(method)+merchantRef)
}

func sign(privateKey, payload string) string {
	h := hmac.New(sha256.New, []byte(privateKey))
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}
