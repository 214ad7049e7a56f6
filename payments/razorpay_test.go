package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func razorpaySign(secret, orderID, paymentID string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	r := Razorpay{KeyID: "rzp_test_key", KeySecret: "rzp_test_secret"}
	orderID := "order_Nxq1a2b3c4"
	paymentID := "pay_Nxq5d6e7f8"

	good := razorpaySign(r.KeySecret, orderID, paymentID)
	assert.NoError(t, r.VerifySignature(orderID, paymentID, good))

	assert.Error(t, r.VerifySignature(orderID, paymentID, good+"00"))
	assert.Error(t, r.VerifySignature(orderID, "pay_other", good))
	assert.Error(t, r.VerifySignature(orderID, paymentID,
		razorpaySign("wrong_secret", orderID, paymentID)))
}
