package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/razorpay/razorpay-go"

	"github.com/pixeldesignindia/organic-api/apperror"
)

type Razorpay struct {
	KeyID     string
	KeySecret string
}

// CreateOrder registers the order with the gateway. Amount is in rupees;
// Razorpay wants the smallest currency unit.
func (r Razorpay) CreateOrder(amount float64, receipt string) (map[string]interface{}, error) {
	client := razorpay.NewClient(r.KeyID, r.KeySecret)
	data := map[string]interface{}{
		"amount":   int64(amount * 100),
		"currency": "INR",
		"receipt":  receipt,
	}
	order, err := client.Order.Create(data, nil)
	if err != nil {
		return nil, apperror.Upstream("Failed to create Razorpay order: " + err.Error())
	}
	return order, nil
}

// VerifySignature checks HMAC-SHA256(secret, order_id + "|" + payment_id)
// against the caller-supplied signature.
func (r Razorpay) VerifySignature(orderID, paymentID, signature string) error {
	h := hmac.New(sha256.New, []byte(r.KeySecret))
	h.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(h.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return apperror.BadRequest("Invalid payment signature")
	}
	return nil
}
