// Package payments holds the gateway adapters. Each adapter is a stateless
// function over its inputs plus static configuration; nothing here retries.
package payments

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"

	"github.com/pixeldesignindia/organic-api/apperror"
)

// payuEmptyFields is the run of unused pipe-separated fields between email
// and salt in the hash string.
const payuEmptyFields = 13

// PayURequest carries the mandatory fields of a payment request.
type PayURequest struct {
	TxnID       string `json:"txnid" validate:"required"`
	Amount      string `json:"amount" validate:"required"`
	ProductInfo string `json:"productinfo" validate:"required"`
	FirstName   string `json:"firstname" validate:"required"`
	Email       string `json:"email" validate:"required"`
}

type PayU struct {
	Key  string
	Salt string
}

// RequestHash computes the SHA-512 request hash:
// key|txnid|amount|productinfo|firstname|email|<13 empty>|salt.
// Every named field is mandatory.
func (p PayU) RequestHash(req PayURequest) (string, error) {
	fields := map[string]string{
		"key":         p.Key,
		"txnid":       req.TxnID,
		"amount":      req.Amount,
		"productinfo": req.ProductInfo,
		"firstname":   req.FirstName,
		"email":       req.Email,
		"salt":        p.Salt,
	}
	for _, name := range []string{"key", "txnid", "amount", "productinfo", "firstname", "email", "salt"} {
		if fields[name] == "" {
			return "", apperror.BadRequest("Missing mandatory field: " + name)
		}
	}

	parts := make([]string, 0, payuEmptyFields+7)
	parts = append(parts, p.Key, req.TxnID, req.Amount, req.ProductInfo, req.FirstName, req.Email)
	for i := 0; i < payuEmptyFields; i++ {
		parts = append(parts, "")
	}
	parts = append(parts, p.Salt)

	sum := sha512.Sum512([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:]), nil
}

// VerifyCallback checks the reverse hash PayU sends on its callback:
// salt|status|<13 empty>|email|firstname|productinfo|amount|txnid|key.
func (p PayU) VerifyCallback(req PayURequest, status, hash string) error {
	parts := make([]string, 0, payuEmptyFields+8)
	parts = append(parts, p.Salt, status)
	for i := 0; i < payuEmptyFields; i++ {
		parts = append(parts, "")
	}
	parts = append(parts, req.Email, req.FirstName, req.ProductInfo, req.Amount, req.TxnID, p.Key)

	sum := sha512.Sum512([]byte(strings.Join(parts, "|")))
	if hex.EncodeToString(sum[:]) != hash {
		return apperror.BadRequest("Invalid payment hash")
	}
	return nil
}
