package payments

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payuFixture() (PayU, PayURequest) {
	return PayU{Key: "gtKFFx", Salt: "eCwWELxi"}, PayURequest{
		TxnID:       "txn_1001",
		Amount:      "499.00",
		ProductInfo: "organic honey 500g",
		FirstName:   "Asha",
		Email:       "asha@example.com",
	}
}

func TestRequestHash(t *testing.T) {
	p, req := payuFixture()

	hash, err := p.RequestHash(req)
	require.NoError(t, err)

	parts := []string{p.Key, req.TxnID, req.Amount, req.ProductInfo, req.FirstName, req.Email}
	for i := 0; i < 13; i++ {
		parts = append(parts, "")
	}
	parts = append(parts, p.Salt)
	sum := sha512.Sum512([]byte(strings.Join(parts, "|")))
	assert.Equal(t, hex.EncodeToString(sum[:]), hash)

	again, err := p.RequestHash(req)
	require.NoError(t, err)
	assert.Equal(t, hash, again, "same request must hash identically")
}

func TestRequestHashMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *PayU, req *PayURequest)
		field  string
	}{
		{"missing key", func(p *PayU, req *PayURequest) { p.Key = "" }, "key"},
		{"missing salt", func(p *PayU, req *PayURequest) { p.Salt = "" }, "salt"},
		{"missing txnid", func(p *PayU, req *PayURequest) { req.TxnID = "" }, "txnid"},
		{"missing amount", func(p *PayU, req *PayURequest) { req.Amount = "" }, "amount"},
		{"missing productinfo", func(p *PayU, req *PayURequest) { req.ProductInfo = "" }, "productinfo"},
		{"missing firstname", func(p *PayU, req *PayURequest) { req.FirstName = "" }, "firstname"},
		{"missing email", func(p *PayU, req *PayURequest) { req.Email = "" }, "email"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, req := payuFixture()
			tc.mutate(&p, &req)

			_, err := p.RequestHash(req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestVerifyCallback(t *testing.T) {
	p, req := payuFixture()

	parts := []string{p.Salt, "success"}
	for i := 0; i < 13; i++ {
		parts = append(parts, "")
	}
	parts = append(parts, req.Email, req.FirstName, req.ProductInfo, req.Amount, req.TxnID, p.Key)
	sum := sha512.Sum512([]byte(strings.Join(parts, "|")))
	hash := hex.EncodeToString(sum[:])

	assert.NoError(t, p.VerifyCallback(req, "success", hash))
	assert.Error(t, p.VerifyCallback(req, "failure", hash), "status is covered by the hash")

	tampered := req
	tampered.Amount = "1.00"
	assert.Error(t, p.VerifyCallback(tampered, "success", hash))
}
