package payments

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pixeldesignindia/organic-api/apperror"
)

const (
	phonePePayPath    = "/pg/v1/pay"
	phonePeStatusPath = "/pg/v1/status"
)

type PhonePe struct {
	Host       string
	MerchantID string
	APIKey     string
	KeyIndex   string

	// HTTPClient defaults to a client with a 30s timeout.
	HTTPClient *http.Client
}

type PhonePePayRequest struct {
	MerchantTransactionID string  `json:"merchantTransactionId" validate:"required"`
	UserID                string  `json:"merchantUserId" validate:"required"`
	Amount                float64 `json:"-"`
	RedirectURL           string  `json:"redirectUrl"`
	CallbackURL           string  `json:"callbackUrl"`
}

func (p PhonePe) httpClient() *http.Client {
	if p.HTTPClient != nil {
		return p.HTTPClient
	}
	return &http.Client{Timeout: 30 * time.Second}
}

// Checksum is SHA-256(base64Payload + apiPath + apiKey) in hex, suffixed
// with ###keyIndex for the X-VERIFY header.
func (p PhonePe) Checksum(base64Payload, apiPath string) string {
	sum := sha256.Sum256([]byte(base64Payload + apiPath + p.APIKey))
	return hex.EncodeToString(sum[:]) + "###" + p.KeyIndex
}

// Pay builds the pay payload, base64-encodes it and posts it with the
// X-VERIFY checksum header. Transient gateway errors surface directly.
func (p PhonePe) Pay(req PhonePePayRequest) (map[string]interface{}, error) {
	payload := map[string]interface{}{
		"merchantId":            p.MerchantID,
		"merchantTransactionId": req.MerchantTransactionID,
		"merchantUserId":        req.UserID,
		"amount":                int64(req.Amount * 100),
		"redirectUrl":           req.RedirectURL,
		"callbackUrl":           req.CallbackURL,
		"paymentInstrument":     map[string]string{"type": "PAY_PAGE"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperror.Internal("Failed to encode payment payload")
	}
	encoded := base64.StdEncoding.EncodeToString(body)

	reqBody, _ := json.Marshal(map[string]string{"request": encoded})
	httpReq, err := http.NewRequest(http.MethodPost, p.Host+phonePePayPath, bytes.NewReader(reqBody))
	if err != nil {
		return nil, apperror.Internal("Failed to build gateway request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-VERIFY", p.Checksum(encoded, phonePePayPath))

	return p.do(httpReq)
}

// Status checks a transaction; the checksum covers the status path string.
func (p PhonePe) Status(merchantTransactionID string) (map[string]interface{}, error) {
	path := phonePeStatusPath + "/" + p.MerchantID + "/" + merchantTransactionID
	httpReq, err := http.NewRequest(http.MethodGet, p.Host+path, nil)
	if err != nil {
		return nil, apperror.Internal("Failed to build gateway request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-VERIFY", p.Checksum("", path))
	httpReq.Header.Set("X-MERCHANT-ID", p.MerchantID)

	return p.do(httpReq)
}

func (p PhonePe) do(req *http.Request) (map[string]interface{}, error) {
	resp, err := p.httpClient().Do(req)
	if err != nil {
		return nil, apperror.Upstream("Payment gateway unreachable: " + err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.Upstream("Failed reading gateway response")
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, apperror.Upstream("Unexpected gateway response")
	}
	if resp.StatusCode != http.StatusOK {
		return out, apperror.Upstream("Payment gateway returned an error")
	}
	return out, nil
}
