package payments

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	p := PhonePe{APIKey: "test-api-key", KeyIndex: "1"}

	payload := base64.StdEncoding.EncodeToString([]byte(`{"merchantId":"M1"}`))
	sum := sha256.Sum256([]byte(payload + "/pg/v1/pay" + p.APIKey))
	want := hex.EncodeToString(sum[:]) + "###1"

	assert.Equal(t, want, p.Checksum(payload, "/pg/v1/pay"))
	assert.NotEqual(t, want, p.Checksum(payload, "/pg/v1/status"), "path is covered by the checksum")
}

func TestPay(t *testing.T) {
	var gotVerify string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotVerify = r.Header.Get("X-VERIFY")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"code":"PAYMENT_INITIATED"}`))
	}))
	defer srv.Close()

	p := PhonePe{
		Host:       srv.URL,
		MerchantID: "MTEST",
		APIKey:     "test-api-key",
		KeyIndex:   "1",
		HTTPClient: srv.Client(),
	}

	out, err := p.Pay(PhonePePayRequest{
		MerchantTransactionID: "txn_2001",
		UserID:                "user_1",
		Amount:                149.50,
	})
	require.NoError(t, err)
	assert.Equal(t, true, out["success"])

	encoded := gotBody["request"]
	require.NotEmpty(t, encoded)
	assert.Equal(t, p.Checksum(encoded, "/pg/v1/pay"), gotVerify)

	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "MTEST", payload["merchantId"])
	assert.Equal(t, float64(14950), payload["amount"], "amount is sent in paise")
}

func TestStatusGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"code":"BAD_REQUEST"}`))
	}))
	defer srv.Close()

	p := PhonePe{
		Host:       srv.URL,
		MerchantID: "MTEST",
		APIKey:     "test-api-key",
		KeyIndex:   "1",
		HTTPClient: srv.Client(),
	}

	out, err := p.Status("txn_2001")
	require.Error(t, err)
	assert.Equal(t, false, out["success"], "gateway body still surfaces on error")
}
