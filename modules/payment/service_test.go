package payment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhkhub/clientkit/modules/payment"
	"github.com/zhkhub/clientkit/pkg/apiclient"
)

func newService(t *testing.T, handler http.Handler) *payment.Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := apiclient.New(apiclient.Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
	return payment.New(client)
}

func TestCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("returns the created record", func(t *testing.T) {
		t.Parallel()
		var gotBody payment.CreateRequest
		svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/payments", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"code": 200,
				"data": map[string]any{
					"id":          31,
					"orderId":     5,
					"paymentType": "wechat",
					"amount":      "28.00",
					"status":      payment.StatusPending,
					"qrCode":      "weixin://wxpay/abc",
				},
			})
		}))

		p, err := svc.Create(ctx, payment.CreateRequest{OrderID: 5, PaymentType: "wechat"})
		require.NoError(t, err)
		assert.Equal(t, int64(5), gotBody.OrderID)
		assert.Equal(t, int64(31), p.ID)
		assert.Equal(t, payment.StatusPending, p.Status)
		assert.Equal(t, "weixin://wxpay/abc", p.QRCode)
	})

	t.Run("platform rejection surfaces as business error", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"code":    4002,
				"message": "order already paid",
			})
		}))

		_, err := svc.Create(ctx, payment.CreateRequest{OrderID: 5, PaymentType: "alipay"})
		require.Error(t, err)
		assert.True(t, apiclient.IsBusinessError(err))
		assert.EqualError(t, err, "order already paid")
	})
}

func TestStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/payments/31/status", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"code": 200,
			"data": map[string]any{
				"id":            31,
				"status":        payment.StatusSuccess,
				"transactionId": "wx-123",
			},
		})
	}))

	p, err := svc.Status(ctx, 31)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusSuccess, p.Status)
	assert.Equal(t, "wx-123", p.TransactionID)
}
