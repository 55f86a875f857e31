// Package payment wraps the payment endpoints: plain data-shuttling through
// the request pipeline, no state of its own.
package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/zhkhub/clientkit/pkg/apiclient"
)

// Payment status values as reported by the platform.
const (
	StatusPending  = "pending"
	StatusSuccess  = "success"
	StatusFailed   = "failed"
	StatusRefunded = "refunded"
)

// CreateRequest starts a payment for an order.
type CreateRequest struct {
	OrderID     int64  `json:"orderId"`
	PaymentType string `json:"paymentType"` // wechat, alipay
}

// Payment is the platform's payment record.
type Payment struct {
	ID            int64     `json:"id"`
	OrderID       int64     `json:"orderId"`
	PaymentType   string    `json:"paymentType"`
	Amount        string    `json:"amount"`
	TransactionID string    `json:"transactionId,omitempty"`
	Status        string    `json:"status"`
	PaymentURL    string    `json:"paymentUrl,omitempty"`
	QRCode        string    `json:"qrCode,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
	PaidAt        time.Time `json:"paidAt,omitempty"`
}

// Service calls the payment endpoints through the request pipeline.
type Service struct {
	client *apiclient.Client
}

// New creates the payment service on top of the given client.
func New(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// Create starts a payment and returns the created record.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Payment, error) {
	var p Payment
	if err := s.client.Post(ctx, "/payments", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Status fetches the current state of a payment.
func (s *Service) Status(ctx context.Context, id int64) (*Payment, error) {
	var p Payment
	if err := s.client.Get(ctx, fmt.Sprintf("/payments/%d/status", id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}
