package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// MockGateway stands in for PayPal when no credentials are configured.
// Payments always succeed, which is enough for local development and
// for the frontend flow to be exercised end to end.
type MockGateway struct{}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (g *MockGateway) Name() string {
	return "mock"
}

func (g *MockGateway) CreatePayment(_ context.Context, r CreatePaymentRequest) (*CreatePaymentResult, error) {
	paymentID := "MOCK-" + uuid.NewString()
	return &CreatePaymentResult{
		PaymentID:   paymentID,
		ApprovalURL: fmt.Sprintf("%s?paymentId=%s&PayerID=MOCKPAYER", r.ReturnURL, paymentID),
	}, nil
}

func (g *MockGateway) ExecutePayment(_ context.Context, _, payerID string) (string, error) {
	return fmt.Sprintf("%s@mock.example.com", payerID), nil
}
