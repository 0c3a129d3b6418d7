package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Kaanops/wishfulfill.github.io/internal/services"
	"github.com/gorilla/mux"
)

type PaymentHandler struct {
	Service *services.PaymentService
}

func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: service}
}

type createPaymentRequest struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Purpose   string  `json:"purpose"`
	WishID    string  `json:"wish_id,omitempty"`
	ReturnURL string  `json:"return_url"`
	CancelURL string  `json:"cancel_url"`
}

type createPaymentResponse struct {
	PaymentID     string `json:"payment_id"`
	TransactionID string `json:"transaction_id"`
	ApprovalURL   string `json:"approval_url"`
	Status        string `json:"status"`
}

// CreatePaymentHandler initiates a hosted payment at the provider.
func (h *PaymentHandler) CreatePaymentHandler(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	out, err := h.Service.CreatePayment(r.Context(), services.CreatePaymentInput{
		Amount:    req.Amount,
		Currency:  req.Currency,
		Purpose:   req.Purpose,
		WishID:    req.WishID,
		ReturnURL: req.ReturnURL,
		CancelURL: req.CancelURL,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, createPaymentResponse{
		PaymentID:     out.PaymentID,
		TransactionID: out.TransactionID,
		ApprovalURL:   out.ApprovalURL,
		Status:        "created",
	})
}

// ExecutePaymentHandler finalizes an approved payment and reconciles
// the linked wish.
func (h *PaymentHandler) ExecutePaymentHandler(w http.ResponseWriter, r *http.Request) {
	paymentID := r.URL.Query().Get("payment_id")
	payerID := r.URL.Query().Get("payer_id")
	if paymentID == "" || payerID == "" {
		http.Error(w, "payment_id and payer_id are required", http.StatusBadRequest)
		return
	}

	out, err := h.Service.ExecutePayment(r.Context(), paymentID, payerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":         out.Status,
		"payment_id":     out.PaymentID,
		"transaction_id": out.TransactionID,
	})
}

// GetPaymentStatusHandler returns the transaction recorded for a
// provider payment id.
func (h *PaymentHandler) GetPaymentStatusHandler(w http.ResponseWriter, r *http.Request) {
	paymentID := mux.Vars(r)["payment_id"]

	txn, err := h.Service.GetPaymentStatus(r.Context(), paymentID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, txn)
}
