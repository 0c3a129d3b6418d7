package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Kaanops/wishfulfill.github.io/internal/config"
)

// PaypalGateway talks to the PayPal REST Payments API.
type PaypalGateway struct {
	httpClient   *http.Client
	baseAPIURL   string
	clientID     string
	clientSecret string
}

func NewPaypalGateway(cfg config.Paypal) *PaypalGateway {
	return &PaypalGateway{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseAPIURL:   cfg.BaseAPIURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
	}
}

func (g *PaypalGateway) Name() string {
	return "paypal"
}

func (g *PaypalGateway) getAccessToken(ctx context.Context) (string, error) {
	auth := base64.StdEncoding.EncodeToString(
		[]byte(g.clientID + ":" + g.clientSecret),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseAPIURL+"/v1/oauth2/token",
		bytes.NewBufferString("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", &Error{StatusCode: resp.StatusCode, Body: string(b)}
	}

	var res struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}

	return res.AccessToken, nil
}

type paypalLink struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

type paypalPaymentResult struct {
	ID    string       `json:"id"`
	State string       `json:"state"`
	Links []paypalLink `json:"links"`
	Payer struct {
		PayerInfo struct {
			Email string `json:"email"`
		} `json:"payer_info"`
	} `json:"payer"`
}

func (g *PaypalGateway) CreatePayment(ctx context.Context, r CreatePaymentRequest) (*CreatePaymentResult, error) {
	accessToken, err := g.getAccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("get paypal access token: %w", err)
	}

	payload := map[string]interface{}{
		"intent": "sale",
		"payer": map[string]string{
			"payment_method": "paypal",
		},
		"transactions": []map[string]interface{}{
			{
				"amount": map[string]string{
					"total":    fmt.Sprintf("%.2f", r.Amount),
					"currency": r.Currency,
				},
				"description": r.Description,
			},
		},
		"redirect_urls": map[string]string{
			"return_url": r.ReturnURL,
			"cancel_url": r.CancelURL,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseAPIURL+"/v1/payments/payment",
		bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paypal create request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, &Error{StatusCode: resp.StatusCode, Body: string(b)}
	}

	var result paypalPaymentResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode paypal response: %w", err)
	}

	approvalURL := extractApprovalURL(result.Links)
	if approvalURL == "" {
		return nil, fmt.Errorf("paypal response missing approval link")
	}

	return &CreatePaymentResult{
		PaymentID:   result.ID,
		ApprovalURL: approvalURL,
	}, nil
}

func (g *PaypalGateway) ExecutePayment(ctx context.Context, paymentID, payerID string) (string, error) {
	accessToken, err := g.getAccessToken(ctx)
	if err != nil {
		return "", fmt.Errorf("get paypal access token: %w", err)
	}

	body, err := json.Marshal(map[string]string{"payer_id": payerID})
	if err != nil {
		return "", fmt.Errorf("marshal req payload: %w", err)
	}

	url := fmt.Sprintf("%s/v1/payments/payment/%s/execute", g.baseAPIURL, paymentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("paypal execute request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", &Error{StatusCode: resp.StatusCode, Body: string(b)}
	}

	var result paypalPaymentResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode paypal response: %w", err)
	}

	return result.Payer.PayerInfo.Email, nil
}

func extractApprovalURL(links []paypalLink) string {
	for _, link := range links {
		if link.Rel == "approval_url" {
			return link.Href
		}
	}
	return ""
}
