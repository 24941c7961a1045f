package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type PaymeeClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *zap.Logger
}

func NewPaymee(baseURL, apiKey string, log *zap.Logger) *PaymeeClient {
	return &PaymeeClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     log.Named("providers.paymee"),
	}
}

type paymeeCreateRequest struct {
	Amount     float64 `json:"amount"`
	Note       string  `json:"note"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	ReturnURL  string  `json:"return_url"`
	CancelURL  string  `json:"cancel_url"`
	WebhookURL string  `json:"webhook_url"`
}

type paymeeCreateResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Token      string `json:"token"`
		PaymentURL string `json:"payment_url"`
	} `json:"data"`
}

func (c *PaymeeClient) CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutSession, error) {
	body, err := json.Marshal(paymeeCreateRequest{
		Amount:     req.Amount,
		Note:       req.Note,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		ReturnURL:  req.ReturnURL,
		CancelURL:  req.CancelURL,
		WebhookURL: req.WebhookURL,
	})
	if err != nil {
		return CheckoutSession{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v2/payments/create", bytes.NewReader(body))
	if err != nil {
		return CheckoutSession{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Token "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Error("paymee create checkout", zap.Error(err))
		return CheckoutSession{}, ErrGatewayUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error("paymee create checkout", zap.Int("status", resp.StatusCode))
		return CheckoutSession{}, ErrGatewayUnavailable
	}

	var out paymeeCreateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return CheckoutSession{}, err
	}
	if !out.Status || out.Data.Token == "" {
		c.log.Error("paymee create checkout rejected", zap.String("message", out.Message))
		return CheckoutSession{}, fmt.Errorf("paymee: %s", out.Message)
	}

	return CheckoutSession{
		Token:      out.Data.Token,
		PaymentURL: out.Data.PaymentURL,
	}, nil
}
