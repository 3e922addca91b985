package tripay

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// CreateClosedTransaction signs and posts a single-use payment request.
// The expiry sent to Tripay is now + ExpiredTime hours (one hour when unset)
// as a Unix timestamp.
func (c *Client) CreateClosedTransaction(ctx context.Context, req ClosedTransactionRequest) (*Response, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	lifetime := int64(defaultExpiry / time.Second)
	if req.ExpiredTime > 0 {
		lifetime = int64(req.ExpiredTime) * int64(time.Hour/time.Second)
	}
	expiry := c.now().Unix() + lifetime

	payload := closedTransactionPayload{
		Method:        req.Method,
		MerchantRef:   req.MerchantRef,
		Amount:        req.Amount,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		OrderItems:    req.OrderItems,
		CallbackURL:   req.CallbackURL,
		ReturnURL:     req.ReturnURL,
		ExpiredTime:   expiry,
		Signature:     ClosedTransactionSignature(c.cfg.PrivateKey, c.cfg.MerchantCode, req.MerchantRef, req.Amount),
	}

	return c.do(ctx, "create_closed_transaction", http.MethodPost, buildURL(c.endpoint, "/transaction/create", nil), payload)
}

func (c *Client) ClosedTransactionDetail(ctx context.Context, reference string) (*Response, error) {
	if err := validateRequired("reference", reference); err != nil {
		return nil, err
	}

	var q query
	q.add("reference", reference)

	return c.do(ctx, "closed_transaction_detail", http.MethodGet, buildURL(c.endpoint, "/transaction/detail", q), nil)
}

// CreateOpenTransaction signs and posts a reusable payment request.
func (c *Client) CreateOpenTransaction(ctx context.Context, req OpenTransactionRequest) (*Response, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	payload := openTransactionPayload{
		Method:       req.Method,
		MerchantRef:  req.MerchantRef,
		CustomerName: req.CustomerName,
		Signature:    OpenTransactionSignature(c.cfg.PrivateKey, c.cfg.MerchantCode, req.Method, req.MerchantRef),
	}

	return c.do(ctx, "create_open_transaction", http.MethodPost, buildURL(OpenPaymentURL, "/create", nil), payload)
}

func (c *Client) OpenTransactionDetail(ctx context.Context, uuid string) (*Response, error) {
	if err := validateRequired("uuid", uuid); err != nil {
		return nil, err
	}

	return c.do(ctx, "open_transaction_detail", http.MethodGet, buildURL(OpenPaymentURL, "/"+url.PathEscape(uuid)+"/detail", nil), nil)
}

// OpenTransactions lists the payments received on an open payment.
func (c *Client) OpenTransactions(ctx context.Context, uuid string) (*Response, error) {
	if err := validateRequired("uuid", uuid); err != nil {
		return nil, err
	}

	return c.do(ctx, "open_transactions", http.MethodGet, buildURL(OpenPaymentURL, "/"+url.PathEscape(uuid)+"/transactions", nil), nil)
}
