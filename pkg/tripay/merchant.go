package tripay

import (
	"context"
	"net/http"
	"strconv"
)

const channelCacheKey = "payment-channel"

// Instruction fetches the payment steps for a channel. PayCode, Amount and
// AllowHTML are only sent when set.
func (c *Client) Instruction(ctx context.Context, req InstructionRequest) (*Response, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var q query
	q.add("code", string(req.Code))
	if req.PayCode != "" {
		q.add("pay_code", req.PayCode)
	}
	if req.Amount > 0 {
		q.add("amount", strconv.FormatInt(req.Amount, 10))
	}
	if req.AllowHTML {
		q.add("allow_html", "true")
	}

	return c.do(ctx, "instruction", http.MethodGet, buildURL(c.endpoint, "/payment/instruction", q), nil)
}

// PaymentChannels lists the channels enabled for the merchant. With
// WithChannelCache the last successful answer is reused until it expires.
func (c *Client) PaymentChannels(ctx context.Context) (*Response, error) {
	if c.channels != nil {
		if v, ok := c.channels.Get(channelCacheKey); ok {
			return v.(*Response).clone(), nil
		}
	}

	resp, err := c.do(ctx, "payment_channels", http.MethodGet, buildURL(c.endpoint, "/merchant/payment-channel", nil), nil)
	if err != nil {
		return nil, err
	}

	if c.channels != nil && resp.Success {
		c.channels.SetDefault(channelCacheKey, resp.clone())
	}
	return resp, nil
}

func (c *Client) FeeCalculator(ctx context.Context, req FeeCalculatorRequest) (*Response, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var q query
	if req.Code != "" {
		q.add("code", string(req.Code))
	}
	q.add("amount", strconv.FormatInt(req.Amount, 10))

	return c.do(ctx, "fee_calculator", http.MethodGet, buildURL(c.endpoint, "/merchant/fee-calculator", q), nil)
}

func (c *Client) Transactions(ctx context.Context, req TransactionsRequest) (*Response, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var q query
	q.add("page", strconv.Itoa(req.Page))
	q.add("per_page", strconv.Itoa(req.PerPage))

	return c.do(ctx, "transactions", http.MethodGet, buildURL(c.endpoint, "/merchant/transactions", q), nil)
}
