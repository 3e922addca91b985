package tripay

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type InstructionRequest struct {
	Code      ClosedPaymentCode `json:"code" validate:"closed_code"`
	PayCode   string            `json:"pay_code,omitempty"`
	Amount    int64             `json:"amount,omitempty" validate:"gte=0"`
	AllowHTML bool              `json:"allow_html,omitempty"`
}

type FeeCalculatorRequest struct {
	Code   ClosedPaymentCode `json:"code,omitempty" validate:"omitempty,closed_code"`
	Amount int64             `json:"amount" validate:"gt=0"`
}

type TransactionsRequest struct {
	Page    int `json:"page" validate:"gte=1"`
	PerPage int `json:"per_page" validate:"gte=1"`
}

type OrderItem struct {
	SKU        string `json:"sku,omitempty"`
	Name       string `json:"name" validate:"required"`
	Price      int64  `json:"price" validate:"gte=0"`
	Quantity   int    `json:"quantity" validate:"gte=1"`
	Subtotal   int64  `json:"subtotal,omitempty" validate:"gte=0"`
	ProductURL string `json:"product_url,omitempty" validate:"omitempty,url"`
	ImageURL   string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// MaxExpiredTime is the longest closed transaction lifetime accepted, in hours.
const MaxExpiredTime = 24 * 365

// ClosedTransactionRequest describes a single-use payment. ExpiredTime is
// the lifetime in hours; zero means one hour.
type ClosedTransactionRequest struct {
	Method        ClosedPaymentCode `json:"method" validate:"closed_code"`
	MerchantRef   string            `json:"merchant_ref,omitempty"`
	Amount        int64             `json:"amount" validate:"gt=0"`
	CustomerName  string            `json:"customer_name" validate:"required"`
	CustomerEmail string            `json:"customer_email" validate:"required,email"`
	CustomerPhone string            `json:"customer_phone" validate:"required"`
	OrderItems    []OrderItem       `json:"order_items" validate:"required,min=1,dive"`
	CallbackURL   string            `json:"callback_url,omitempty" validate:"omitempty,url"`
	ReturnURL     string            `json:"return_url,omitempty" validate:"omitempty,url"`
	ExpiredTime   int               `json:"expired_time,omitempty" validate:"gte=0,lte=8760"`
}

type OpenTransactionRequest struct {
	Method       OpenPaymentCode `json:"method" validate:"open_code"`
	MerchantRef  string          `json:"merchant_ref,omitempty"`
	CustomerName string          `json:"customer_name" validate:"required"`
}

// closedTransactionPayload is the body posted to /transaction/create.
// ExpiredTime is an absolute Unix timestamp in seconds.
type closedTransactionPayload struct {
	Method        ClosedPaymentCode `json:"method"`
	MerchantRef   string            `json:"merchant_ref,omitempty"`
	Amount        int64             `json:"amount"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	CustomerPhone string            `json:"customer_phone"`
	OrderItems    []OrderItem       `json:"order_items"`
	CallbackURL   string            `json:"callback_url,omitempty"`
	ReturnURL     string            `json:"return_url,omitempty"`
	ExpiredTime   int64             `json:"expired_time"`
	Signature     string            `json:"signature"`
}

type openTransactionPayload struct {
	Method       OpenPaymentCode `json:"method"`
	MerchantRef  string          `json:"merchant_ref,omitempty"`
	CustomerName string          `json:"customer_name"`
	Signature    string          `json:"signature"`
}

// Response is the envelope every Tripay endpoint answers with. Data and
// Pagination are kept raw; use Decode and DecodePagination for typed access.
type Response struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data,omitempty"`
	Pagination json.RawMessage `json:"pagination,omitempty"`
}

// clone returns a copy that shares no memory with r.
func (r *Response) clone() *Response {
	out := *r
	out.Data = append(json.RawMessage(nil), r.Data...)
	out.Pagination = append(json.RawMessage(nil), r.Pagination...)
	return &out
}

func (r *Response) Decode(v any) error {
	return decodeRaw(r.Data, v)
}

func (r *Response) DecodePagination(p *Pagination) error {
	return decodeRaw(r.Pagination, p)
}

func decodeRaw(raw json.RawMessage, v any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ErrNoData
	}
	return json.Unmarshal(trimmed, v)
}

// Number accepts both JSON numbers and numeric strings. Tripay is not
// consistent about which one it sends for fee percentages.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

type Fee struct {
	Flat    Number `json:"flat"`
	Percent Number `json:"percent"`
}

type PaymentChannel struct {
	Group       string  `json:"group"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	FeeMerchant Fee     `json:"fee_merchant"`
	FeeCustomer Fee     `json:"fee_customer"`
	TotalFee    Fee     `json:"total_fee"`
	MinimumFee  *Number `json:"minimum_fee"`
	MaximumFee  *Number `json:"maximum_fee"`
	IconURL     string  `json:"icon_url"`
	Active      bool    `json:"active"`
}

type FeeDetail struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Fee  struct {
		Flat    Number  `json:"flat"`
		Percent Number  `json:"percent"`
		Min     *Number `json:"min"`
		Max     *Number `json:"max"`
	} `json:"fee"`
	TotalFee struct {
		Merchant Number `json:"merchant"`
		Customer Number `json:"customer"`
	} `json:"total_fee"`
}

type Instruction struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

type Transaction struct {
	Reference            string        `json:"reference"`
	MerchantRef          string        `json:"merchant_ref"`
	PaymentSelectionType string        `json:"payment_selection_type"`
	PaymentMethod        string        `json:"payment_method"`
	PaymentName          string        `json:"payment_name"`
	CustomerName         string        `json:"customer_name"`
	CustomerEmail        string        `json:"customer_email"`
	CustomerPhone        string        `json:"customer_phone"`
	CallbackURL          string        `json:"callback_url"`
	ReturnURL            string        `json:"return_url"`
	Amount               int64         `json:"amount"`
	FeeMerchant          int64         `json:"fee_merchant"`
	FeeCustomer          int64         `json:"fee_customer"`
	TotalFee             int64         `json:"total_fee"`
	AmountReceived       int64         `json:"amount_received"`
	PayCode              string        `json:"pay_code"`
	PayURL               string        `json:"pay_url"`
	CheckoutURL          string        `json:"checkout_url"`
	Status               string        `json:"status"`
	ExpiredTime          int64         `json:"expired_time"`
	OrderItems           []OrderItem   `json:"order_items"`
	Instructions         []Instruction `json:"instructions"`
	QRString             string        `json:"qr_string"`
	QRURL                string        `json:"qr_url"`
}

type OpenPayment struct {
	UUID          string `json:"uuid"`
	MerchantRef   string `json:"merchant_ref"`
	CustomerName  string `json:"customer_name"`
	PaymentName   string `json:"payment_name"`
	PaymentMethod string `json:"payment_method"`
	PayCode       string `json:"pay_code"`
	QRString      string `json:"qr_string"`
	QRURL         string `json:"qr_url"`
}

type Pagination struct {
	Sort         string `json:"sort"`
	CurrentPage  int    `json:"current_page"`
	PreviousPage *int   `json:"previous_page"`
	NextPage     *int   `json:"next_page"`
	LastPage     int    `json:"last_page"`
	PerPage      int    `json:"per_page"`
	TotalRecords int    `json:"total_records"`
}
