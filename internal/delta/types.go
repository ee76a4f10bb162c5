package delta

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Contract states reported by the exchange.
const (
	StateLive    = "live"
	StateExpired = "expired"
)

// ContractTypeMoveOptions selects move option contracts in a products request.
const ContractTypeMoveOptions = "move_options"

// ProductsResponse is the envelope from GET /v2/products.
type ProductsResponse struct {
	Success bool       `json:"success"`
	Result  []Product  `json:"result"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody is the failure payload inside an envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Product represents a product from the Delta Exchange API. The exchange
// is inconsistent about numeric field encodings (string, number, or null
// depending on product and state), so the flexible field types below
// absorb that instead of failing the whole listing.
type Product struct {
	Symbol       string      `json:"symbol"`
	State        string      `json:"state"`
	ContractType string      `json:"contract_type"`
	StrikePrice  StringValue `json:"strike_price"`
	MarkPrice    NumberValue `json:"mark_price"`
	Turnover24h  NumberValue `json:"turnover_24h"`
}

// GetProductsOptions configures a GetProducts request.
type GetProductsOptions struct {
	ContractTypes string
	States        string
}

// StringValue decodes a JSON string, number, or null into a string.
// Null becomes the empty string; numbers keep their literal form.
type StringValue string

func (v *StringValue) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*v = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*v = ""
			return nil
		}
		*v = StringValue(str)
		return nil
	}
	*v = StringValue(s)
	return nil
}

// NumberValue decodes a JSON string, number, or null into a float64.
// Missing or non-numeric values become 0; decoding never fails, so one
// malformed field cannot abort a whole product listing.
type NumberValue float64

func (v *NumberValue) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*v = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*v = 0
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			*v = 0
			return nil
		}
		*v = NumberValue(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*v = 0
		return nil
	}
	*v = NumberValue(f)
	return nil
}
