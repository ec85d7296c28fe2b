package dto

import (
	"github.com/shopspring/decimal"
)

// StatusSuccess is the status reported by every successful envelope.
const StatusSuccess = "success"

// Response is the envelope wrapped around every non-empty response body.
type Response[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
}

// Success wraps data in a success envelope.
func Success[T any](data T) Response[T] {
	return Response[T]{Status: StatusSuccess, Data: data}
}

// Price is an exact fixed-point amount. It stays a decimal internally and is
// only rendered, with two fractional digits rounded half-up, when encoded.
type Price struct {
	decimal.Decimal
}

// NewPrice wraps d.
func NewPrice(d decimal.Decimal) Price {
	return Price{Decimal: d}
}

// MarshalJSON encodes the price as a quoted string such as "12.50".
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.StringFixed(2) + `"`), nil
}
