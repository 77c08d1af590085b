// Package http provides the inbound HTTP adapter: an echo server exposing the
// order API, request DTOs validated at the edge, and presenters producing the
// API's JSON envelopes.
package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// OrderItemRequest carries one line item in a creation or item-mutation body.
// The subtotal is never accepted from the client; it is derived server-side.
type OrderItemRequest struct {
	ProductName string  `json:"product_name" validate:"required,max=255"`
	Quantity    int     `json:"quantity"     validate:"required,min=1,max=9999"`
	UnitPrice   float64 `json:"unit_price"   validate:"required,gt=0,lte=999999.99"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name"  validate:"required,max=255"`
	CustomerEmail string             `json:"customer_email" validate:"required,email"`
	Notes         *string            `json:"notes"          validate:"omitempty,max=1000"`
	Items         []OrderItemRequest `json:"items"          validate:"omitempty,dive"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/orders/:id/status.
// The status value itself is validated against the state machine by the
// domain layer; the edge only requires its presence.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// RequestValidator adapts go-playground/validator to echo's Validator hook so
// handlers can call Context.Validate on bound request DTOs.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used by the echo server.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks a bound request DTO against its validation tags.
// Failures surface as 422 responses.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
