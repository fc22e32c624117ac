package coreapi

import (
	"context"
	"net/http"
	"strconv"
)

// PaymentMethods lists the user's saved cards.
func (c *Client) PaymentMethods(ctx context.Context, token string) (*PaymentMethodList, error) {
	var out PaymentMethodList
	if err := c.do(ctx, "payment_methods", callParams{
		method: http.MethodGet,
		path:   "/api/payment-methods/",
		token:  token,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePaymentMethod saves a new card for the user.
func (c *Client) CreatePaymentMethod(ctx context.Context, token string, req PaymentMethodCreate) (*PaymentMethod, error) {
	var out PaymentMethod
	if err := c.do(ctx, "create_payment_method", callParams{
		method: http.MethodPost,
		path:   "/api/payment-methods/",
		token:  token,
		body:   req,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetDefaultPaymentMethod marks one saved card as the default.
func (c *Client) SetDefaultPaymentMethod(ctx context.Context, token string, id int64) (*PaymentMethod, error) {
	var out PaymentMethod
	if err := c.do(ctx, "set_default_payment_method", callParams{
		method: http.MethodPut,
		path:   "/api/payment-methods/" + strconv.FormatInt(id, 10) + "/set-default",
		token:  token,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePaymentMethod removes a saved card.
func (c *Client) DeletePaymentMethod(ctx context.Context, token string, id int64) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.do(ctx, "delete_payment_method", callParams{
		method: http.MethodDelete,
		path:   "/api/payment-methods/" + strconv.FormatInt(id, 10),
		token:  token,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}
