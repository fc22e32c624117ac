package coreapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CreateReservation submits the reservation; the core API computes the
// persisted price, so the returned total is the source of truth.
func (c *Client) CreateReservation(ctx context.Context, token string, req ReservationCreate) (*Reservation, error) {
	var out Reservation
	if err := c.do(ctx, "create_reservation", callParams{
		method: http.MethodPost,
		path:   "/api/reservations/",
		token:  token,
		body:   req,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyReservations lists the authenticated user's reservations.
func (c *Client) MyReservations(ctx context.Context, token, statusFilter string) (*ReservationList, error) {
	query := url.Values{}
	if statusFilter != "" {
		query.Set("status_filter", statusFilter)
	}
	var out ReservationList
	if err := c.do(ctx, "my_reservations", callParams{
		method: http.MethodGet,
		path:   "/api/reservations/",
		token:  token,
		query:  query,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyReservationStats aggregates the user's reservation counts and spend.
func (c *Client) MyReservationStats(ctx context.Context, token string) (*ReservationStats, error) {
	var out ReservationStats
	if err := c.do(ctx, "reservation_stats", callParams{
		method: http.MethodGet,
		path:   "/api/reservations/stats",
		token:  token,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reservation fetches one of the user's reservations.
func (c *Client) Reservation(ctx context.Context, token string, id int64) (*Reservation, error) {
	var out Reservation
	if err := c.do(ctx, "reservation", callParams{
		method: http.MethodGet,
		path:   "/api/reservations/" + strconv.FormatInt(id, 10),
		token:  token,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelReservation cancels one of the user's reservations.
func (c *Client) CancelReservation(ctx context.Context, token string, id int64) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.do(ctx, "cancel_reservation", callParams{
		method: http.MethodDelete,
		path:   "/api/reservations/" + strconv.FormatInt(id, 10),
		token:  token,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}
