package coreapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CreateSupportTicket files a ticket against a reservation folio.
func (c *Client) CreateSupportTicket(ctx context.Context, req SupportTicketCreate) (*SupportTicketResult, error) {
	var out SupportTicketResult
	if err := c.do(ctx, "create_support_ticket", callParams{
		method: http.MethodPost,
		path:   "/api/support/tickets",
		body:   req,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubscribeNewsletter signs an email up for offers.
func (c *Client) SubscribeNewsletter(ctx context.Context, req NewsletterSubscribeRequest) (*NewsletterResponse, error) {
	var out NewsletterResponse
	if err := c.do(ctx, "subscribe_newsletter", callParams{
		method: http.MethodPost,
		path:   "/api/newsletter/subscribe",
		body:   req,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reviews returns the latest reviews with the running average.
func (c *Client) Reviews(ctx context.Context, limit int) (*ReviewsResponse, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var out ReviewsResponse
	if err := c.do(ctx, "reviews", callParams{
		method: http.MethodGet,
		path:   "/api/reviews/",
		query:  query,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateReview publishes a review.
func (c *Client) CreateReview(ctx context.Context, req ReviewCreate) (*Review, error) {
	var out Review
	if err := c.do(ctx, "create_review", callParams{
		method: http.MethodPost,
		path:   "/api/reviews/",
		body:   req,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}
