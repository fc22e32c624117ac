package coreapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ActivePromotions lists the promotions currently in their validity window.
func (c *Client) ActivePromotions(ctx context.Context) ([]Promotion, error) {
	var out []Promotion
	if err := c.do(ctx, "active_promotions", callParams{
		method: http.MethodGet,
		path:   "/api/promotions/",
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// Promotion fetches one promotion by id.
func (c *Client) Promotion(ctx context.Context, id int64) (*Promotion, error) {
	var out Promotion
	if err := c.do(ctx, "promotion", callParams{
		method: http.MethodGet,
		path:   "/api/promotions/" + strconv.FormatInt(id, 10),
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchTransport runs the public transport search.
func (c *Client) SearchTransport(ctx context.Context, req TransportSearchRequest) (*SearchResponse, error) {
	var out SearchResponse
	if err := c.do(ctx, "search_transport", callParams{
		method: http.MethodPost,
		path:   "/api/search/transport",
		body:   req,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Locations returns every known origin/destination.
func (c *Client) Locations(ctx context.Context) (*LocationsResponse, error) {
	var out LocationsResponse
	if err := c.do(ctx, "locations", callParams{
		method: http.MethodGet,
		path:   "/api/search/locations",
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// AvailableDates returns departure dates for a route.
func (c *Client) AvailableDates(ctx context.Context, origen, destino string) (*AvailableDatesResponse, error) {
	query := url.Values{}
	query.Set("origen", origen)
	query.Set("destino", destino)
	var out AvailableDatesResponse
	if err := c.do(ctx, "available_dates", callParams{
		method: http.MethodGet,
		path:   "/api/search/available-dates",
		query:  query,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Vehicles lists rentable vehicles with optional filters.
func (c *Client) Vehicles(ctx context.Context, filter VehicleListFilter) (*VehicleList, error) {
	query := url.Values{}
	if filter.VehicleType != "" {
		query.Set("vehicle_type", filter.VehicleType)
	}
	if filter.MinCapacity > 0 {
		query.Set("min_capacity", strconv.Itoa(filter.MinCapacity))
	}
	if filter.MaxPrice != nil {
		query.Set("max_price", filter.MaxPrice.String())
	}
	if filter.Skip > 0 {
		query.Set("skip", strconv.Itoa(filter.Skip))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	var out VehicleList
	if err := c.do(ctx, "vehicles", callParams{
		method: http.MethodGet,
		path:   "/api/vehicles/",
		query:  query,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Vehicle fetches one vehicle by id.
func (c *Client) Vehicle(ctx context.Context, id int64) (*Vehicle, error) {
	var out Vehicle
	if err := c.do(ctx, "vehicle", callParams{
		method: http.MethodGet,
		path:   "/api/vehicles/" + strconv.FormatInt(id, 10),
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}
