package coreapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// AdminSummary returns dashboard counts for users, reservations, and fleet.
func (c *Client) AdminSummaryReport(ctx context.Context, token string) (*AdminSummary, error) {
	var out AdminSummary
	if err := c.do(ctx, "admin_summary", callParams{
		method: http.MethodGet,
		path:   "/api/admin/summary",
		token:  token,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminSalesReport returns period totals plus recent transactions.
func (c *Client) AdminSalesReport(ctx context.Context, token string, limit int) (*AdminSales, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var out AdminSales
	if err := c.do(ctx, "admin_sales", callParams{
		method: http.MethodGet,
		path:   "/api/admin/sales",
		token:  token,
		query:  query,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminPaymentAlerts lists reservations overdue for payment.
func (c *Client) AdminPaymentAlerts(ctx context.Context, token string, limit int) (*PaymentAlerts, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var out PaymentAlerts
	if err := c.do(ctx, "admin_payment_alerts", callParams{
		method: http.MethodGet,
		path:   "/api/admin/payment-alerts",
		token:  token,
		query:  query,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminCRMCases lists tracked cases built from tickets and operations.
func (c *Client) AdminCRMCases(ctx context.Context, token string, limit int) (*CRMReport, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var out CRMReport
	if err := c.do(ctx, "admin_crm", callParams{
		method: http.MethodGet,
		path:   "/api/admin/crm",
		token:  token,
		query:  query,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminUsers pages through registered users.
func (c *Client) AdminUsers(ctx context.Context, token string, skip, limit int) (*AdminUserList, error) {
	var out AdminUserList
	if err := c.do(ctx, "admin_users", callParams{
		method: http.MethodGet,
		path:   "/api/admin/users",
		token:  token,
		query:  pageQuery(skip, limit),
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminUpdateUserRole changes a user's role.
func (c *Client) AdminUpdateUserRole(ctx context.Context, token string, userID int64, req UserRoleUpdate) (*UserRoleUpdateResult, error) {
	var out UserRoleUpdateResult
	if err := c.do(ctx, "admin_update_user_role", callParams{
		method: http.MethodPatch,
		path:   "/api/admin/users/" + strconv.FormatInt(userID, 10) + "/role",
		token:  token,
		body:   req,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminReservations pages through all reservations.
func (c *Client) AdminReservations(ctx context.Context, token string, skip, limit int) (*AdminReservationList, error) {
	var out AdminReservationList
	if err := c.do(ctx, "admin_reservations", callParams{
		method: http.MethodGet,
		path:   "/api/admin/reservations",
		token:  token,
		query:  pageQuery(skip, limit),
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminUpdateReservation patches a reservation's status or notes.
func (c *Client) AdminUpdateReservation(ctx context.Context, token string, id int64, req AdminReservationUpdate) (*AdminReservationUpdateResult, error) {
	var out AdminReservationUpdateResult
	if err := c.do(ctx, "admin_update_reservation", callParams{
		method: http.MethodPatch,
		path:   "/api/admin/reservations/" + strconv.FormatInt(id, 10),
		token:  token,
		body:   req,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminVehicles pages through the fleet.
func (c *Client) AdminVehicles(ctx context.Context, token string, skip, limit int) (*AdminVehicleList, error) {
	var out AdminVehicleList
	if err := c.do(ctx, "admin_vehicles", callParams{
		method: http.MethodGet,
		path:   "/api/admin/vehicles",
		token:  token,
		query:  pageQuery(skip, limit),
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminUpdateVehicle patches a vehicle's status, activity, or prices.
func (c *Client) AdminUpdateVehicle(ctx context.Context, token string, id int64, req AdminVehicleUpdate) (*AdminVehicleUpdateResult, error) {
	var out AdminVehicleUpdateResult
	if err := c.do(ctx, "admin_update_vehicle", callParams{
		method: http.MethodPatch,
		path:   "/api/admin/vehicles/" + strconv.FormatInt(id, 10),
		token:  token,
		body:   req,
		out:    &out,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

func pageQuery(skip, limit int) url.Values {
	query := url.Values{}
	if skip > 0 {
		query.Set("skip", strconv.Itoa(skip))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	return query
}
