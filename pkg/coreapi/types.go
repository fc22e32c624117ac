package coreapi

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wire types follow the core API contract verbatim, Spanish field names
// included, so the gateway never silently renames upstream data.

// ===== Auth =====

type RegisterRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
	User      User   `json:"user"`
}

type UpdateProfileRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ===== Promotions =====

type Promotion struct {
	ID          int64   `json:"id"`
	Titulo      string  `json:"titulo"`
	Descripcion string  `json:"descripcion"`
	Descuento   float64 `json:"descuento"`
	ImagenURL   string  `json:"imagen_url,omitempty"`
	FechaInicio string  `json:"fecha_inicio"`
	FechaFin    string  `json:"fecha_fin"`
	Activa      bool    `json:"activa"`
}

// ===== Search =====

type TransportSearchRequest struct {
	Origen       string `json:"origen"`
	Destino      string `json:"destino"`
	FechaSalida  string `json:"fecha_salida"`
	NumPasajeros int    `json:"num_pasajeros"`
}

type TransportResult struct {
	ID          int64   `json:"id"`
	Tipo        string  `json:"tipo"`
	Origen      string  `json:"origen"`
	Destino     string  `json:"destino"`
	FechaSalida string  `json:"fecha_salida"`
	HoraSalida  string  `json:"hora_salida"`
	Capacidad   int     `json:"capacidad"`
	Precio      float64 `json:"precio"`
	Disponible  bool    `json:"disponible"`
	Empresa     string  `json:"empresa"`
}

type SearchResponse struct {
	Resultados []TransportResult `json:"resultados"`
	Total      int               `json:"total"`
}

type LocationsResponse struct {
	Ubicaciones []string `json:"ubicaciones"`
	Total       int      `json:"total"`
}

type AvailableDatesResponse struct {
	Origen            string   `json:"origen"`
	Destino           string   `json:"destino"`
	FechasDisponibles []string `json:"fechas_disponibles"`
	Total             int      `json:"total"`
}

// ===== Vehicles =====

type Vehicle struct {
	ID           int64            `json:"id"`
	Brand        string           `json:"brand"`
	Model        string           `json:"model"`
	Year         int              `json:"year"`
	VehicleType  string           `json:"vehicle_type"`
	Capacity     int              `json:"capacity"`
	Plate        string           `json:"plate"`
	Color        string           `json:"color,omitempty"`
	PricePerDay  decimal.Decimal  `json:"price_per_day"`
	PricePerHour *decimal.Decimal `json:"price_per_hour,omitempty"`
	Description  string           `json:"description,omitempty"`
	Features     string           `json:"features,omitempty"`
	ImageURL     string           `json:"image_url,omitempty"`
	Status       string           `json:"status"`
	IsActive     bool             `json:"is_active"`
	CreatedAt    time.Time        `json:"created_at"`
}

type VehicleList struct {
	Vehicles []Vehicle `json:"vehicles"`
	Total    int       `json:"total"`
}

type VehicleListFilter struct {
	VehicleType string
	MinCapacity int
	MaxPrice    *decimal.Decimal
	Skip        int
	Limit       int
}

// ===== Reservations =====

type ReservationCreate struct {
	VehicleID        int64     `json:"vehicle_id"`
	PromotionID      *int64    `json:"promotion_id,omitempty"`
	PaymentMethod    string    `json:"payment_method,omitempty"`
	PaymentReference string    `json:"payment_reference,omitempty"`
	PaymentNotes     string    `json:"payment_notes,omitempty"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	PickupLocation   string    `json:"pickup_location"`
	ReturnLocation   string    `json:"return_location,omitempty"`
	Notes            string    `json:"notes,omitempty"`
}

type Reservation struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user_id"`
	VehicleID      int64           `json:"vehicle_id"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	PickupLocation string          `json:"pickup_location"`
	ReturnLocation string          `json:"return_location,omitempty"`
	TotalDays      int             `json:"total_days"`
	PricePerDay    decimal.Decimal `json:"price_per_day"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
	CancelledAt    *time.Time      `json:"cancelled_at,omitempty"`
	Vehicle        *Vehicle        `json:"vehicle,omitempty"`
	UserName       string          `json:"user_name,omitempty"`
}

type ReservationList struct {
	Reservations []Reservation `json:"reservations"`
	Total        int           `json:"total"`
}

type ReservationStats struct {
	TotalReservations     int             `json:"total_reservations"`
	ActiveReservations    int             `json:"active_reservations"`
	CompletedReservations int             `json:"completed_reservations"`
	CancelledReservations int             `json:"cancelled_reservations"`
	TotalSpent            decimal.Decimal `json:"total_spent"`
}

// ===== Payment methods =====

type PaymentMethodCreate struct {
	CardType    string `json:"card_type"`
	CardHolder  string `json:"card_holder"`
	CardLast4   string `json:"card_last4"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	IsDefault   bool   `json:"is_default"`
}

type PaymentMethod struct {
	ID          int64     `json:"id"`
	CardType    string    `json:"card_type"`
	CardHolder  string    `json:"card_holder"`
	CardLast4   string    `json:"card_last4"`
	ExpiryMonth string    `json:"expiry_month"`
	ExpiryYear  string    `json:"expiry_year"`
	IsDefault   bool      `json:"is_default"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type PaymentMethodList struct {
	PaymentMethods []PaymentMethod `json:"payment_methods"`
	Total          int             `json:"total"`
}

// ===== Support / newsletter / reviews =====

type SupportTicketCreate struct {
	Folio        string `json:"folio"`
	IssueType    string `json:"issue_type"`
	Message      string `json:"message"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
}

type SupportTicketResult struct {
	Message       string    `json:"message"`
	TicketID      int64     `json:"ticket_id"`
	Folio         string    `json:"folio"`
	ReservationID int64     `json:"reservation_id"`
	Status        string    `json:"status"`
	InvoiceNumber string    `json:"invoice_number"`
	InvoiceFolio  string    `json:"invoice_folio"`
	CreatedAt     time.Time `json:"created_at"`
}

type NewsletterSubscribeRequest struct {
	Email string `json:"email"`
}

type NewsletterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Email   string `json:"email"`
}

type ReviewCreate struct {
	Usuario      string `json:"usuario"`
	Calificacion int    `json:"calificacion"`
	Comentario   string `json:"comentario"`
}

type Review struct {
	ID           int64  `json:"id"`
	Usuario      string `json:"usuario"`
	Calificacion int    `json:"calificacion"`
	Comentario   string `json:"comentario"`
	Fecha        string `json:"fecha"`
}

type ReviewsResponse struct {
	Reviews              []Review `json:"reviews"`
	PromedioCalificacion float64  `json:"promedio_calificacion"`
	TotalReviews         int      `json:"total_reviews"`
}

// ===== Admin =====

type AdminSummary struct {
	Users struct {
		Total   int `json:"total"`
		Admins  int `json:"admins"`
		Clients int `json:"clients"`
	} `json:"users"`
	Reservations struct {
		Total   int `json:"total"`
		Pending int `json:"pending"`
		Active  int `json:"active"`
	} `json:"reservations"`
	Vehicles struct {
		Total  int `json:"total"`
		Active int `json:"active"`
	} `json:"vehicles"`
	Alerts struct {
		PaymentOverdue int `json:"payment_overdue"`
	} `json:"alerts"`
}

type AdminSalesTotals struct {
	Day                   float64 `json:"day"`
	Month                 float64 `json:"month"`
	ClosedReservations    int     `json:"closed_reservations"`
	CancelledReservations int     `json:"cancelled_reservations"`
	AverageTicket         float64 `json:"average_ticket"`
	PaidCount             int     `json:"paid_count"`
	RefundPending         int     `json:"refund_pending"`
}

type AdminTransaction struct {
	ID                int64     `json:"id"`
	Folio             string    `json:"folio"`
	Client            string    `json:"client"`
	Channel           string    `json:"channel"`
	PaymentMethod     string    `json:"payment_method"`
	Amount            float64   `json:"amount"`
	Status            string    `json:"status"`
	ReservationStatus string    `json:"reservation_status"`
	RefundStatus      string    `json:"refund_status"`
	IsPaid            bool      `json:"is_paid"`
	CreatedAt         time.Time `json:"created_at"`
}

type AdminSales struct {
	Totals       AdminSalesTotals   `json:"totals"`
	Transactions []AdminTransaction `json:"transactions"`
}

type PaymentAlert struct {
	ReservationID      int64     `json:"reservation_id"`
	Folio              string    `json:"folio"`
	Client             string    `json:"client"`
	Email              string    `json:"email,omitempty"`
	Status             string    `json:"status"`
	AmountDue          float64   `json:"amount_due"`
	DaysWithoutPayment int       `json:"days_without_payment"`
	CreatedAt          time.Time `json:"created_at"`
}

type PaymentAlerts struct {
	Total         int            `json:"total"`
	ThresholdDays int            `json:"threshold_days"`
	Alerts        []PaymentAlert `json:"alerts"`
}

type CRMCase struct {
	CaseID            string     `json:"case_id"`
	TicketID          *int64     `json:"ticket_id"`
	Source            string     `json:"source"`
	ReservationID     int64      `json:"reservation_id"`
	Folio             string     `json:"folio"`
	Client            string     `json:"client"`
	Email             string     `json:"email,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	CaseType          string     `json:"case_type"`
	Priority          string     `json:"priority"`
	Status            string     `json:"status"`
	ReservationStatus string     `json:"reservation_status"`
	RefundStatus      string     `json:"refund_status"`
	Channel           string     `json:"channel"`
	Amount            float64    `json:"amount"`
	InvoiceNumber     string     `json:"invoice_number,omitempty"`
	Message           string     `json:"message"`
	LastUpdate        *time.Time `json:"last_update"`
	SLAAtRisk         bool       `json:"sla_at_risk"`
}

type CRMTotals struct {
	TotalCases    int `json:"total_cases"`
	OpenCases     int `json:"open_cases"`
	HighPriority  int `json:"high_priority"`
	RefundPending int `json:"refund_pending"`
	SLAAtRisk     int `json:"sla_at_risk"`
}

type CRMReport struct {
	Totals CRMTotals `json:"totals"`
	Cases  []CRMCase `json:"cases"`
}

type AdminUser struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminUserList struct {
	Total int         `json:"total"`
	Users []AdminUser `json:"users"`
}

type UserRoleUpdate struct {
	Role string `json:"role"`
}

type UserRoleUpdateResult struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
	Role    string `json:"role"`
}

type AdminReservation struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user_id"`
	UserName       string          `json:"user_name,omitempty"`
	UserEmail      string          `json:"user_email,omitempty"`
	VehicleID      int64           `json:"vehicle_id"`
	VehicleName    string          `json:"vehicle_name,omitempty"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	PickupLocation string          `json:"pickup_location"`
	ReturnLocation string          `json:"return_location,omitempty"`
	Status         string          `json:"status"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	AdminNotes     string          `json:"admin_notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

type AdminReservationList struct {
	Total        int                `json:"total"`
	Reservations []AdminReservation `json:"reservations"`
}

type AdminReservationUpdate struct {
	Status     *string `json:"status,omitempty"`
	AdminNotes *string `json:"admin_notes,omitempty"`
}

type AdminReservationUpdateResult struct {
	Message       string `json:"message"`
	ReservationID int64  `json:"reservation_id"`
	Status        string `json:"status"`
	AdminNotes    string `json:"admin_notes,omitempty"`
}

type AdminVehicle struct {
	ID           int64            `json:"id"`
	Brand        string           `json:"brand"`
	Model        string           `json:"model"`
	Year         int              `json:"year"`
	Plate        string           `json:"plate"`
	Status       string           `json:"status"`
	IsActive     bool             `json:"is_active"`
	Capacity     int              `json:"capacity"`
	PricePerDay  decimal.Decimal  `json:"price_per_day"`
	PricePerHour *decimal.Decimal `json:"price_per_hour,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

type AdminVehicleList struct {
	Total    int            `json:"total"`
	Vehicles []AdminVehicle `json:"vehicles"`
}

type AdminVehicleUpdate struct {
	Status       *string          `json:"status,omitempty"`
	IsActive     *bool            `json:"is_active,omitempty"`
	PricePerDay  *decimal.Decimal `json:"price_per_day,omitempty"`
	PricePerHour *decimal.Decimal `json:"price_per_hour,omitempty"`
}

type AdminVehicleUpdateResult struct {
	Message   string `json:"message"`
	VehicleID int64  `json:"vehicle_id"`
	Status    string `json:"status"`
}
