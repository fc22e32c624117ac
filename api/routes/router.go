package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rutamovil/booking-gateway/api/controllers"
	"github.com/rutamovil/booking-gateway/api/middleware"
	"github.com/rutamovil/booking-gateway/internal/admin"
	"github.com/rutamovil/booking-gateway/internal/auth"
	checkoutsvc "github.com/rutamovil/booking-gateway/internal/checkout"
	"github.com/rutamovil/booking-gateway/internal/paymentmethods"
	"github.com/rutamovil/booking-gateway/internal/promotions"
	"github.com/rutamovil/booking-gateway/internal/reservations"
	"github.com/rutamovil/booking-gateway/internal/search"
	"github.com/rutamovil/booking-gateway/internal/support"
	"github.com/rutamovil/booking-gateway/pkg/config"
	"github.com/rutamovil/booking-gateway/pkg/logger"
	"github.com/rutamovil/booking-gateway/pkg/metrics"
	"github.com/rutamovil/booking-gateway/pkg/redis"
)

// Services bundles everything the HTTP surface needs. The struct keeps the
// constructor signature stable as endpoints grow.
type Services struct {
	Auth           auth.Service
	Search         search.Service
	Promotions     promotions.Service
	Checkout       checkoutsvc.Service
	Reservations   reservations.Service
	PaymentMethods paymentmethods.Service
	Support        support.Service
	Admin          admin.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	sessions middleware.SessionReader,
	svcs Services,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	httpMetrics := metrics.NewHTTPMetrics(registry)
	r.Use(middleware.Metrics(httpMetrics))

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisClient))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/auth/login", controllers.AuthLogin(svcs.Auth, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/auth/register", controllers.AuthRegister(svcs.Auth, logg))
		r.Post("/auth/forgot-password", controllers.AuthForgotPassword(svcs.Auth, logg))
		r.Post("/auth/reset-password", controllers.AuthResetPassword(svcs.Auth, logg))

		r.Route("/search", func(r chi.Router) {
			r.Post("/transport", controllers.SearchTransport(svcs.Search, logg))
			r.Get("/locations", controllers.SearchLocations(svcs.Search, logg))
			r.Get("/available-dates", controllers.SearchAvailableDates(svcs.Search, logg))
		})

		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", controllers.VehicleList(svcs.Search, logg))
			r.Get("/{vehicleId}", controllers.VehicleDetail(svcs.Search, logg))
		})

		r.Get("/promotions", controllers.PromotionsActive(svcs.Promotions, logg))

		r.Route("/support", func(r chi.Router) {
			r.Post("/tickets", controllers.SupportTicketCreate(svcs.Support, logg))
		})
		r.Post("/newsletter/subscribe", controllers.NewsletterSubscribe(svcs.Support, logg))
		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", controllers.ReviewList(svcs.Support, logg))
			r.Post("/", controllers.ReviewCreate(svcs.Support, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, sessions, logg))

			r.Post("/auth/logout", controllers.AuthLogout(svcs.Auth, logg))
			r.Get("/auth/me", controllers.AuthMe(svcs.Auth, logg))
			r.Patch("/auth/me", controllers.AuthUpdateProfile(svcs.Auth, logg))
			r.Post("/auth/change-password", controllers.AuthChangePassword(svcs.Auth, logg))

			r.Route("/checkout", func(r chi.Router) {
				r.Post("/", controllers.CheckoutBegin(svcs.Checkout, logg))
				r.Get("/", controllers.CheckoutList(svcs.Checkout, logg))
				r.Route("/{intentId}", func(r chi.Router) {
					r.Get("/", controllers.CheckoutGet(svcs.Checkout, logg))
					r.Patch("/", controllers.CheckoutUpdate(svcs.Checkout, logg))
					r.Get("/quote", controllers.CheckoutQuote(svcs.Checkout, logg))
					r.Post("/submit", controllers.CheckoutSubmit(svcs.Checkout, logg))
					r.Delete("/", controllers.CheckoutCancel(svcs.Checkout, logg))
				})
			})

			r.Route("/reservations", func(r chi.Router) {
				r.Get("/", controllers.ReservationList(svcs.Reservations, logg))
				r.Get("/stats", controllers.ReservationStats(svcs.Reservations, logg))
				r.Get("/{reservationId}", controllers.ReservationGet(svcs.Reservations, logg))
				r.Post("/{reservationId}/cancel", controllers.ReservationCancel(svcs.Reservations, logg))
			})

			r.Route("/payment-methods", func(r chi.Router) {
				r.Get("/", controllers.PaymentMethodList(svcs.PaymentMethods, logg))
				r.Post("/", controllers.PaymentMethodCreate(svcs.PaymentMethods, logg))
				r.Post("/{methodId}/default", controllers.PaymentMethodSetDefault(svcs.PaymentMethods, logg))
				r.Delete("/{methodId}", controllers.PaymentMethodDelete(svcs.PaymentMethods, logg))
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly(logg))
				r.Get("/summary", controllers.AdminSummary(svcs.Admin, logg))
				r.Get("/sales", controllers.AdminSales(svcs.Admin, logg))
				r.Get("/payment-alerts", controllers.AdminPaymentAlerts(svcs.Admin, logg))
				r.Get("/crm", controllers.AdminCRMCases(svcs.Admin, logg))
				r.Route("/users", func(r chi.Router) {
					r.Get("/", controllers.AdminUsers(svcs.Admin, logg))
					r.Put("/{userId}/role", controllers.AdminUpdateUserRole(svcs.Admin, logg))
				})
				r.Route("/reservations", func(r chi.Router) {
					r.Get("/", controllers.AdminReservations(svcs.Admin, logg))
					r.Patch("/{reservationId}", controllers.AdminUpdateReservation(svcs.Admin, logg))
				})
				r.Route("/vehicles", func(r chi.Router) {
					r.Get("/", controllers.AdminVehicles(svcs.Admin, logg))
					r.Patch("/{vehicleId}", controllers.AdminUpdateVehicle(svcs.Admin, logg))
				})
			})
		})
	})

	return r
}
