package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/rutamovil/booking-gateway/api/responses"
	"github.com/rutamovil/booking-gateway/api/validators"
	"github.com/rutamovil/booking-gateway/internal/search"
	"github.com/rutamovil/booking-gateway/pkg/coreapi"
	pkgerrors "github.com/rutamovil/booking-gateway/pkg/errors"
	"github.com/rutamovil/booking-gateway/pkg/logger"
)

type transportSearchRequest struct {
	Origen       string `json:"origen" validate:"required"`
	Destino      string `json:"destino" validate:"required"`
	FechaSalida  string `json:"fecha_salida" validate:"required"`
	NumPasajeros int    `json:"num_pasajeros" validate:"required,min=1"`
}

func SearchTransport(svc search.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body transportSearchRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Transport(r.Context(), coreapi.TransportSearchRequest{
			Origen:       body.Origen,
			Destino:      body.Destino,
			FechaSalida:  body.FechaSalida,
			NumPasajeros: body.NumPasajeros,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func SearchLocations(svc search.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.Locations(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func SearchAvailableDates(svc search.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origen := strings.TrimSpace(r.URL.Query().Get("origen"))
		destino := strings.TrimSpace(r.URL.Query().Get("destino"))

		result, err := svc.AvailableDates(r.Context(), origen, destino)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func VehicleList(svc search.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, err := validators.ParseQueryInt(r, "skip", 0, 0, 1_000_000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", 50, 1, 200)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		minCapacity, err := validators.ParseQueryInt(r, "min_capacity", 0, 0, 100)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := coreapi.VehicleListFilter{
			VehicleType: strings.TrimSpace(r.URL.Query().Get("vehicle_type")),
			MinCapacity: minCapacity,
			Skip:        skip,
			Limit:       limit,
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("max_price")); raw != "" {
			maxPrice, perr := decimal.NewFromString(raw)
			if perr != nil || maxPrice.IsNegative() {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "max_price must be a non-negative number"))
				return
			}
			filter.MaxPrice = &maxPrice
		}
		result, err := svc.Vehicles(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func VehicleDetail(svc search.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "vehicleId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		vehicle, err := svc.Vehicle(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, vehicle)
	}
}
