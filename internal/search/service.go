package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rutamovil/booking-gateway/pkg/coreapi"
	pkgerrors "github.com/rutamovil/booking-gateway/pkg/errors"
)

const dateLayout = "2006-01-02"

// Service exposes the public catalog operations the browser uses: transport
// search, location/date pickers, and the vehicle listing.
type Service interface {
	Transport(ctx context.Context, req coreapi.TransportSearchRequest) (*coreapi.SearchResponse, error)
	Locations(ctx context.Context) (*coreapi.LocationsResponse, error)
	AvailableDates(ctx context.Context, origen, destino string) (*coreapi.AvailableDatesResponse, error)
	Vehicles(ctx context.Context, filter coreapi.VehicleListFilter) (*coreapi.VehicleList, error)
	Vehicle(ctx context.Context, id int64) (*coreapi.Vehicle, error)
}

type catalogClient interface {
	SearchTransport(ctx context.Context, req coreapi.TransportSearchRequest) (*coreapi.SearchResponse, error)
	Locations(ctx context.Context) (*coreapi.LocationsResponse, error)
	AvailableDates(ctx context.Context, origen, destino string) (*coreapi.AvailableDatesResponse, error)
	Vehicles(ctx context.Context, filter coreapi.VehicleListFilter) (*coreapi.VehicleList, error)
	Vehicle(ctx context.Context, id int64) (*coreapi.Vehicle, error)
}

type service struct {
	core catalogClient
}

// NewService constructs the catalog search service.
func NewService(core catalogClient) (Service, error) {
	if core == nil {
		return nil, fmt.Errorf("core api client is required")
	}
	return &service{core: core}, nil
}

func (s *service) Transport(ctx context.Context, req coreapi.TransportSearchRequest) (*coreapi.SearchResponse, error) {
	req.Origen = strings.TrimSpace(req.Origen)
	req.Destino = strings.TrimSpace(req.Destino)

	var violations []fieldViolation
	if req.Origen == "" {
		violations = append(violations, fieldViolation{Field: "origen", Message: "Selecciona el origen."})
	}
	if req.Destino == "" {
		violations = append(violations, fieldViolation{Field: "destino", Message: "Selecciona el destino."})
	}
	if req.FechaSalida == "" {
		violations = append(violations, fieldViolation{Field: "fecha_salida", Message: "Selecciona la fecha de salida."})
	} else if _, err := time.Parse(dateLayout, req.FechaSalida); err != nil {
		violations = append(violations, fieldViolation{Field: "fecha_salida", Message: "Fecha de salida invalida."})
	}
	if req.NumPasajeros < 1 {
		violations = append(violations, fieldViolation{Field: "num_pasajeros", Message: "Debe viajar al menos un pasajero."})
	}
	if len(violations) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "busqueda incompleta").WithDetails(violations)
	}

	return s.core.SearchTransport(ctx, req)
}

func (s *service) Locations(ctx context.Context) (*coreapi.LocationsResponse, error) {
	return s.core.Locations(ctx)
}

func (s *service) AvailableDates(ctx context.Context, origen, destino string) (*coreapi.AvailableDatesResponse, error) {
	origen = strings.TrimSpace(origen)
	destino = strings.TrimSpace(destino)
	if origen == "" || destino == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "origen y destino son requeridos")
	}
	return s.core.AvailableDates(ctx, origen, destino)
}

func (s *service) Vehicles(ctx context.Context, filter coreapi.VehicleListFilter) (*coreapi.VehicleList, error) {
	return s.core.Vehicles(ctx, filter)
}

func (s *service) Vehicle(ctx context.Context, id int64) (*coreapi.Vehicle, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vehiculo invalido")
	}
	return s.core.Vehicle(ctx, id)
}

type fieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
