// Package http exposes the application over REST. The caller's identity
// arrives in headers set by the gateway in front of this service; every
// mutation is authorized by the command handlers before touching state.
package http

import (
	"errors"
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers resolved by the gateway in front of this service.
const (
	HeaderUserID    = "X-User-Id"
	HeaderUserRole  = "X-User-Role"
	HeaderCompanyID = "X-Company-Id"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCompanyHandler   commands.CreateCompanyCommandHandler
	updateCompanyHandler   commands.UpdateCompanyCommandHandler
	createShipmentHandler  commands.CreateShipmentCommandHandler
	copyShipmentHandler    commands.CopyShipmentCommandHandler
	deleteShipmentHandler  commands.DeleteShipmentCommandHandler
	createOfferHandler     commands.CreateOfferCommandHandler
	acceptOfferHandler     commands.AcceptOfferCommandHandler
	rejectOfferHandler     commands.RejectOfferCommandHandler
	assignShipmentsHandler commands.AssignShipmentsToTruckCommandHandler
	loadTruckHandler       commands.LoadTruckCommandHandler
	startDeliveryHandler   commands.StartDeliveryCommandHandler
	closeDeliveryHandler   commands.CloseDeliveryCommandHandler

	// Query handlers
	getUnclaimedShipmentsHandler queries.GetUnclaimedShipmentsQueryHandler
	getActiveTrucksHandler       queries.GetActiveTrucksQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCompanyHandler commands.CreateCompanyCommandHandler,
	updateCompanyHandler commands.UpdateCompanyCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	copyShipmentHandler commands.CopyShipmentCommandHandler,
	deleteShipmentHandler commands.DeleteShipmentCommandHandler,
	createOfferHandler commands.CreateOfferCommandHandler,
	acceptOfferHandler commands.AcceptOfferCommandHandler,
	rejectOfferHandler commands.RejectOfferCommandHandler,
	assignShipmentsHandler commands.AssignShipmentsToTruckCommandHandler,
	loadTruckHandler commands.LoadTruckCommandHandler,
	startDeliveryHandler commands.StartDeliveryCommandHandler,
	closeDeliveryHandler commands.CloseDeliveryCommandHandler,
	getUnclaimedShipmentsHandler queries.GetUnclaimedShipmentsQueryHandler,
	getActiveTrucksHandler queries.GetActiveTrucksQueryHandler,
) *Server {
	return &Server{
		createCompanyHandler:         createCompanyHandler,
		updateCompanyHandler:         updateCompanyHandler,
		createShipmentHandler:        createShipmentHandler,
		copyShipmentHandler:          copyShipmentHandler,
		deleteShipmentHandler:        deleteShipmentHandler,
		createOfferHandler:           createOfferHandler,
		acceptOfferHandler:           acceptOfferHandler,
		rejectOfferHandler:           rejectOfferHandler,
		assignShipmentsHandler:       assignShipmentsHandler,
		loadTruckHandler:             loadTruckHandler,
		startDeliveryHandler:         startDeliveryHandler,
		closeDeliveryHandler:         closeDeliveryHandler,
		getUnclaimedShipmentsHandler: getUnclaimedShipmentsHandler,
		getActiveTrucksHandler:       getActiveTrucksHandler,
	}
}

// RegisterRoutes attaches all routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})

	v1 := e.Group("/api/v1")

	v1.POST("/companies", s.CreateCompany)
	v1.PUT("/companies/:companyId", s.UpdateCompany)
	v1.GET("/companies/:companyId/trucks", s.GetActiveTrucks)

	v1.POST("/shipments", s.CreateShipment)
	v1.GET("/shipments/unclaimed", s.GetUnclaimedShipments)
	v1.POST("/shipments/:shipmentId/copy", s.CopyShipment)
	v1.DELETE("/shipments/:shipmentId", s.DeleteShipment)
	v1.POST("/shipments/:shipmentId/offers", s.CreateOffer)

	v1.POST("/offers/:offerId/accept", s.AcceptOffer)
	v1.POST("/offers/:offerId/reject", s.RejectOffer)

	v1.POST("/trucks/:truckId/assignments", s.AssignShipmentsToTruck)

	v1.POST("/deliveries/:deliveryId/load", s.LoadTruck)
	v1.POST("/deliveries/:deliveryId/start", s.StartDelivery)
	v1.POST("/deliveries/:deliveryId/close", s.CloseDelivery)
}

// ErrorResponse is the JSON body returned on any failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IDResponse carries the identifier of a freshly created resource.
type IDResponse struct {
	ID string `json:"id"`
}

type createCompanyRequest struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	AdminEmails []string `json:"adminEmails"`
}

type updateCompanyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type createShipmentRequest struct {
	Name            string `json:"name"`
	SenderAddress   string `json:"senderAddress"`
	ReceiverAddress string `json:"receiverAddress"`
}

type createOfferRequest struct {
	Price int64  `json:"price"`
	Notes string `json:"notes"`
}

type assignShipmentsRequest struct {
	ShipmentIDs []string `json:"shipmentIds"`
}

type unclaimedShipmentResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	SenderAddress   string `json:"senderAddress"`
	ReceiverAddress string `json:"receiverAddress"`
}

type activeTruckResponse struct {
	ID               string `json:"id"`
	Plate            string `json:"plate"`
	MaintenanceDueAt string `json:"maintenanceDueAt"`
}

// CreateCompany handles POST /api/v1/companies.
func (s *Server) CreateCompany(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var req createCompanyRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCompanyCommand(actor, req.Name, req.Address, req.AdminEmails)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createCompanyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: cmd.CompanyID().String()})
}

// UpdateCompany handles PUT /api/v1/companies/:companyId.
func (s *Server) UpdateCompany(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	companyID, err := uuidParam(ctx, "companyId")
	if err != nil {
		return fail(ctx, err)
	}

	var req updateCompanyRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCompanyCommand(actor, companyID, req.Name, req.Address)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.updateCompanyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var req createShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateShipmentCommand(actor, req.Name, req.SenderAddress, req.ReceiverAddress)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: cmd.ShipmentID().String()})
}

// CopyShipment handles POST /api/v1/shipments/:shipmentId/copy.
func (s *Server) CopyShipment(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	shipmentID, err := uuidParam(ctx, "shipmentId")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCopyShipmentCommand(actor, shipmentID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.copyShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: cmd.NewShipmentID().String()})
}

// DeleteShipment handles DELETE /api/v1/shipments/:shipmentId.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	shipmentID, err := uuidParam(ctx, "shipmentId")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeleteShipmentCommand(actor, shipmentID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOffer handles POST /api/v1/shipments/:shipmentId/offers.
func (s *Server) CreateOffer(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	shipmentID, err := uuidParam(ctx, "shipmentId")
	if err != nil {
		return fail(ctx, err)
	}

	var req createOfferRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOfferCommand(actor, shipmentID, req.Price, req.Notes)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: cmd.OfferID().String()})
}

// AcceptOffer handles POST /api/v1/offers/:offerId/accept.
func (s *Server) AcceptOffer(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	offerID, err := uuidParam(ctx, "offerId")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAcceptOfferCommand(actor, offerID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.acceptOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOffer handles POST /api/v1/offers/:offerId/reject.
func (s *Server) RejectOffer(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	offerID, err := uuidParam(ctx, "offerId")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRejectOfferCommand(actor, offerID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.rejectOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignShipmentsToTruck handles POST /api/v1/trucks/:truckId/assignments.
func (s *Server) AssignShipmentsToTruck(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	truckID, err := uuidParam(ctx, "truckId")
	if err != nil {
		return fail(ctx, err)
	}

	var req assignShipmentsRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipmentIDs := make([]kernel.UUID, 0, len(req.ShipmentIDs))
	for _, raw := range req.ShipmentIDs {
		id, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return fail(ctx, parseErr)
		}
		shipmentIDs = append(shipmentIDs, id)
	}

	cmd, err := commands.NewAssignShipmentsToTruckCommand(actor, truckID, shipmentIDs)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.assignShipmentsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: cmd.DeliveryID().String()})
}

// LoadTruck handles POST /api/v1/deliveries/:deliveryId/load.
func (s *Server) LoadTruck(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	deliveryID, err := uuidParam(ctx, "deliveryId")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewLoadTruckCommand(actor, deliveryID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.loadTruckHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartDelivery handles POST /api/v1/deliveries/:deliveryId/start.
func (s *Server) StartDelivery(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	deliveryID, err := uuidParam(ctx, "deliveryId")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewStartDeliveryCommand(actor, deliveryID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.startDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CloseDelivery handles POST /api/v1/deliveries/:deliveryId/close.
func (s *Server) CloseDelivery(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	deliveryID, err := uuidParam(ctx, "deliveryId")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCloseDeliveryCommand(actor, deliveryID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.closeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUnclaimedShipments handles GET /api/v1/shipments/unclaimed.
func (s *Server) GetUnclaimedShipments(ctx echo.Context) error {
	query := queries.NewGetUnclaimedShipmentsQuery()

	shipments, err := s.getUnclaimedShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]unclaimedShipmentResponse, len(shipments))
	for i, item := range shipments {
		response[i] = unclaimedShipmentResponse{
			ID:              item.ID.String(),
			Name:            item.Name,
			SenderAddress:   item.SenderAddress,
			ReceiverAddress: item.ReceiverAddress,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveTrucks handles GET /api/v1/companies/:companyId/trucks.
func (s *Server) GetActiveTrucks(ctx echo.Context) error {
	companyID, err := uuidParam(ctx, "companyId")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetActiveTrucksQuery(companyID)
	if err != nil {
		return fail(ctx, err)
	}

	trucks, err := s.getActiveTrucksHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]activeTruckResponse, len(trucks))
	for i, item := range trucks {
		response[i] = activeTruckResponse{
			ID:               item.ID.String(),
			Plate:            item.Plate,
			MaintenanceDueAt: item.MaintenanceDueAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// actorFromRequest builds the acting identity from the gateway headers.
func actorFromRequest(ctx echo.Context) (account.Actor, error) {
	userID, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderUserID))
	if err != nil {
		return account.Actor{}, errs.NewValueIsInvalidErrorWithCause(HeaderUserID, err)
	}

	role, err := account.RoleFromString(ctx.Request().Header.Get(HeaderUserRole))
	if err != nil {
		return account.Actor{}, errs.NewValueIsInvalidErrorWithCause(HeaderUserRole, err)
	}

	var companyID *kernel.UUID
	if raw := ctx.Request().Header.Get(HeaderCompanyID); raw != "" {
		id, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return account.Actor{}, errs.NewValueIsInvalidErrorWithCause(HeaderCompanyID, parseErr)
		}
		companyID = &id
	}

	return account.NewActor(userID, role, companyID)
}

func uuidParam(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func fail(ctx echo.Context, err error) error {
	code := statusFromError(err)
	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// statusFromError maps the application error taxonomy onto HTTP statuses.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrAuthorizationDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConcurrentConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
