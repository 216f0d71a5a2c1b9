// Package http is the inbound HTTP adapter. It binds JSON requests,
// builds commands and queries, and maps use-case failures onto a uniform
// error body.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/application/usecases/queries"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/pkg/auth"
)

// RoleResolver resolves a caller's role by email. It is satisfied by
// queries.GetUserRoleQueryHandler and backs both the admin middleware and
// the role endpoint.
type RoleResolver interface {
	Handle(ctx context.Context, query queries.GetUserRoleQuery) (string, error)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	tokens *auth.TokenManager

	// Command handlers
	createParcelHandler        commands.CreateParcelCommandHandler
	confirmPaymentHandler      commands.ConfirmPaymentCommandHandler
	assignRiderHandler         commands.AssignRiderCommandHandler
	updateStatusHandler        commands.UpdateDeliveryStatusCommandHandler
	cashOutHandler             commands.CashOutParcelCommandHandler
	createRiderHandler         commands.CreateRiderCommandHandler
	setRiderStatusHandler      commands.SetRiderStatusCommandHandler
	registerUserHandler        commands.RegisterUserCommandHandler
	updateUserRoleHandler      commands.UpdateUserRoleCommandHandler
	createPaymentIntentHandler commands.CreatePaymentIntentCommandHandler

	// Query handlers
	getParcelHandler         queries.GetParcelQueryHandler
	getParcelsHandler        queries.GetParcelsQueryHandler
	getLatestParcelHandler   queries.GetLatestParcelQueryHandler
	trackParcelHandler       queries.TrackParcelQueryHandler
	getRidersHandler         queries.GetRidersQueryHandler
	getPaymentHistoryHandler queries.GetPaymentHistoryQueryHandler
	getUserRoleHandler       RoleResolver
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	tokens *auth.TokenManager,
	createParcelHandler commands.CreateParcelCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	assignRiderHandler commands.AssignRiderCommandHandler,
	updateStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	cashOutHandler commands.CashOutParcelCommandHandler,
	createRiderHandler commands.CreateRiderCommandHandler,
	setRiderStatusHandler commands.SetRiderStatusCommandHandler,
	registerUserHandler commands.RegisterUserCommandHandler,
	updateUserRoleHandler commands.UpdateUserRoleCommandHandler,
	createPaymentIntentHandler commands.CreatePaymentIntentCommandHandler,
	getParcelHandler queries.GetParcelQueryHandler,
	getParcelsHandler queries.GetParcelsQueryHandler,
	getLatestParcelHandler queries.GetLatestParcelQueryHandler,
	trackParcelHandler queries.TrackParcelQueryHandler,
	getRidersHandler queries.GetRidersQueryHandler,
	getPaymentHistoryHandler queries.GetPaymentHistoryQueryHandler,
	getUserRoleHandler RoleResolver,
) *Server {
	return &Server{
		tokens:                     tokens,
		createParcelHandler:        createParcelHandler,
		confirmPaymentHandler:      confirmPaymentHandler,
		assignRiderHandler:         assignRiderHandler,
		updateStatusHandler:        updateStatusHandler,
		cashOutHandler:             cashOutHandler,
		createRiderHandler:         createRiderHandler,
		setRiderStatusHandler:      setRiderStatusHandler,
		registerUserHandler:        registerUserHandler,
		updateUserRoleHandler:      updateUserRoleHandler,
		createPaymentIntentHandler: createPaymentIntentHandler,
		getParcelHandler:           getParcelHandler,
		getParcelsHandler:          getParcelsHandler,
		getLatestParcelHandler:     getLatestParcelHandler,
		trackParcelHandler:         trackParcelHandler,
		getRidersHandler:           getRidersHandler,
		getPaymentHistoryHandler:   getPaymentHistoryHandler,
		getUserRoleHandler:         getUserRoleHandler,
	}
}

// RegisterRoutes mounts all endpoints on the echo instance. Everything
// under /api/v1 except login requires a bearer token; mutation of riders,
// roles, assignments, and cashouts additionally requires the admin role.
func (s *Server) RegisterRoutes(e *echo.Echo, timeout time.Duration) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", requestTimeout(timeout))
	api.POST("/auth/login", s.Login)

	authed := api.Group("", s.requireAuth)
	authed.POST("/parcels", s.CreateParcel)
	authed.GET("/parcels", s.GetParcels)
	authed.GET("/parcels/latest", s.GetLatestParcel)
	authed.GET("/parcels/track/:code", s.TrackParcel)
	authed.GET("/parcels/:id", s.GetParcel)
	authed.PATCH("/parcels/:id/status", s.UpdateParcelStatus)
	authed.POST("/riders", s.CreateRider)
	authed.GET("/users/:email/role", s.GetUserRole)
	authed.POST("/payments/confirm", s.ConfirmPayment)
	authed.GET("/payments", s.GetPaymentHistory)
	authed.POST("/payments/intent", s.CreatePaymentIntent)

	admin := authed.Group("", s.requireAdmin)
	admin.POST("/parcels/:id/assign", s.AssignRider)
	admin.POST("/parcels/:id/cashout", s.CashOutParcel)
	admin.GET("/riders", s.GetRiders)
	admin.PATCH("/riders/:id/status", s.SetRiderStatus)
	admin.PATCH("/users/:email/role", s.UpdateUserRole)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Login handles POST /api/v1/auth/login. Sign-in is an upsert: first
// login creates the account, later logins refresh the display name and
// last-login time.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(request.Email, request.DisplayName)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	signedInUser, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	token, err := s.tokens.GenerateToken(signedInUser.Email())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token: token,
		Role:  signedInUser.Role().String(),
	})
}

// CreateParcel handles POST /api/v1/parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var request CreateParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(),
		request.SenderEmail,
		request.ReceiverName,
		request.ReceiverAddress,
		request.WeightGrams,
		request.CostAmount,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, parcelFromDomain(created))
}

// GetParcels handles GET /api/v1/parcels?email=. Without an explicit
// email filter it lists the caller's own parcels.
func (s *Server) GetParcels(ctx echo.Context) error {
	email := ctx.QueryParam("email")
	if email == "" {
		email = callerEmail(ctx)
	}

	query, err := queries.NewGetParcelsQuery(email)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	parcels, err := s.getParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ParcelResponse, len(parcels))
	for i, p := range parcels {
		response[i] = parcelFromReadModel(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLatestParcel handles GET /api/v1/parcels/latest?email=. The email
// filter is optional; without it the newest parcel overall is returned.
func (s *Server) GetLatestParcel(ctx echo.Context) error {
	query := queries.NewGetLatestParcelQuery(ctx.QueryParam("email"))

	latest, err := s.getLatestParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelFromReadModel(latest))
}

// GetParcel handles GET /api/v1/parcels/:id.
func (s *Server) GetParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	found, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelFromReadModel(found))
}

// TrackParcel handles GET /api/v1/parcels/track/:code. The response is
// the public subset of parcel state, keyed by tracking code.
func (s *Server) TrackParcel(ctx echo.Context) error {
	trackingCode, err := kernel.TrackingCodeFromString(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "invalid tracking code")
	}

	query, err := queries.NewTrackParcelQuery(trackingCode)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	tracked, err := s.trackParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackParcelResponse{
		TrackingCode:   tracked.TrackingCode,
		DeliveryStatus: tracked.DeliveryStatus,
		ReceiverName:   tracked.ReceiverName,
		RiderName:      tracked.RiderName,
		CreatedAt:      tracked.CreatedAt,
	})
}

// UpdateParcelStatus handles PATCH /api/v1/parcels/:id/status.
func (s *Server) UpdateParcelStatus(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	var request UpdateParcelStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := parcel.DeliveryStatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "unknown delivery status: "+request.Status)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(parcelID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignRider handles POST /api/v1/parcels/:id/assign.
func (s *Server) AssignRider(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	var request AssignRiderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	riderID, err := kernel.UUIDFromString(request.RiderID)
	if err != nil {
		return badRequest(ctx, "invalid rider id")
	}

	cmd, err := commands.NewAssignRiderCommand(parcelID, riderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.assignRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CashOutParcel handles POST /api/v1/parcels/:id/cashout.
func (s *Server) CashOutParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	var request CashoutRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCashOutParcelCommand(parcelID, request.Amount)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cashOutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateRider handles POST /api/v1/riders. New riders start pending until
// an admin approves them.
func (s *Server) CreateRider(ctx echo.Context) error {
	var request CreateRiderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateRiderCommand(
		kernel.NewUUID(),
		request.Name,
		request.Email,
		request.Phone,
		request.District,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.createRiderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, riderFromDomain(created))
}

// GetRiders handles GET /api/v1/riders?status=.
func (s *Server) GetRiders(ctx echo.Context) error {
	status, err := rider.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "unknown rider status: "+ctx.QueryParam("status"))
	}

	query, err := queries.NewGetRidersQuery(status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	riders, err := s.getRidersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]RiderResponse, len(riders))
	for i, r := range riders {
		response[i] = riderFromReadModel(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetRiderStatus handles PATCH /api/v1/riders/:id/status.
func (s *Server) SetRiderStatus(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid rider id")
	}

	var request SetRiderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := rider.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "unknown rider status: "+request.Status)
	}

	cmd, err := commands.NewSetRiderStatusCommand(riderID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.setRiderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUserRole handles GET /api/v1/users/:email/role.
func (s *Server) GetUserRole(ctx echo.Context) error {
	query, err := queries.NewGetUserRoleQuery(ctx.Param("email"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	role, err := s.getUserRoleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, UserRoleResponse{
		Email: ctx.Param("email"),
		Role:  role,
	})
}

// UpdateUserRole handles PATCH /api/v1/users/:email/role.
func (s *Server) UpdateUserRole(ctx echo.Context) error {
	var request UpdateUserRoleRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	role, err := user.RoleFromString(request.Role)
	if err != nil {
		return badRequest(ctx, "unknown role: "+request.Role)
	}

	cmd, err := commands.NewUpdateUserRoleCommand(ctx.Param("email"), role)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.updateUserRoleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userFromDomain(updated))
}

// ConfirmPayment handles POST /api/v1/payments/confirm. Replaying the
// same transaction id returns the original payment record.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	var request ConfirmPaymentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	parcelID, err := kernel.UUIDFromString(request.ParcelID)
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	payerEmail := request.PayerEmail
	if payerEmail == "" {
		payerEmail = callerEmail(ctx)
	}

	cmd, err := commands.NewConfirmPaymentCommand(
		parcelID,
		payerEmail,
		request.Amount,
		request.Currency,
		request.Method,
		request.TransactionID,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	confirmed, err := s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentFromDomain(confirmed))
}

// GetPaymentHistory handles GET /api/v1/payments?email=. Without an
// explicit filter it lists the caller's own payments.
func (s *Server) GetPaymentHistory(ctx echo.Context) error {
	email := ctx.QueryParam("email")
	if email == "" {
		email = callerEmail(ctx)
	}

	query, err := queries.NewGetPaymentHistoryQuery(email)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	payments, err := s.getPaymentHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		response[i] = paymentFromReadModel(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePaymentIntent handles POST /api/v1/payments/intent.
func (s *Server) CreatePaymentIntent(ctx echo.Context) error {
	var request PaymentIntentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreatePaymentIntentCommand(request.Amount, request.Currency)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	intent, err := s.createPaymentIntentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, intentFromPort(intent))
}
