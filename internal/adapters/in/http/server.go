// Package http exposes the REST API consumed by the dispatch dashboard and
// the Telegram bot backend. Handlers translate requests into commands and
// queries; domain error kinds map onto HTTP status codes and internal
// details never leak past this boundary.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server holds the command and query handlers behind the REST API.
type Server struct {
	createOrder     commands.CreateOrderCommandHandler
	assignCourier   commands.AssignCourierCommandHandler
	acceptOffer     commands.AcceptOfferCommandHandler
	rejectOffer     commands.RejectOfferCommandHandler
	advanceStatus   commands.AdvanceStatusCommandHandler
	uploadPOD       commands.UploadPODCommandHandler
	reportIssue     commands.ReportIssueCommandHandler
	cancelOrder     commands.CancelOrderCommandHandler
	collectCOD      commands.CollectCODCommandHandler
	settleCOD       commands.SettleCODCommandHandler
	confirmTalangan commands.ConfirmTalanganCommandHandler

	createCourier       commands.CreateCourierCommandHandler
	generatePairingCode commands.GeneratePairingCodeCommandHandler
	linkCourierChat     commands.LinkCourierChatCommandHandler
	setCourierOnline    commands.SetCourierOnlineCommandHandler

	getActiveOrders queries.GetActiveOrdersQueryHandler
	getCourierBoard queries.GetCourierBoardQueryHandler
	getAllCouriers  queries.GetAllCouriersQueryHandler
}

// Handlers bundles everything the server needs; the composition root fills it.
type Handlers struct {
	CreateOrder     commands.CreateOrderCommandHandler
	AssignCourier   commands.AssignCourierCommandHandler
	AcceptOffer     commands.AcceptOfferCommandHandler
	RejectOffer     commands.RejectOfferCommandHandler
	AdvanceStatus   commands.AdvanceStatusCommandHandler
	UploadPOD       commands.UploadPODCommandHandler
	ReportIssue     commands.ReportIssueCommandHandler
	CancelOrder     commands.CancelOrderCommandHandler
	CollectCOD      commands.CollectCODCommandHandler
	SettleCOD       commands.SettleCODCommandHandler
	ConfirmTalangan commands.ConfirmTalanganCommandHandler

	CreateCourier       commands.CreateCourierCommandHandler
	GeneratePairingCode commands.GeneratePairingCodeCommandHandler
	LinkCourierChat     commands.LinkCourierChatCommandHandler
	SetCourierOnline    commands.SetCourierOnlineCommandHandler

	GetActiveOrders queries.GetActiveOrdersQueryHandler
	GetCourierBoard queries.GetCourierBoardQueryHandler
	GetAllCouriers  queries.GetAllCouriersQueryHandler
}

// NewServer creates the HTTP server from the assembled handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createOrder:         h.CreateOrder,
		assignCourier:       h.AssignCourier,
		acceptOffer:         h.AcceptOffer,
		rejectOffer:         h.RejectOffer,
		advanceStatus:       h.AdvanceStatus,
		uploadPOD:           h.UploadPOD,
		reportIssue:         h.ReportIssue,
		cancelOrder:         h.CancelOrder,
		collectCOD:          h.CollectCOD,
		settleCOD:           h.SettleCOD,
		confirmTalangan:     h.ConfirmTalangan,
		createCourier:       h.CreateCourier,
		generatePairingCode: h.GeneratePairingCode,
		linkCourierChat:     h.LinkCourierChat,
		setCourierOnline:    h.SetCourierOnline,
		getActiveOrders:     h.GetActiveOrders,
		getCourierBoard:     h.GetCourierBoard,
		getAllCouriers:      h.GetAllCouriers,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.POST("/orders/:orderId/assign", s.AssignCourier)
	api.POST("/orders/:orderId/accept", s.AcceptOffer)
	api.POST("/orders/:orderId/reject", s.RejectOffer)
	api.POST("/orders/:orderId/status", s.AdvanceStatus)
	api.POST("/orders/:orderId/pod", s.UploadPOD)
	api.POST("/orders/:orderId/issues", s.ReportIssue)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/cod/collect", s.CollectCOD)
	api.POST("/orders/:orderId/cod/settle", s.SettleCOD)
	api.POST("/orders/:orderId/talangan/confirm", s.ConfirmTalangan)

	api.POST("/couriers", s.CreateCourier)
	api.GET("/couriers", s.GetCouriers)
	api.GET("/couriers/:courierId/board", s.GetCourierBoard)
	api.POST("/couriers/:courierId/pairing-code", s.GeneratePairingCode)
	api.POST("/couriers/pair", s.LinkCourierChat)
	api.POST("/couriers/:courierId/online", s.SetCourierOnline)
}

// APIError is the JSON body returned for every failed request.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps domain error kinds to HTTP status codes. Client-caused
// failures echo the error text; infrastructure failures return a generic
// message so nothing internal leaks.
func respondError(ctx echo.Context, err error) error {
	code := statusCodeFor(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(code, APIError{Code: code, Message: message})
}

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrNotAuthorizedForOrder):
		return http.StatusForbidden
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderTerminal),
		errors.Is(err, order.ErrPreconditionFailed),
		errors.Is(err, courier.ErrCourierInactive),
		errors.Is(err, commands.ErrConcurrentModification):
		return http.StatusConflict
	case errors.Is(err, courier.ErrPairingCodeInvalid),
		errors.Is(err, courier.ErrPairingCodeExpired),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, APIError{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func parseUUIDParam(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func parseUUIDField(value string) (kernel.UUID, error) {
	return kernel.UUIDFromString(value)
}
