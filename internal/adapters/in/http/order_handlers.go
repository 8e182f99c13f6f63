package http

import (
	"errors"
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type pointRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type createOrderRequest struct {
	SenderName     string       `json:"sender_name"`
	SenderPhone    string       `json:"sender_phone"`
	SenderAddress  string       `json:"sender_address"`
	Pickup         pointRequest `json:"pickup"`
	Dropoff        pointRequest `json:"dropoff"`
	Express        bool         `json:"express"`
	CODAmount      int          `json:"cod_amount"`
	TalanganAmount int          `json:"talangan_amount"`
}

type orderCreatedResponse struct {
	ID string `json:"id"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	pickup, err := kernel.NewPoint(req.Pickup.Lat, req.Pickup.Lon)
	if err != nil {
		return respondError(ctx, err)
	}
	dropoff, err := kernel.NewPoint(req.Dropoff.Lat, req.Dropoff.Lon)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		req.SenderName, req.SenderPhone, req.SenderAddress,
		pickup, dropoff,
		req.Express,
		req.CODAmount, req.TalanganAmount,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderCreatedResponse{ID: orderID.String()})
}

type assignCourierRequest struct {
	CourierID string `json:"courier_id"`
	AsOffer   bool   `json:"as_offer"`
	AdminID   string `json:"admin_id"`
}

// AssignCourier handles POST /api/v1/orders/:orderId/assign.
func (s *Server) AssignCourier(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req assignCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := parseUUIDField(req.CourierID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID, req.AsOffer, req.AdminID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type courierActionRequest struct {
	CourierID string `json:"courier_id"`
}

// AcceptOffer handles POST /api/v1/orders/:orderId/accept.
func (s *Server) AcceptOffer(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req courierActionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := parseUUIDField(req.CourierID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptOfferCommand(orderID, courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.acceptOffer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type rejectOfferRequest struct {
	CourierID string `json:"courier_id"`
	Reason    string `json:"reason"`
}

// RejectOffer handles POST /api/v1/orders/:orderId/reject.
func (s *Server) RejectOffer(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req rejectOfferRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := parseUUIDField(req.CourierID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRejectOfferCommand(orderID, courierID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.rejectOffer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type advanceStatusRequest struct {
	Status    string `json:"status"`
	CourierID string `json:"courier_id"`
	AdminID   string `json:"admin_id"`
}

// AdvanceStatus handles POST /api/v1/orders/:orderId/status. The caller is
// either the courier working the order or an admin stepping in; exactly one
// of courier_id and admin_id must be set.
func (s *Server) AdvanceStatus(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req advanceStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	actor, err := actorFromRequest(req.CourierID, req.AdminID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAdvanceStatusCommand(orderID, req.Status, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.advanceStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type uploadPODRequest struct {
	CourierID string `json:"courier_id"`
	PhotoURL  string `json:"photo_url"`
}

// UploadPOD handles POST /api/v1/orders/:orderId/pod.
func (s *Server) UploadPOD(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req uploadPODRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := parseUUIDField(req.CourierID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUploadPODCommand(orderID, courierID, req.PhotoURL)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.uploadPOD.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type reportIssueRequest struct {
	CourierID   string `json:"courier_id"`
	IssueType   string `json:"issue_type"`
	Description string `json:"description"`
}

// ReportIssue handles POST /api/v1/orders/:orderId/issues.
func (s *Server) ReportIssue(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req reportIssueRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := parseUUIDField(req.CourierID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReportIssueCommand(orderID, courierID, req.IssueType, req.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.reportIssue.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type adminActionRequest struct {
	AdminID string `json:"admin_id"`
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req adminActionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.AdminID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CollectCOD handles POST /api/v1/orders/:orderId/cod/collect.
func (s *Server) CollectCOD(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req courierActionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := parseUUIDField(req.CourierID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCollectCODCommand(orderID, courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.collectCOD.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SettleCOD handles POST /api/v1/orders/:orderId/cod/settle.
func (s *Server) SettleCOD(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req adminActionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSettleCODCommand(orderID, req.AdminID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.settleCOD.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmTalangan handles POST /api/v1/orders/:orderId/talangan/confirm.
func (s *Server) ConfirmTalangan(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req adminActionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewConfirmTalanganCommand(orderID, req.AdminID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.confirmTalangan.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type activeOrderResponse struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	CourierID  *string   `json:"courier_id,omitempty"`
	SenderName string    `json:"sender_name"`
	Total      int       `json:"total"`
	CODAmount  int       `json:"cod_amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	rows, err := s.getActiveOrders.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]activeOrderResponse, len(rows))
	for i, row := range rows {
		item := activeOrderResponse{
			ID:         row.ID.String(),
			Status:     row.Status,
			SenderName: row.SenderName,
			Total:      row.Total,
			CODAmount:  row.CODAmount,
			CreatedAt:  row.CreatedAt.UTC(),
		}
		if row.CourierID != nil {
			id := row.CourierID.String()
			item.CourierID = &id
		}
		response[i] = item
	}

	return ctx.JSON(http.StatusOK, response)
}

func actorFromRequest(courierID, adminID string) (order.Actor, error) {
	switch {
	case courierID != "" && adminID != "":
		return order.Actor{}, errors.New("courier_id and admin_id are mutually exclusive")
	case courierID != "":
		return order.NewCourierActor(courierID), nil
	case adminID != "":
		return order.NewAdminActor(adminID), nil
	default:
		return order.Actor{}, errors.New("either courier_id or admin_id is required")
	}
}
