package http

import (
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type createCourierRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type courierCreatedResponse struct {
	ID string `json:"id"`
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req createCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(courierID, req.Name, req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, courierCreatedResponse{ID: courierID.String()})
}

type courierResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Online bool   `json:"online"`
	Active bool   `json:"active"`
	Linked bool   `json:"linked"`
}

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	rows, err := s.getAllCouriers.Handle(ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]courierResponse, len(rows))
	for i, row := range rows {
		response[i] = courierResponse{
			ID:     row.ID.String(),
			Name:   row.Name,
			Phone:  row.Phone,
			Online: row.Online,
			Active: row.Active,
			Linked: row.Linked,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type boardItemResponse struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	SenderName     string    `json:"sender_name"`
	SenderAddress  string    `json:"sender_address"`
	Total          int       `json:"total"`
	CODAmount      int       `json:"cod_amount"`
	TalanganAmount int       `json:"talangan_amount"`
	CreatedAt      time.Time `json:"created_at"`
}

// GetCourierBoard handles GET /api/v1/couriers/:courierId/board.
func (s *Server) GetCourierBoard(ctx echo.Context) error {
	courierID, err := parseUUIDParam(ctx, "courierId")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCourierBoardQuery(courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.getCourierBoard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]boardItemResponse, len(rows))
	for i, row := range rows {
		response[i] = boardItemResponse{
			ID:             row.ID.String(),
			Status:         row.Status,
			SenderName:     row.SenderName,
			SenderAddress:  row.SenderAddress,
			Total:          row.Total,
			CODAmount:      row.CODAmount,
			TalanganAmount: row.TalanganAmount,
			CreatedAt:      row.CreatedAt.UTC(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type pairingCodeResponse struct {
	Code string `json:"code"`
}

// GeneratePairingCode handles POST /api/v1/couriers/:courierId/pairing-code.
func (s *Server) GeneratePairingCode(ctx echo.Context) error {
	courierID, err := parseUUIDParam(ctx, "courierId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewGeneratePairingCodeCommand(courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	code, err := s.generatePairingCode.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, pairingCodeResponse{Code: code})
}

type linkChatRequest struct {
	Code   string `json:"code"`
	ChatID int64  `json:"chat_id"`
}

// LinkCourierChat handles POST /api/v1/couriers/pair. The bot backend calls
// this with the code a courier typed into their Telegram chat.
func (s *Server) LinkCourierChat(ctx echo.Context) error {
	var req linkChatRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewLinkCourierChatCommand(req.Code, req.ChatID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.linkCourierChat.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type setOnlineRequest struct {
	Online bool `json:"online"`
}

// SetCourierOnline handles POST /api/v1/couriers/:courierId/online.
func (s *Server) SetCourierOnline(ctx echo.Context) error {
	courierID, err := parseUUIDParam(ctx, "courierId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req setOnlineRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetCourierOnlineCommand(courierID, req.Online)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.setCourierOnline.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
