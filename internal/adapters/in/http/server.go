// Package http exposes the matching engine over a JSON HTTP API.
// One route per engine operation; actor identity is taken from the request
// body and trusted as-is.
package http

import (
	"net/http"

	"parcelmatch/internal/core/application/usecases/commands"
	"parcelmatch/internal/core/application/usecases/queries"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/shipment"
	"parcelmatch/internal/metrics"
	"parcelmatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createShipmentHandler       commands.CreateShipmentCommandHandler
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler
	confirmHandoverHandler      commands.ConfirmHandoverCommandHandler
	confirmDeliveryHandler      commands.ConfirmDeliveryCommandHandler
	createOfferHandler          commands.CreateOfferCommandHandler
	acceptOfferHandler          commands.AcceptOfferCommandHandler
	rejectOfferHandler          commands.RejectOfferCommandHandler
	holdPaymentHandler          commands.HoldPaymentCommandHandler
	releasePaymentHandler       commands.ReleasePaymentCommandHandler
	refundPaymentHandler        commands.RefundPaymentCommandHandler

	getShipmentHandler       queries.GetShipmentQueryHandler
	getOpenShipmentsHandler  queries.GetOpenShipmentsQueryHandler
	getShipmentOffersHandler queries.GetShipmentOffersQueryHandler
	getShipmentLedgerHandler queries.GetShipmentLedgerQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler,
	confirmHandoverHandler commands.ConfirmHandoverCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	createOfferHandler commands.CreateOfferCommandHandler,
	acceptOfferHandler commands.AcceptOfferCommandHandler,
	rejectOfferHandler commands.RejectOfferCommandHandler,
	holdPaymentHandler commands.HoldPaymentCommandHandler,
	releasePaymentHandler commands.ReleasePaymentCommandHandler,
	refundPaymentHandler commands.RefundPaymentCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getOpenShipmentsHandler queries.GetOpenShipmentsQueryHandler,
	getShipmentOffersHandler queries.GetShipmentOffersQueryHandler,
	getShipmentLedgerHandler queries.GetShipmentLedgerQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:       createShipmentHandler,
		updateShipmentStatusHandler: updateShipmentStatusHandler,
		confirmHandoverHandler:      confirmHandoverHandler,
		confirmDeliveryHandler:      confirmDeliveryHandler,
		createOfferHandler:          createOfferHandler,
		acceptOfferHandler:          acceptOfferHandler,
		rejectOfferHandler:          rejectOfferHandler,
		holdPaymentHandler:          holdPaymentHandler,
		releasePaymentHandler:       releasePaymentHandler,
		refundPaymentHandler:        refundPaymentHandler,
		getShipmentHandler:          getShipmentHandler,
		getOpenShipmentsHandler:     getOpenShipmentsHandler,
		getShipmentOffersHandler:    getShipmentOffersHandler,
		getShipmentLedgerHandler:    getShipmentLedgerHandler,
	}
}

// RegisterRoutes wires every engine operation under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.GetOpenShipments)
	api.GET("/shipments/:shipmentId", s.GetShipment)
	api.POST("/shipments/:shipmentId/status", s.UpdateShipmentStatus)
	api.POST("/shipments/:shipmentId/handover", s.ConfirmHandover)
	api.POST("/shipments/:shipmentId/delivery", s.ConfirmDelivery)

	api.POST("/shipments/:shipmentId/offers", s.CreateOffer)
	api.GET("/shipments/:shipmentId/offers", s.GetShipmentOffers)
	api.POST("/offers/:offerId/accept", s.AcceptOffer)
	api.POST("/offers/:offerId/reject", s.RejectOffer)

	api.POST("/shipments/:shipmentId/payment/hold", s.HoldPayment)
	api.POST("/shipments/:shipmentId/payment/release", s.ReleasePayment)
	api.POST("/shipments/:shipmentId/payment/refund", s.RefundPayment)
	api.GET("/shipments/:shipmentId/ledger", s.GetShipmentLedger)
}

func fail(ctx echo.Context, operation string, err error) error {
	metrics.OperationErrorsTotal.WithLabelValues(operation).Inc()
	return writeError(ctx, err)
}

// pathUUID and bodyUUID wrap parse failures as validation errors, so a
// malformed identifier surfaces as 400 rather than 500.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return bodyUUID(name, ctx.Param(name))
}

func bodyUUID(name, value string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	senderID, err := bodyUUID("senderId", req.SenderID)
	if err != nil {
		return fail(ctx, "createShipment", err)
	}
	price, err := kernel.NewMoney(req.PriceAmount, req.PriceCurrency)
	if err != nil {
		return fail(ctx, "createShipment", err)
	}

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), senderID, req.Origin, req.Destination, req.WeightGrams, req.Content, price)
	if err != nil {
		return fail(ctx, "createShipment", err)
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, "createShipment", err)
	}

	return ctx.JSON(http.StatusCreated, toShipmentResponse(created))
}

// UpdateShipmentStatus handles POST /api/v1/shipments/:shipmentId/status.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return fail(ctx, "updateShipmentStatus", err)
	}

	var req UpdateShipmentStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	actorID, err := bodyUUID("actorId", req.ActorID)
	if err != nil {
		return fail(ctx, "updateShipmentStatus", err)
	}

	target, ok := parseTargetStatus(req.Status)
	if !ok {
		return writeBadRequest(ctx, "status must be one of Cancelled, OnWay, Delivered")
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(shipmentID, actorID, target)
	if err != nil {
		return fail(ctx, "updateShipmentStatus", err)
	}

	updated, err := s.updateShipmentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, "updateShipmentStatus", err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(updated))
}

// ConfirmHandover handles POST /api/v1/shipments/:shipmentId/handover.
func (s *Server) ConfirmHandover(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return fail(ctx, "confirmHandover", err)
	}

	var req ActorRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	actorID, err := bodyUUID("actorId", req.ActorID)
	if err != nil {
		return fail(ctx, "confirmHandover", err)
	}

	cmd, err := commands.NewConfirmHandoverCommand(shipmentID, actorID)
	if err != nil {
		return fail(ctx, "confirmHandover", err)
	}

	result, err := s.confirmHandoverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, "confirmHandover", err)
	}

	return ctx.JSON(http.StatusOK, ConfirmationResponse{
		Shipment:      toShipmentResponse(result.Shipment),
		BothConfirmed: result.BothConfirmed,
		Message:       result.Message,
	})
}

// ConfirmDelivery handles POST /api/v1/shipments/:shipmentId/delivery.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return fail(ctx, "confirmDelivery", err)
	}

	var req ActorRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	actorID, err := bodyUUID("actorId", req.ActorID)
	if err != nil {
		return fail(ctx, "confirmDelivery", err)
	}

	cmd, err := commands.NewConfirmDeliveryCommand(shipmentID, actorID)
	if err != nil {
		return fail(ctx, "confirmDelivery", err)
	}

	result, err := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, "confirmDelivery", err)
	}

	return ctx.JSON(http.StatusOK, ConfirmationResponse{
		Shipment:      toShipmentResponse(result.Shipment),
		BothConfirmed: result.BothConfirmed,
		Message:       result.Message,
	})
}

// CreateOffer handles POST /api/v1/shipments/:shipmentId/offers.
func (s *Server) CreateOffer(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return fail(ctx, "createOffer", err)
	}

	var req CreateOfferRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	courierID, err := bodyUUID("courierId", req.CourierID)
	if err != nil {
		return fail(ctx, "createOffer", err)
	}

	cmd, err := commands.NewCreateOfferCommand(kernel.NewUUID(), shipmentID, courierID, req.Message)
	if err != nil {
		return fail(ctx, "createOffer", err)
	}

	created, err := s.createOfferHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, "createOffer", err)
	}

	return ctx.JSON(http.StatusCreated, toOfferResponse(created))
}

// AcceptOffer handles POST /api/v1/offers/:offerId/accept.
func (s *Server) AcceptOffer(ctx echo.Context) error {
	offerID, err := pathUUID(ctx, "offerId")
	if err != nil {
		return fail(ctx, "acceptOffer", err)
	}

	var req ActorRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	actorID, err := bodyUUID("actorId", req.ActorID)
	if err != nil {
		return fail(ctx, "acceptOffer", err)
	}

	cmd, err := commands.NewAcceptOfferCommand(offerID, actorID)
	if err != nil {
		return fail(ctx, "acceptOffer", err)
	}

	result, err := s.acceptOfferHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, "acceptOffer", err)
	}

	return ctx.JSON(http.StatusOK, AcceptOfferResponse{
		Offer:    toOfferResponse(result.Offer),
		Shipment: toShipmentResponse(result.Shipment),
	})
}

// RejectOffer handles POST /api/v1/offers/:offerId/reject.
func (s *Server) RejectOffer(ctx echo.Context) error {
	offerID, err := pathUUID(ctx, "offerId")
	if err != nil {
		return fail(ctx, "rejectOffer", err)
	}

	var req ActorRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	actorID, err := bodyUUID("actorId", req.ActorID)
	if err != nil {
		return fail(ctx, "rejectOffer", err)
	}

	cmd, err := commands.NewRejectOfferCommand(offerID, actorID)
	if err != nil {
		return fail(ctx, "rejectOffer", err)
	}

	rejected, err := s.rejectOfferHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, "rejectOffer", err)
	}

	return ctx.JSON(http.StatusOK, toOfferResponse(rejected))
}

// HoldPayment handles POST /api/v1/shipments/:shipmentId/payment/hold.
func (s *Server) HoldPayment(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return fail(ctx, "holdPayment", err)
	}

	var req HoldPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	senderID, err := bodyUUID("senderId", req.SenderID)
	if err != nil {
		return fail(ctx, "holdPayment", err)
	}
	courierID, err := bodyUUID("courierId", req.CourierID)
	if err != nil {
		return fail(ctx, "holdPayment", err)
	}

	var paymentMethodID *kernel.UUID
	if req.PaymentMethodID != nil {
		id, err := bodyUUID("paymentMethodId", *req.PaymentMethodID)
		if err != nil {
			return fail(ctx, "holdPayment", err)
		}
		paymentMethodID = &id
	}

	cmd, err := commands.NewHoldPaymentCommand(shipmentID, senderID, courierID, paymentMethodID)
	if err != nil {
		return fail(ctx, "holdPayment", err)
	}

	result, err := s.holdPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, "holdPayment", err)
	}

	return ctx.JSON(http.StatusCreated, PaymentResponse{
		Transaction: toTransactionResponse(result.Transaction),
		Shipment:    toShipmentResponse(result.Shipment),
	})
}

// ReleasePayment handles POST /api/v1/shipments/:shipmentId/payment/release.
func (s *Server) ReleasePayment(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return fail(ctx, "releasePayment", err)
	}

	var req ActorRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	actorID, err := bodyUUID("actorId", req.ActorID)
	if err != nil {
		return fail(ctx, "releasePayment", err)
	}

	cmd, err := commands.NewReleasePaymentCommand(shipmentID, actorID)
	if err != nil {
		return fail(ctx, "releasePayment", err)
	}

	result, err := s.releasePaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, "releasePayment", err)
	}

	return ctx.JSON(http.StatusOK, PaymentResponse{
		Transaction: toTransactionResponse(result.Transaction),
		Shipment:    toShipmentResponse(result.Shipment),
	})
}

// RefundPayment handles POST /api/v1/shipments/:shipmentId/payment/refund.
func (s *Server) RefundPayment(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return fail(ctx, "refundPayment", err)
	}

	var req ActorRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	actorID, err := bodyUUID("actorId", req.ActorID)
	if err != nil {
		return fail(ctx, "refundPayment", err)
	}

	cmd, err := commands.NewRefundPaymentCommand(shipmentID, actorID)
	if err != nil {
		return fail(ctx, "refundPayment", err)
	}

	result, err := s.refundPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, "refundPayment", err)
	}

	return ctx.JSON(http.StatusOK, PaymentResponse{
		Transaction: toTransactionResponse(result.Transaction),
		Shipment:    toShipmentResponse(result.Shipment),
	})
}

// GetShipment handles GET /api/v1/shipments/:shipmentId.
func (s *Server) GetShipment(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return fail(ctx, "getShipment", err)
	}

	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return fail(ctx, "getShipment", err)
	}

	found, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, "getShipment", err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponseFromQuery(found))
}

// GetOpenShipments handles GET /api/v1/shipments.
func (s *Server) GetOpenShipments(ctx echo.Context) error {
	board, err := s.getOpenShipmentsHandler.Handle(
		ctx.Request().Context(), queries.NewGetOpenShipmentsQuery())
	if err != nil {
		return fail(ctx, "getOpenShipments", err)
	}

	response := make([]OpenShipmentResponse, len(board))
	for i, row := range board {
		response[i] = OpenShipmentResponse{
			ID:            row.ID.String(),
			SenderID:      row.SenderID.String(),
			Origin:        row.Origin,
			Destination:   row.Destination,
			WeightGrams:   row.WeightGrams,
			Content:       row.Content,
			PriceAmount:   row.Price.Amount(),
			PriceCurrency: row.Price.Currency(),
			PendingOffers: row.PendingOffers,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipmentOffers handles GET /api/v1/shipments/:shipmentId/offers.
func (s *Server) GetShipmentOffers(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return fail(ctx, "getShipmentOffers", err)
	}

	query, err := queries.NewGetShipmentOffersQuery(shipmentID)
	if err != nil {
		return fail(ctx, "getShipmentOffers", err)
	}

	offers, err := s.getShipmentOffersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, "getShipmentOffers", err)
	}

	response := make([]OfferResponse, len(offers))
	for i, row := range offers {
		response[i] = OfferResponse{
			ID:         row.ID.String(),
			ShipmentID: shipmentID.String(),
			CourierID:  row.CourierID.String(),
			Message:    row.Message,
			Status:     row.Status.String(),
			CreatedAt:  row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipmentLedger handles GET /api/v1/shipments/:shipmentId/ledger.
func (s *Server) GetShipmentLedger(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return fail(ctx, "getShipmentLedger", err)
	}

	query, err := queries.NewGetShipmentLedgerQuery(shipmentID)
	if err != nil {
		return fail(ctx, "getShipmentLedger", err)
	}

	ledger, err := s.getShipmentLedgerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, "getShipmentLedger", err)
	}

	response := make([]LedgerEntryResponse, len(ledger))
	for i, row := range ledger {
		response[i] = LedgerEntryResponse{
			ID:        row.ID.String(),
			Amount:    row.Amount.Amount(),
			Currency:  row.Amount.Currency(),
			Status:    row.Status.String(),
			PayerID:   row.PayerID.String(),
			PayeeID:   row.PayeeID.String(),
			CreatedAt: row.CreatedAt,
			SettledAt: row.SettledAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func parseTargetStatus(value string) (shipment.Status, bool) {
	switch value {
	case "Cancelled":
		return shipment.Cancelled, true
	case "OnWay":
		return shipment.OnWay, true
	case "Delivered":
		return shipment.Delivered, true
	default:
		return shipment.Unknown, false
	}
}
