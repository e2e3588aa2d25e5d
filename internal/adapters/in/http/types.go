package http

import (
	"time"

	"parcelmatch/internal/core/application/usecases/queries"
	"parcelmatch/internal/core/domain/model/escrow"
	"parcelmatch/internal/core/domain/model/offer"
	"parcelmatch/internal/core/domain/model/shipment"
)

// Request bodies. Actor identity travels in the body: the engine has no
// authentication layer and trusts the caller's claimed ID.

type CreateShipmentRequest struct {
	SenderID      string `json:"senderId"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	WeightGrams   int    `json:"weightGrams"`
	Content       string `json:"content"`
	PriceAmount   int64  `json:"priceAmount"`
	PriceCurrency string `json:"priceCurrency"`
}

type UpdateShipmentStatusRequest struct {
	ActorID string `json:"actorId"`
	Status  string `json:"status"`
}

type ActorRequest struct {
	ActorID string `json:"actorId"`
}

type CreateOfferRequest struct {
	CourierID string `json:"courierId"`
	Message   string `json:"message"`
}

type HoldPaymentRequest struct {
	SenderID        string  `json:"senderId"`
	CourierID       string  `json:"courierId"`
	PaymentMethodID *string `json:"paymentMethodId,omitempty"`
}

// Response bodies.

type ShipmentResponse struct {
	ID                       string     `json:"id"`
	SenderID                 string     `json:"senderId"`
	CourierID                *string    `json:"courierId,omitempty"`
	Origin                   string     `json:"origin"`
	Destination              string     `json:"destination"`
	WeightGrams              int        `json:"weightGrams"`
	Content                  string     `json:"content"`
	PriceAmount              int64      `json:"priceAmount"`
	PriceCurrency            string     `json:"priceCurrency"`
	Status                   string     `json:"status"`
	SenderConfirmedHandover  bool       `json:"senderConfirmedHandover"`
	CourierConfirmedHandover bool       `json:"courierConfirmedHandover"`
	SenderConfirmedDelivery  bool       `json:"senderConfirmedDelivery"`
	CourierConfirmedDelivery bool       `json:"courierConfirmedDelivery"`
	HandoverConfirmedAt      *time.Time `json:"handoverConfirmedAt,omitempty"`
	DeliveryConfirmedAt      *time.Time `json:"deliveryConfirmedAt,omitempty"`
}

type ConfirmationResponse struct {
	Shipment      ShipmentResponse `json:"shipment"`
	BothConfirmed bool             `json:"bothConfirmed"`
	Message       string           `json:"message"`
}

type OfferResponse struct {
	ID         string    `json:"id"`
	ShipmentID string    `json:"shipmentId"`
	CourierID  string    `json:"courierId"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type AcceptOfferResponse struct {
	Offer    OfferResponse    `json:"offer"`
	Shipment ShipmentResponse `json:"shipment"`
}

type TransactionResponse struct {
	ID         string     `json:"id"`
	ShipmentID string     `json:"shipmentId"`
	Amount     int64      `json:"amount"`
	Currency   string     `json:"currency"`
	Status     string     `json:"status"`
	PayerID    string     `json:"payerId"`
	PayeeID    string     `json:"payeeId"`
	CreatedAt  time.Time  `json:"createdAt"`
	SettledAt  *time.Time `json:"settledAt,omitempty"`
}

type PaymentResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Shipment    ShipmentResponse    `json:"shipment"`
}

type OpenShipmentResponse struct {
	ID            string `json:"id"`
	SenderID      string `json:"senderId"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	WeightGrams   int    `json:"weightGrams"`
	Content       string `json:"content"`
	PriceAmount   int64  `json:"priceAmount"`
	PriceCurrency string `json:"priceCurrency"`
	PendingOffers int    `json:"pendingOffers"`
}

type LedgerEntryResponse struct {
	ID        string     `json:"id"`
	Amount    int64      `json:"amount"`
	Currency  string     `json:"currency"`
	Status    string     `json:"status"`
	PayerID   string     `json:"payerId"`
	PayeeID   string     `json:"payeeId"`
	CreatedAt time.Time  `json:"createdAt"`
	SettledAt *time.Time `json:"settledAt,omitempty"`
}

func toShipmentResponse(s *shipment.Shipment) ShipmentResponse {
	var courierID *string
	if s.Courier() != nil {
		id := s.Courier().String()
		courierID = &id
	}

	return ShipmentResponse{
		ID:                       s.ID().String(),
		SenderID:                 s.Sender().String(),
		CourierID:                courierID,
		Origin:                   s.Origin(),
		Destination:              s.Destination(),
		WeightGrams:              s.WeightGrams(),
		Content:                  s.Content(),
		PriceAmount:              s.Price().Amount(),
		PriceCurrency:            s.Price().Currency(),
		Status:                   s.Status().String(),
		SenderConfirmedHandover:  s.SenderConfirmedHandover(),
		CourierConfirmedHandover: s.CourierConfirmedHandover(),
		SenderConfirmedDelivery:  s.SenderConfirmedDelivery(),
		CourierConfirmedDelivery: s.CourierConfirmedDelivery(),
		HandoverConfirmedAt:      s.HandoverConfirmedAt(),
		DeliveryConfirmedAt:      s.DeliveryConfirmedAt(),
	}
}

func toShipmentResponseFromQuery(r *queries.GetShipmentQueryResponse) ShipmentResponse {
	var courierID *string
	if r.CourierID != nil {
		id := r.CourierID.String()
		courierID = &id
	}

	return ShipmentResponse{
		ID:                       r.ID.String(),
		SenderID:                 r.SenderID.String(),
		CourierID:                courierID,
		Origin:                   r.Origin,
		Destination:              r.Destination,
		WeightGrams:              r.WeightGrams,
		Content:                  r.Content,
		PriceAmount:              r.Price.Amount(),
		PriceCurrency:            r.Price.Currency(),
		Status:                   r.Status.String(),
		SenderConfirmedHandover:  r.SenderConfirmedHandover,
		CourierConfirmedHandover: r.CourierConfirmedHandover,
		SenderConfirmedDelivery:  r.SenderConfirmedDelivery,
		CourierConfirmedDelivery: r.CourierConfirmedDelivery,
		HandoverConfirmedAt:      r.HandoverConfirmedAt,
		DeliveryConfirmedAt:      r.DeliveryConfirmedAt,
	}
}

func toOfferResponse(o *offer.Offer) OfferResponse {
	return OfferResponse{
		ID:         o.ID().String(),
		ShipmentID: o.Shipment().String(),
		CourierID:  o.Courier().String(),
		Message:    o.Message(),
		Status:     o.Status().String(),
		CreatedAt:  o.CreatedAt(),
	}
}

func toTransactionResponse(t *escrow.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         t.ID().String(),
		ShipmentID: t.Shipment().String(),
		Amount:     t.Amount().Amount(),
		Currency:   t.Amount().Currency(),
		Status:     t.Status().String(),
		PayerID:    t.Payer().String(),
		PayeeID:    t.Payee().String(),
		CreatedAt:  t.CreatedAt(),
		SettledAt:  t.SettledAt(),
	}
}
