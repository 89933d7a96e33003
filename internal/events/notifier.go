package events

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"
	"time"

	"cove/config"
	"cove/infras/kafka"
	"cove/infras/otel"
	"cove/internal/domains/booking/model"
	"cove/shared/constant"
	"cove/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingConfirmed = "booking.confirmed"
	TypeBookingCancelled = "booking.cancelled"
)

// BookingEvent is the wire payload published for booking lifecycle changes.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	RoomID     string    `json:"room_id"`
	UserID     string    `json:"user_id"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Notifier publishes booking lifecycle events. Publishing is fire-and-forget:
// a broker failure is logged and never fails the request that triggered it.
type Notifier interface {
	BookingCreated(ctx context.Context, booking model.Booking)
	BookingConfirmed(ctx context.Context, booking model.Booking)
	BookingCancelled(ctx context.Context, booking model.Booking)
}

type notifierImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Notifier {
	return &notifierImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (n *notifierImpl) BookingCreated(ctx context.Context, booking model.Booking) {
	n.publish(ctx, TypeBookingCreated, booking)
}

func (n *notifierImpl) BookingConfirmed(ctx context.Context, booking model.Booking) {
	n.publish(ctx, TypeBookingConfirmed, booking)
}

func (n *notifierImpl) BookingCancelled(ctx context.Context, booking model.Booking) {
	n.publish(ctx, TypeBookingCancelled, booking)
}

func (n *notifierImpl) publish(ctx context.Context, eventType string, booking model.Booking) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".publish")
	defer scope.End()

	event := BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		UserID:     booking.UserID,
		CheckIn:    booking.CheckIn.Format("2006-01-02"),
		CheckOut:   booking.CheckOut.Format("2006-01-02"),
		TotalPrice: booking.TotalPrice,
		Status:     booking.Status,
		OccurredAt: timezone.Now(),
	}

	message := kafka.Message{
		Key:   booking.ID,
		Value: event,
	}

	if err := n.client.SendMessages(ctx, n.cfg.Kafka.BookingTopic, message); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("type", eventType).Str("bookingID", booking.ID).Msg("failed to publish booking event")
	}
}
