package service

import (
	"context"
	"resort/infras/kafka"
	"resort/internal/domains/booking/model"

	"github.com/rs/zerolog/log"
)

// publish announces a lifecycle change. Failures are logged, the booking change stands.
func (s *serviceImpl) publish(ctx context.Context, event string, booking model.Booking, actor string) {
	message := kafka.Message{
		Key: booking.ID,
		Value: model.LifecycleEvent{
			Event:       event,
			BookingID:   booking.ID,
			Code:        booking.Code,
			BookingType: booking.BookingType,
			Status:      booking.Status,
			Total:       booking.Total,
			Currency:    booking.Currency,
			Actor:       actor,
			OccurredAt:  s.now(),
		},
		Headers: map[string]string{"event": event},
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.BookingEvents, message); err != nil {
		log.Error().Err(err).Str("event", event).Str("code", booking.Code).Msg("failed to publish booking event")
	}
}
