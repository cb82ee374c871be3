package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/Saadaqmacalin/houserent-gateway/internal/events"
)

// StartAuditWorker subscribes a structured-log audit trail to the booking
// workflow events.
func StartAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}

	log := func(name string) events.EventHandler {
		return func(_ context.Context, event events.Event) error {
			logger.Info(name, zap.Any("payload", event.Payload))
			return nil
		}
	}

	dispatcher.Subscribe(events.EventBookingCreated, log("booking created"))
	dispatcher.Subscribe(events.EventPaymentRecorded, log("payment recorded"))
	dispatcher.Subscribe(events.EventLeaseEnded, log("lease ended"))
}
