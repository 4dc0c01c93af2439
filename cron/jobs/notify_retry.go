package jobs

import (
	"warehouse.GO/config"
	"warehouse.GO/cron"
	"warehouse.GO/service/notifier"
	shipmentService "warehouse.GO/service/shipment"
)

func init() {
	cron.Register("notifyretry", "*/10 * * * *", RunNotifyRetry)
}

// RunNotifyRetry re-sends confirmation mails for approved shipments whose
// customer was never notified. Approval keeps the stock reservation even
// when the mail fails, so this job is the delivery path of last resort.
func RunNotifyRetry(args ...string) {
	logger := config.GetLogger()
	db, err := config.NewDB()
	if err != nil {
		config.LogError(logger, "cron", "RunNotifyRetry", "open database", err)
		return
	}
	svc, err := shipmentService.NewShipmentService(db, notifier.FromConfig(config.LoadMailerConfig()))
	if err != nil {
		config.LogError(logger, "cron", "RunNotifyRetry", "init shipment service", err)
		return
	}
	sent, err := svc.ResendPending()
	if err != nil {
		config.LogError(logger, "cron", "RunNotifyRetry", "resend pending", err)
		return
	}
	if sent > 0 {
		logger.WithField("sent", sent).Info("notifyretry: re-sent confirmation mails")
	}
}
