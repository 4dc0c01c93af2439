package jobs

import (
	"fmt"
	"strings"

	"warehouse.GO/config"
	"warehouse.GO/cron"
	stockRepo "warehouse.GO/model/repository/stock"
	"warehouse.GO/service/notifier"
)

func init() {
	cron.Register("stockreport", "0 7 * * *", RunStockReport)
}

// RunStockReport mails the admin a list of items at or below the low
// stock threshold. Without an admin address it only logs the summary.
func RunStockReport(args ...string) {
	logger := config.GetLogger()
	db, err := config.NewDB()
	if err != nil {
		config.LogError(logger, "cron", "RunStockReport", "open database", err)
		return
	}
	repo, err := stockRepo.NewStockRepository(db)
	if err != nil {
		config.LogError(logger, "cron", "RunStockReport", "init stock repository", err)
		return
	}

	threshold := 5
	adminEmail := ""
	if config.AppConfig != nil {
		threshold = config.AppConfig.LowStockThreshold
		adminEmail = config.AppConfig.AdminEmail
	}

	low, err := repo.ListBelowQuantity(threshold)
	if err != nil {
		config.LogError(logger, "cron", "RunStockReport", "list low stock", err)
		return
	}
	if len(low) == 0 {
		logger.Info("stockreport: all items above threshold")
		return
	}

	var b strings.Builder
	for _, st := range low {
		fmt.Fprintf(&b, "%d\t%s\t%d\n", st.Article, st.Name, st.Quantity)
	}
	logger.WithField("items", len(low)).Warn("stockreport: items below threshold")

	if adminEmail == "" {
		return
	}
	n := notifier.FromConfig(config.LoadMailerConfig())
	msg := notifier.Message{
		To:       adminEmail,
		Subject:  fmt.Sprintf("Low stock report: %d items", len(low)),
		TextBody: b.String(),
	}
	if err := n.Send(msg); err != nil {
		config.LogError(logger, "cron", "RunStockReport", "send report", err)
	}
}
