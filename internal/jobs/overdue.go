package jobs

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ArthurMoreiraS/OperlyService/internal/clock"
	"github.com/ArthurMoreiraS/OperlyService/internal/logger"
	"github.com/ArthurMoreiraS/OperlyService/internal/metrics"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/invoice"
)

// OverdueSweep persists the OVERDUE status for pending invoices whose due
// date has passed. Reads already derive the status on the fly; the sweep
// keeps the stored column from going stale for list filters and stats.
type OverdueSweep struct {
	db    *gorm.DB
	clock clock.Clock
}

func NewOverdueSweep(db *gorm.DB, clk clock.Clock) *OverdueSweep {
	return &OverdueSweep{db: db, clock: clk}
}

// Start registers the sweep to run shortly after midnight, plus one
// immediate pass to catch up after downtime.
func (s *OverdueSweep) Start(c *cron.Cron) error {
	if _, err := c.AddFunc("5 0 * * *", s.Run); err != nil {
		return err
	}
	go s.Run()
	return nil
}

func (s *OverdueSweep) Run() {
	now := s.clock.Now()

	res := s.db.Model(&models.Invoice{}).
		Where("status = ? AND due_date IS NOT NULL AND due_date < ?",
			string(domain.StatusPending), now).
		Update("status", string(domain.StatusOverdue))

	if res.Error != nil {
		logger.Get().Error("overdue sweep failed", zap.Error(res.Error))
		return
	}

	metrics.OverdueSweepGauge.Set(float64(res.RowsAffected))
	if res.RowsAffected > 0 {
		logger.Get().Info("overdue sweep",
			zap.Int64("invoices_marked", res.RowsAffected),
		)
	}
}
