package jobs

import (
	"context"
	"log/slog"

	"smallsquare/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderBoardJob periodically logs the marketplace-wide order board.
// Runs every minute so operators can follow the in-flight workload
// per lifecycle status without querying the database by hand.
type OrderBoardJob struct {
	handler queries.GetOrderBoardQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderBoardJob creates the job that reports order counts per status.
func NewOrderBoardJob(handler queries.GetOrderBoardQueryHandler, logger *slog.Logger) *OrderBoardJob {
	return &OrderBoardJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_board_job"),
	}
}

// Start begins the order board job to run every minute.
func (j *OrderBoardJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOrderBoardQuery()

		board, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order board job failed", "error", err)
			return
		}

		attrs := make([]any, 0, len(board)*2)
		for _, entry := range board {
			attrs = append(attrs, entry.Status, entry.Count)
		}
		j.logger.InfoContext(ctx, "Order board", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order board job started (running every minute)")
	return nil
}

// Stop stops the order board job.
func (j *OrderBoardJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order board job stopped")
}
