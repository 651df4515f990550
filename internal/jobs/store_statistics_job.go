package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultStatisticsSchedule runs the statistics job once a minute.
const DefaultStatisticsSchedule = "@every 1m"

// StatisticsHandler reads the store statistics.
type StatisticsHandler interface {
	Handle(ctx context.Context, query queries.GetStoreStatisticsQuery) (queries.StoreStatisticsQueryResponse, error)
}

// StoreStatisticsJob periodically logs entity counts, the total ordered
// weight and the latest order number. It never writes.
type StoreStatisticsJob struct {
	handler  StatisticsHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStoreStatisticsJob creates the job. schedule is a cron spec with an
// optional seconds field or a descriptor such as "@every 30s"; empty means
// DefaultStatisticsSchedule.
func NewStoreStatisticsJob(handler StatisticsHandler, schedule string, logger *slog.Logger) *StoreStatisticsJob {
	if schedule == "" {
		schedule = DefaultStatisticsSchedule
	}

	parser := cron.NewParser(
		cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)

	return &StoreStatisticsJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(parser)),
		logger:   logger.With("component", "store_statistics_job"),
	}
}

// Start schedules the job. An invalid schedule is returned as an error.
func (j *StoreStatisticsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Store statistics job started", "schedule", j.schedule)
	return nil
}

// Run reads and logs the statistics once.
func (j *StoreStatisticsJob) Run(ctx context.Context) {
	stats, err := j.handler.Handle(ctx, queries.NewGetStoreStatisticsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Store statistics job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Store statistics",
		"customers", stats.Customers,
		"products", stats.Products,
		"orders", stats.Orders,
		"order_items", stats.OrderItems,
		"total_weight", stats.TotalWeight.String(),
		"latest_order_number", stats.LatestOrderNumber,
	)
}

// Stop stops scheduling and waits for a running execution to finish.
func (j *StoreStatisticsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Store statistics job stopped")
}
