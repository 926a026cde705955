package service

import (
	"context"
	"fmt"
	"time"

	"shopify-mirror/internal/models"
	"shopify-mirror/internal/normalize"
	"shopify-mirror/internal/store"
	"shopify-mirror/internal/util"

	"go.uber.org/zap"
)

// SyncService runs the poll path: fetch an upstream collection, normalize it,
// and bulk-insert it. Key collisions inside a batch are tolerated per record
// and reported in the summary, never as a failure of the run.
type SyncService struct {
	upstream Fetcher
	gateway  Gateway
	tracker  SyncTracker
	events   Publisher
	logger   *zap.Logger
}

// NewSyncService creates a new sync service.
func NewSyncService(upstream Fetcher, gateway Gateway, tracker SyncTracker, events Publisher) *SyncService {
	return &SyncService{
		upstream: upstream,
		gateway:  gateway,
		tracker:  tracker,
		events:   events,
		logger:   util.GetLogger(),
	}
}

// SyncSummary reports how one poll run went.
type SyncSummary struct {
	Entity   string `json:"entity"`
	Fetched  int    `json:"fetched"`
	Inserted int    `json:"inserted"`
	Rejected int    `json:"rejected"`
}

// SyncOrders fetches and stores the upstream orders collection.
func (s *SyncService) SyncOrders(ctx context.Context) (*SyncSummary, error) {
	ctx, span := util.StartSpan(ctx, "SyncService.SyncOrders")
	defer span.End()
	start := time.Now()

	raw, err := s.upstream.FetchOrders(ctx)
	if err != nil {
		util.SyncFailuresTotal.WithLabelValues(models.EntityOrders.Name, "upstream_error").Inc()
		return nil, err
	}

	result, err := s.gateway.BulkInsertOrders(ctx, normalize.Orders(raw))
	if err != nil {
		util.SyncFailuresTotal.WithLabelValues(models.EntityOrders.Name, "store_error").Inc()
		return nil, fmt.Errorf("failed to store orders: %w", err)
	}

	return s.finish(ctx, models.EntityOrders.Name, len(raw), result, start), nil
}

// SyncCustomers fetches and stores the upstream customers collection.
func (s *SyncService) SyncCustomers(ctx context.Context) (*SyncSummary, error) {
	ctx, span := util.StartSpan(ctx, "SyncService.SyncCustomers")
	defer span.End()
	start := time.Now()

	raw, err := s.upstream.FetchCustomers(ctx)
	if err != nil {
		util.SyncFailuresTotal.WithLabelValues(models.EntityCustomers.Name, "upstream_error").Inc()
		return nil, err
	}

	result, err := s.gateway.BulkInsertCustomers(ctx, normalize.Customers(raw))
	if err != nil {
		util.SyncFailuresTotal.WithLabelValues(models.EntityCustomers.Name, "store_error").Inc()
		return nil, fmt.Errorf("failed to store customers: %w", err)
	}

	return s.finish(ctx, models.EntityCustomers.Name, len(raw), result, start), nil
}

// SyncProducts fetches and stores the upstream products collection.
func (s *SyncService) SyncProducts(ctx context.Context) (*SyncSummary, error) {
	ctx, span := util.StartSpan(ctx, "SyncService.SyncProducts")
	defer span.End()
	start := time.Now()

	raw, err := s.upstream.FetchProducts(ctx)
	if err != nil {
		util.SyncFailuresTotal.WithLabelValues(models.EntityProducts.Name, "upstream_error").Inc()
		return nil, err
	}

	result, err := s.gateway.BulkInsertProducts(ctx, normalize.Products(raw))
	if err != nil {
		util.SyncFailuresTotal.WithLabelValues(models.EntityProducts.Name, "store_error").Inc()
		return nil, fmt.Errorf("failed to store products: %w", err)
	}

	return s.finish(ctx, models.EntityProducts.Name, len(raw), result, start), nil
}

// SyncInventory fetches and stores the upstream inventory levels collection.
func (s *SyncService) SyncInventory(ctx context.Context) (*SyncSummary, error) {
	ctx, span := util.StartSpan(ctx, "SyncService.SyncInventory")
	defer span.End()
	start := time.Now()

	raw, err := s.upstream.FetchInventoryLevels(ctx)
	if err != nil {
		util.SyncFailuresTotal.WithLabelValues(models.EntityInventory.Name, "upstream_error").Inc()
		return nil, err
	}

	result, err := s.gateway.BulkInsertInventory(ctx, normalize.InventoryLevels(raw))
	if err != nil {
		util.SyncFailuresTotal.WithLabelValues(models.EntityInventory.Name, "store_error").Inc()
		return nil, fmt.Errorf("failed to store inventory levels: %w", err)
	}

	return s.finish(ctx, models.EntityInventory.Name, len(raw), result, start), nil
}

// finish records metrics, bookkeeping, and the sync event for a completed
// run. Bookkeeping and event failures are logged but never fail the run.
func (s *SyncService) finish(ctx context.Context, entity string, fetched int, result *store.BulkResult, start time.Time) *SyncSummary {
	summary := &SyncSummary{
		Entity:   entity,
		Fetched:  fetched,
		Inserted: result.Inserted,
		Rejected: len(result.Rejected),
	}

	util.RecordsFetchedTotal.WithLabelValues(entity).Add(float64(summary.Fetched))
	util.RecordsInsertedTotal.WithLabelValues(entity).Add(float64(summary.Inserted))
	util.RecordsRejectedTotal.WithLabelValues(entity).Add(float64(summary.Rejected))
	util.SyncDuration.WithLabelValues(entity).Observe(time.Since(start).Seconds())

	if err := s.tracker.RecordSyncRun(ctx, entity, summary.Fetched, summary.Inserted, summary.Rejected); err != nil {
		s.logger.Warn("Failed to record sync run",
			zap.String("entity", entity), zap.Error(err))
	}

	if err := s.events.PublishEntitySynced(ctx, entity, summary.Fetched, summary.Inserted, summary.Rejected); err != nil {
		s.logger.Error("Failed to publish EntitySynced event",
			zap.String("entity", entity), zap.Error(err))
	}

	s.logger.Info("Sync completed",
		zap.String("entity", entity),
		zap.Int("fetched", summary.Fetched),
		zap.Int("inserted", summary.Inserted),
		zap.Int("rejected", summary.Rejected))

	return summary
}
