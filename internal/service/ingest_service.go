package service

import (
	"context"
	"encoding/json"
	"fmt"

	"shopify-mirror/internal/models"
	"shopify-mirror/internal/normalize"
	"shopify-mirror/internal/util"

	"go.uber.org/zap"
)

// IngestService runs the webhook path: parse the pushed payload into its raw
// shape, normalize, and write a single record. Orders, customers, and
// products are plain creates; inventory is a replace-or-insert keyed by
// inventory_item_id, so redeliveries converge instead of conflicting.
type IngestService struct {
	gateway Gateway
	events  Publisher
	logger  *zap.Logger
}

// NewIngestService creates a new ingest service.
func NewIngestService(gateway Gateway, events Publisher) *IngestService {
	return &IngestService{
		gateway: gateway,
		events:  events,
		logger:  util.GetLogger(),
	}
}

// IngestOrder stores one webhook-delivered order.
func (s *IngestService) IngestOrder(ctx context.Context, body []byte) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "IngestService.IngestOrder")
	defer span.End()

	var raw models.RawOrder
	if err := json.Unmarshal(body, &raw); err != nil {
		util.WebhooksFailedTotal.WithLabelValues(models.EntityOrders.Name, "bad_payload").Inc()
		return nil, fmt.Errorf("invalid order payload: %w", err)
	}

	order := normalize.Order(raw)
	if err := s.gateway.InsertOrder(ctx, &order); err != nil {
		util.WebhooksFailedTotal.WithLabelValues(models.EntityOrders.Name, "store_error").Inc()
		return nil, err
	}

	s.published(ctx, models.EntityOrders.Name, order.ID)
	return &order, nil
}

// IngestCustomer stores one webhook-delivered customer.
func (s *IngestService) IngestCustomer(ctx context.Context, body []byte) (*models.Customer, error) {
	ctx, span := util.StartSpan(ctx, "IngestService.IngestCustomer")
	defer span.End()

	var raw models.RawCustomer
	if err := json.Unmarshal(body, &raw); err != nil {
		util.WebhooksFailedTotal.WithLabelValues(models.EntityCustomers.Name, "bad_payload").Inc()
		return nil, fmt.Errorf("invalid customer payload: %w", err)
	}

	customer := normalize.Customer(raw)
	if err := s.gateway.InsertCustomer(ctx, &customer); err != nil {
		util.WebhooksFailedTotal.WithLabelValues(models.EntityCustomers.Name, "store_error").Inc()
		return nil, err
	}

	s.published(ctx, models.EntityCustomers.Name, customer.ID)
	return &customer, nil
}

// IngestProduct stores one webhook-delivered product.
func (s *IngestService) IngestProduct(ctx context.Context, body []byte) (*models.Product, error) {
	ctx, span := util.StartSpan(ctx, "IngestService.IngestProduct")
	defer span.End()

	var raw models.RawProduct
	if err := json.Unmarshal(body, &raw); err != nil {
		util.WebhooksFailedTotal.WithLabelValues(models.EntityProducts.Name, "bad_payload").Inc()
		return nil, fmt.Errorf("invalid product payload: %w", err)
	}

	product := normalize.Product(raw)
	if err := s.gateway.InsertProduct(ctx, &product); err != nil {
		util.WebhooksFailedTotal.WithLabelValues(models.EntityProducts.Name, "store_error").Inc()
		return nil, err
	}

	s.published(ctx, models.EntityProducts.Name, product.ID)
	return &product, nil
}

// IngestInventory replaces or inserts one webhook-delivered inventory level.
// Delivering the same inventory_item_id twice leaves exactly one record with
// the second delivery's fields.
func (s *IngestService) IngestInventory(ctx context.Context, body []byte) (*models.InventoryLevel, error) {
	ctx, span := util.StartSpan(ctx, "IngestService.IngestInventory")
	defer span.End()

	var raw models.RawInventoryLevel
	if err := json.Unmarshal(body, &raw); err != nil {
		util.WebhooksFailedTotal.WithLabelValues(models.EntityInventory.Name, "bad_payload").Inc()
		return nil, fmt.Errorf("invalid inventory payload: %w", err)
	}

	level := normalize.Inventory(raw)
	if err := s.gateway.UpsertInventory(ctx, &level); err != nil {
		util.WebhooksFailedTotal.WithLabelValues(models.EntityInventory.Name, "store_error").Inc()
		return nil, err
	}

	s.published(ctx, models.EntityInventory.Name, level.InventoryItemID)
	return &level, nil
}

// published bumps the ingest metric and emits the ingest event; event
// failures are logged, never surfaced to the webhook sender.
func (s *IngestService) published(ctx context.Context, entity string, key int64) {
	util.WebhooksIngestedTotal.WithLabelValues(entity).Inc()

	if err := s.events.PublishEntityIngested(ctx, entity, key); err != nil {
		s.logger.Error("Failed to publish EntityIngested event",
			zap.String("entity", entity),
			zap.Int64("key", key),
			zap.Error(err))
	}

	s.logger.Info("Webhook delivery stored",
		zap.String("entity", entity),
		zap.Int64("key", key))
}
