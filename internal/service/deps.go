package service

import (
	"context"

	"shopify-mirror/internal/models"
	"shopify-mirror/internal/store"
)

// Fetcher reads raw collections from the upstream API.
type Fetcher interface {
	FetchOrders(ctx context.Context) ([]models.RawOrder, error)
	FetchCustomers(ctx context.Context) ([]models.RawCustomer, error)
	FetchProducts(ctx context.Context) ([]models.RawProduct, error)
	FetchInventoryLevels(ctx context.Context) ([]models.RawInventoryLevel, error)
}

// Gateway writes canonical records to the document store.
type Gateway interface {
	BulkInsertOrders(ctx context.Context, orders []models.Order) (*store.BulkResult, error)
	BulkInsertCustomers(ctx context.Context, customers []models.Customer) (*store.BulkResult, error)
	BulkInsertProducts(ctx context.Context, products []models.Product) (*store.BulkResult, error)
	BulkInsertInventory(ctx context.Context, levels []models.InventoryLevel) (*store.BulkResult, error)
	InsertOrder(ctx context.Context, order *models.Order) error
	InsertCustomer(ctx context.Context, customer *models.Customer) error
	InsertProduct(ctx context.Context, product *models.Product) error
	UpsertInventory(ctx context.Context, level *models.InventoryLevel) error
}

// Publisher emits mirror events to the event stream.
type Publisher interface {
	PublishEntitySynced(ctx context.Context, entity string, fetched, inserted, rejected int) error
	PublishEntityIngested(ctx context.Context, entity string, recordKey int64) error
}

// SyncTracker records per-entity poll bookkeeping.
type SyncTracker interface {
	RecordSyncRun(ctx context.Context, entity string, fetched, inserted, rejected int) error
}
