package store

import (
	"context"
	"errors"
	"fmt"

	"shopify-mirror/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// BulkResult reports how an unordered bulk insert split between inserted and
// rejected records. Rejections (typically natural-key collisions) never abort
// the sibling inserts in the same batch.
type BulkResult struct {
	Inserted int
	Rejected []RejectedRecord
}

// RejectedRecord identifies one record a bulk insert skipped and why.
type RejectedRecord struct {
	Key    int64
	Reason string
}

// bulkInsert performs an unordered InsertMany. Per-record write errors are
// folded into the result; only batch-level failures surface as errors.
// keys[i] must be the natural key of docs[i].
func (s *Store) bulkInsert(ctx context.Context, collection string, docs []interface{}, keys []int64) (*BulkResult, error) {
	result := &BulkResult{Rejected: []RejectedRecord{}}
	if len(docs) == 0 {
		return result, nil
	}

	_, err := s.db.Collection(collection).InsertMany(ctx, docs,
		options.InsertMany().SetOrdered(false))
	if err != nil {
		var bwe mongo.BulkWriteException
		if !errors.As(err, &bwe) {
			return nil, fmt.Errorf("bulk insert into %s: %w", collection, err)
		}
		for _, we := range bwe.WriteErrors {
			var key int64
			if we.Index >= 0 && we.Index < len(keys) {
				key = keys[we.Index]
			}
			result.Rejected = append(result.Rejected, RejectedRecord{
				Key:    key,
				Reason: we.Message,
			})
		}
	}

	result.Inserted = len(docs) - len(result.Rejected)
	if len(result.Rejected) > 0 {
		s.logger.Warn("Bulk insert skipped records",
			zap.String("collection", collection),
			zap.Int("inserted", result.Inserted),
			zap.Int("rejected", len(result.Rejected)))
	}
	return result, nil
}

// BulkInsertOrders inserts a batch of orders, tolerating key collisions.
func (s *Store) BulkInsertOrders(ctx context.Context, orders []models.Order) (*BulkResult, error) {
	docs := make([]interface{}, len(orders))
	keys := make([]int64, len(orders))
	for i, o := range orders {
		docs[i] = o
		keys[i] = o.ID
	}
	return s.bulkInsert(ctx, models.EntityOrders.Collection, docs, keys)
}

// BulkInsertCustomers inserts a batch of customers, tolerating key collisions.
func (s *Store) BulkInsertCustomers(ctx context.Context, customers []models.Customer) (*BulkResult, error) {
	docs := make([]interface{}, len(customers))
	keys := make([]int64, len(customers))
	for i, c := range customers {
		docs[i] = c
		keys[i] = c.ID
	}
	return s.bulkInsert(ctx, models.EntityCustomers.Collection, docs, keys)
}

// BulkInsertProducts inserts a batch of products, tolerating key collisions.
func (s *Store) BulkInsertProducts(ctx context.Context, products []models.Product) (*BulkResult, error) {
	docs := make([]interface{}, len(products))
	keys := make([]int64, len(products))
	for i, p := range products {
		docs[i] = p
		keys[i] = p.ID
	}
	return s.bulkInsert(ctx, models.EntityProducts.Collection, docs, keys)
}

// BulkInsertInventory inserts a batch of inventory levels, tolerating key
// collisions.
func (s *Store) BulkInsertInventory(ctx context.Context, levels []models.InventoryLevel) (*BulkResult, error) {
	docs := make([]interface{}, len(levels))
	keys := make([]int64, len(levels))
	for i, l := range levels {
		docs[i] = l
		keys[i] = l.InventoryItemID
	}
	return s.bulkInsert(ctx, models.EntityInventory.Collection, docs, keys)
}

// InsertOrder creates a single order; an existing id is an error.
func (s *Store) InsertOrder(ctx context.Context, order *models.Order) error {
	_, err := s.db.Collection(models.EntityOrders.Collection).InsertOne(ctx, order)
	if err != nil {
		return fmt.Errorf("insert order %d: %w", order.ID, err)
	}
	return nil
}

// InsertCustomer creates a single customer; an existing id is an error.
func (s *Store) InsertCustomer(ctx context.Context, customer *models.Customer) error {
	_, err := s.db.Collection(models.EntityCustomers.Collection).InsertOne(ctx, customer)
	if err != nil {
		return fmt.Errorf("insert customer %d: %w", customer.ID, err)
	}
	return nil
}

// InsertProduct creates a single product; an existing id is an error.
func (s *Store) InsertProduct(ctx context.Context, product *models.Product) error {
	_, err := s.db.Collection(models.EntityProducts.Collection).InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("insert product %d: %w", product.ID, err)
	}
	return nil
}

// UpsertInventory replaces the inventory level for its inventory_item_id, or
// inserts it if the key is new. The latest delivery's fields win in full.
func (s *Store) UpsertInventory(ctx context.Context, level *models.InventoryLevel) error {
	filter := bson.M{"inventory_item_id": level.InventoryItemID}
	_, err := s.db.Collection(models.EntityInventory.Collection).
		ReplaceOne(ctx, filter, level, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert inventory %d: %w", level.InventoryItemID, err)
	}
	return nil
}

// GetOrder retrieves a stored order by its upstream id.
func (s *Store) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := s.db.Collection(models.EntityOrders.Collection).
		FindOne(ctx, bson.M{"id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("order not found: %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetCustomer retrieves a stored customer by its upstream id.
func (s *Store) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.Collection(models.EntityCustomers.Collection).
		FindOne(ctx, bson.M{"id": id}).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("customer not found: %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetProduct retrieves a stored product by its upstream id.
func (s *Store) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := s.db.Collection(models.EntityProducts.Collection).
		FindOne(ctx, bson.M{"id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("product not found: %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetInventory retrieves a stored inventory level by inventory_item_id.
func (s *Store) GetInventory(ctx context.Context, inventoryItemID int64) (*models.InventoryLevel, error) {
	var level models.InventoryLevel
	err := s.db.Collection(models.EntityInventory.Collection).
		FindOne(ctx, bson.M{"inventory_item_id": inventoryItemID}).Decode(&level)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("inventory level not found: %d", inventoryItemID)
	}
	if err != nil {
		return nil, err
	}
	return &level, nil
}
