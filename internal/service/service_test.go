package service

import (
	"context"
	"errors"
	"testing"

	"shopify-mirror/internal/models"
	"shopify-mirror/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	orders    []models.RawOrder
	customers []models.RawCustomer
	products  []models.RawProduct
	inventory []models.RawInventoryLevel
	err       error
}

func (f *stubFetcher) FetchOrders(ctx context.Context) ([]models.RawOrder, error) {
	return f.orders, f.err
}

func (f *stubFetcher) FetchCustomers(ctx context.Context) ([]models.RawCustomer, error) {
	return f.customers, f.err
}

func (f *stubFetcher) FetchProducts(ctx context.Context) ([]models.RawProduct, error) {
	return f.products, f.err
}

func (f *stubFetcher) FetchInventoryLevels(ctx context.Context) ([]models.RawInventoryLevel, error) {
	return f.inventory, f.err
}

type stubGateway struct {
	bulkResult *store.BulkResult
	bulkErr    error
	insertErr  error

	orders    map[int64]models.Order
	customers map[int64]models.Customer
	products  map[int64]models.Product
	inventory map[int64]models.InventoryLevel

	bulkOrders    []models.Order
	bulkProducts  []models.Product
	bulkCustomers []models.Customer
	bulkInventory []models.InventoryLevel
}

func newStubGateway() *stubGateway {
	return &stubGateway{
		bulkResult: &store.BulkResult{Rejected: []store.RejectedRecord{}},
		orders:     map[int64]models.Order{},
		customers:  map[int64]models.Customer{},
		products:   map[int64]models.Product{},
		inventory:  map[int64]models.InventoryLevel{},
	}
}

func (g *stubGateway) BulkInsertOrders(ctx context.Context, orders []models.Order) (*store.BulkResult, error) {
	g.bulkOrders = orders
	return g.bulkResult, g.bulkErr
}

func (g *stubGateway) BulkInsertCustomers(ctx context.Context, customers []models.Customer) (*store.BulkResult, error) {
	g.bulkCustomers = customers
	return g.bulkResult, g.bulkErr
}

func (g *stubGateway) BulkInsertProducts(ctx context.Context, products []models.Product) (*store.BulkResult, error) {
	g.bulkProducts = products
	return g.bulkResult, g.bulkErr
}

func (g *stubGateway) BulkInsertInventory(ctx context.Context, levels []models.InventoryLevel) (*store.BulkResult, error) {
	g.bulkInventory = levels
	return g.bulkResult, g.bulkErr
}

func (g *stubGateway) InsertOrder(ctx context.Context, order *models.Order) error {
	if g.insertErr != nil {
		return g.insertErr
	}
	if _, exists := g.orders[order.ID]; exists {
		return errors.New("duplicate key")
	}
	g.orders[order.ID] = *order
	return nil
}

func (g *stubGateway) InsertCustomer(ctx context.Context, customer *models.Customer) error {
	if g.insertErr != nil {
		return g.insertErr
	}
	if _, exists := g.customers[customer.ID]; exists {
		return errors.New("duplicate key")
	}
	g.customers[customer.ID] = *customer
	return nil
}

func (g *stubGateway) InsertProduct(ctx context.Context, product *models.Product) error {
	if g.insertErr != nil {
		return g.insertErr
	}
	if _, exists := g.products[product.ID]; exists {
		return errors.New("duplicate key")
	}
	g.products[product.ID] = *product
	return nil
}

func (g *stubGateway) UpsertInventory(ctx context.Context, level *models.InventoryLevel) error {
	if g.insertErr != nil {
		return g.insertErr
	}
	g.inventory[level.InventoryItemID] = *level
	return nil
}

type stubPublisher struct {
	synced   int
	ingested int
	err      error
}

func (p *stubPublisher) PublishEntitySynced(ctx context.Context, entity string, fetched, inserted, rejected int) error {
	p.synced++
	return p.err
}

func (p *stubPublisher) PublishEntityIngested(ctx context.Context, entity string, recordKey int64) error {
	p.ingested++
	return p.err
}

type stubTracker struct {
	runs int
}

func (t *stubTracker) RecordSyncRun(ctx context.Context, entity string, fetched, inserted, rejected int) error {
	t.runs++
	return nil
}

func TestSyncProducts(t *testing.T) {
	fetcher := &stubFetcher{
		products: []models.RawProduct{
			{
				ID:       1,
				Title:    "Shirt",
				Images:   []models.RawImage{{Src: "http://x/1.jpg"}},
				Variants: []models.RawVariant{{ID: 10, Price: 19.99}},
			},
		},
	}
	gateway := newStubGateway()
	gateway.bulkResult = &store.BulkResult{Inserted: 1, Rejected: []store.RejectedRecord{}}
	publisher := &stubPublisher{}
	tracker := &stubTracker{}

	svc := NewSyncService(fetcher, gateway, tracker, publisher)

	summary, err := svc.SyncProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "products", summary.Entity)
	assert.Equal(t, 1, summary.Fetched)
	assert.Equal(t, 1, summary.Inserted)
	assert.Equal(t, 0, summary.Rejected)

	require.Len(t, gateway.bulkProducts, 1)
	assert.Equal(t, []string{"http://x/1.jpg"}, gateway.bulkProducts[0].Images)
	assert.Equal(t, 19.99, gateway.bulkProducts[0].Variants[0].Price)

	assert.Equal(t, 1, publisher.synced)
	assert.Equal(t, 1, tracker.runs)
}

func TestSyncOrdersUpstreamErrorPropagates(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("connection refused")}
	gateway := newStubGateway()

	svc := NewSyncService(fetcher, gateway, &stubTracker{}, &stubPublisher{})

	_, err := svc.SyncOrders(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Nil(t, gateway.bulkOrders)
}

func TestSyncCustomersReportsRejections(t *testing.T) {
	fetcher := &stubFetcher{
		customers: []models.RawCustomer{
			{ID: 1, Email: "a@example.com"},
			{ID: 2, Email: "b@example.com"},
			{ID: 3, Email: "c@example.com"},
		},
	}
	gateway := newStubGateway()
	gateway.bulkResult = &store.BulkResult{
		Inserted: 2,
		Rejected: []store.RejectedRecord{{Key: 2, Reason: "duplicate key"}},
	}

	svc := NewSyncService(fetcher, gateway, &stubTracker{}, &stubPublisher{})

	summary, err := svc.SyncCustomers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Fetched)
	assert.Equal(t, 2, summary.Inserted)
	assert.Equal(t, 1, summary.Rejected)
}

func TestSyncInventoryStoreErrorPropagates(t *testing.T) {
	fetcher := &stubFetcher{inventory: []models.RawInventoryLevel{{InventoryItemID: 42}}}
	gateway := newStubGateway()
	gateway.bulkErr = errors.New("server selection timeout")

	svc := NewSyncService(fetcher, gateway, &stubTracker{}, &stubPublisher{})

	_, err := svc.SyncInventory(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store inventory levels")
}

func TestIngestOrder(t *testing.T) {
	gateway := newStubGateway()
	publisher := &stubPublisher{}
	svc := NewIngestService(gateway, publisher)

	body := []byte(`{"id":5,"name":"#1005","total_price":"20.00","line_items":[],"customer":null,"created_at":"2024-01-01T00:00:00Z"}`)

	order, err := svc.IngestOrder(context.Background(), body)
	require.NoError(t, err)

	assert.Equal(t, "#1005", order.OrderNumber)
	assert.Nil(t, order.Customer)
	assert.NotNil(t, order.LineItems)
	assert.Empty(t, order.LineItems)

	stored, ok := gateway.orders[5]
	require.True(t, ok)
	assert.Equal(t, "20.00", stored.TotalPrice)
	assert.Equal(t, 1, publisher.ingested)
}

func TestIngestOrderRejectsBadPayload(t *testing.T) {
	gateway := newStubGateway()
	svc := NewIngestService(gateway, &stubPublisher{})

	_, err := svc.IngestOrder(context.Background(), []byte(`[1,2,3]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order payload")
	assert.Empty(t, gateway.orders)
}

func TestIngestOrderDuplicateKeyFails(t *testing.T) {
	gateway := newStubGateway()
	svc := NewIngestService(gateway, &stubPublisher{})

	body := []byte(`{"id":5,"name":"#1005","total_price":"20.00"}`)

	_, err := svc.IngestOrder(context.Background(), body)
	require.NoError(t, err)

	_, err = svc.IngestOrder(context.Background(), body)
	require.Error(t, err)
}

func TestIngestInventoryIdempotent(t *testing.T) {
	gateway := newStubGateway()
	publisher := &stubPublisher{}
	svc := NewIngestService(gateway, publisher)

	first := []byte(`{"inventory_item_id":42,"location_id":100,"available":7,"updated_at":"2024-01-01T00:00:00Z"}`)
	second := []byte(`{"inventory_item_id":42,"location_id":100,"available":3,"updated_at":"2024-01-02T00:00:00Z"}`)

	_, err := svc.IngestInventory(context.Background(), first)
	require.NoError(t, err)
	_, err = svc.IngestInventory(context.Background(), second)
	require.NoError(t, err)

	require.Len(t, gateway.inventory, 1)
	assert.Equal(t, 3, gateway.inventory[42].Available)
	assert.Equal(t, 2, publisher.ingested)
}

func TestIngestCustomerAndProduct(t *testing.T) {
	gateway := newStubGateway()
	svc := NewIngestService(gateway, &stubPublisher{})

	_, err := svc.IngestCustomer(context.Background(),
		[]byte(`{"id":9,"email":"ada@example.com","addresses":[{"address1":"1 Main St","default":true}]}`))
	require.NoError(t, err)
	require.Contains(t, gateway.customers, int64(9))
	assert.True(t, gateway.customers[9].Addresses[0].IsDefault)

	_, err = svc.IngestProduct(context.Background(),
		[]byte(`{"id":1,"title":"Shirt","body_html":"<p>Soft</p>","images":[]}`))
	require.NoError(t, err)
	require.Contains(t, gateway.products, int64(1))
	assert.Equal(t, "<p>Soft</p>", gateway.products[1].Description)
	assert.NotNil(t, gateway.products[1].Images)
	assert.Empty(t, gateway.products[1].Images)
}
