// Package upstream issues authenticated reads against the commerce
// platform's Admin REST API. Only the first page of each collection is
// fetched; there is no pagination and no retry.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shopify-mirror/internal/models"
	"shopify-mirror/internal/util"

	"go.uber.org/zap"
)

const apiVersion = "2023-01"

// Client is a read-only client for the upstream Admin REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	logger      *zap.Logger
}

// NewClient creates a client for the given store domain, e.g.
// "my-shop.myshopify.com". The access token is sent on every request.
func NewClient(store, accessToken string) *Client {
	return newClientWithBaseURL(
		fmt.Sprintf("https://%s/admin/api/%s", store, apiVersion), accessToken)
}

func newClientWithBaseURL(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		logger:      util.GetLogger(),
	}
}

// FetchOrders fetches the first page of the upstream orders collection.
func (c *Client) FetchOrders(ctx context.Context) ([]models.RawOrder, error) {
	var orders []models.RawOrder
	if err := c.fetchCollection(ctx, models.EntityOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// FetchCustomers fetches the first page of the upstream customers collection.
func (c *Client) FetchCustomers(ctx context.Context) ([]models.RawCustomer, error) {
	var customers []models.RawCustomer
	if err := c.fetchCollection(ctx, models.EntityCustomers, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// FetchProducts fetches the first page of the upstream products collection.
func (c *Client) FetchProducts(ctx context.Context) ([]models.RawProduct, error) {
	var products []models.RawProduct
	if err := c.fetchCollection(ctx, models.EntityProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FetchInventoryLevels fetches the first page of the upstream inventory
// levels collection.
func (c *Client) FetchInventoryLevels(ctx context.Context) ([]models.RawInventoryLevel, error) {
	var levels []models.RawInventoryLevel
	if err := c.fetchCollection(ctx, models.EntityInventory, &levels); err != nil {
		return nil, err
	}
	return levels, nil
}

// fetchCollection GETs one collection endpoint with the entity's field
// selection and decodes the records nested under its collection key into out,
// which must be a pointer to a slice of the entity's raw type.
func (c *Client) fetchCollection(ctx context.Context, entity models.Entity, out interface{}) error {
	u := fmt.Sprintf("%s/%s?fields=%s",
		c.baseURL, entity.Path, url.QueryEscape(strings.Join(entity.Fields, ",")))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("upstream %s: build request: %w", entity.Name, err)
	}
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream %s: request failed: %w", entity.Name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("upstream %s: read body: %w", entity.Name, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("upstream %s: unexpected status %d: %s",
			entity.Name, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("upstream %s: malformed response body: %w", entity.Name, err)
	}

	records, ok := payload[entity.CollectionKey]
	if !ok {
		return fmt.Errorf("upstream %s: response missing %q collection", entity.Name, entity.CollectionKey)
	}

	if err := json.Unmarshal(records, out); err != nil {
		return fmt.Errorf("upstream %s: decode %q collection: %w", entity.Name, entity.CollectionKey, err)
	}

	c.logger.Debug("Fetched upstream collection",
		zap.String("entity", entity.Name),
		zap.Int("status", resp.StatusCode))
	return nil
}
