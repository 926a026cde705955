package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchProducts(t *testing.T) {
	var gotToken, gotFields string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products.json", r.URL.Path)
		gotToken = r.Header.Get("X-Shopify-Access-Token")
		gotFields = r.URL.Query().Get("fields")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products":[{"id":1,"title":"Shirt","images":[{"src":"http://x/1.jpg"}],"variants":[{"id":10,"price":19.99}]}]}`))
	}))
	defer srv.Close()

	client := newClientWithBaseURL(srv.URL, "test-token")

	products, err := client.FetchProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "test-token", gotToken)
	assert.Contains(t, gotFields, "body_html")
	assert.Contains(t, gotFields, "images")

	require.Len(t, products, 1)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Shirt", products[0].Title)
	require.Len(t, products[0].Images, 1)
	assert.Equal(t, "http://x/1.jpg", products[0].Images[0].Src)
	require.Len(t, products[0].Variants, 1)
	assert.Equal(t, 19.99, products[0].Variants[0].Price)
}

func TestFetchOrdersEmptyCollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"orders":[]}`))
	}))
	defer srv.Close()

	client := newClientWithBaseURL(srv.URL, "test-token")

	orders, err := client.FetchOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestFetchFailsOnUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":"unauthorized"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := newClientWithBaseURL(srv.URL, "bad-token")

	_, err := client.FetchCustomers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "customers")
}

func TestFetchFailsOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	client := newClientWithBaseURL(srv.URL, "test-token")

	_, err := client.FetchInventoryLevels(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed")
}

func TestFetchFailsOnMissingCollectionKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"something_else":[]}`))
	}))
	defer srv.Close()

	client := newClientWithBaseURL(srv.URL, "test-token")

	_, err := client.FetchOrders(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing "orders" collection`)
}

func TestFetchFailsOnNonCollectionShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"orders":{"id":1}}`))
	}))
	defer srv.Close()

	client := newClientWithBaseURL(srv.URL, "test-token")

	_, err := client.FetchOrders(context.Background())
	require.Error(t, err)
}
