package api

import (
	"net/http"
	"strconv"
	"time"

	"shopify-mirror/internal/service"
	"shopify-mirror/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	syncService   *service.SyncService
	ingestService *service.IngestService
}

// NewHandler creates a new HTTP handler
func NewHandler(syncService *service.SyncService, ingestService *service.IngestService) *Handler {
	return &Handler{
		syncService:   syncService,
		ingestService: ingestService,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/", h.root)
	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/fetch-orders", h.fetchOrders)
	router.GET("/fetch-customers", h.fetchCustomers)
	router.GET("/fetch-products", h.fetchProducts)
	router.GET("/fetch-inventory", h.fetchInventory)

	webhooks := router.Group("/webhook")
	{
		webhooks.POST("/orders/create", h.webhookOrderCreate)
		webhooks.POST("/customers/create", h.webhookCustomerCreate)
		webhooks.POST("/products/create", h.webhookProductCreate)
		webhooks.POST("/inventory/update", h.webhookInventoryUpdate)
	}
}

// root handles the liveness check
func (h *Handler) root(c *gin.Context) {
	c.String(http.StatusOK, "shopify-mirror API is running")
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// fetchOrders triggers a poll sync of the orders collection
func (h *Handler) fetchOrders(c *gin.Context) {
	if _, err := h.syncService.SyncOrders(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Orders fetched and stored"})
}

// fetchCustomers triggers a poll sync of the customers collection
func (h *Handler) fetchCustomers(c *gin.Context) {
	if _, err := h.syncService.SyncCustomers(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Customers fetched and stored"})
}

// fetchProducts triggers a poll sync of the products collection
func (h *Handler) fetchProducts(c *gin.Context) {
	if _, err := h.syncService.SyncProducts(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Products fetched and stored"})
}

// fetchInventory triggers a poll sync of the inventory levels collection
func (h *Handler) fetchInventory(c *gin.Context) {
	if _, err := h.syncService.SyncInventory(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Inventory fetched and stored"})
}

// webhookOrderCreate ingests a pushed order
func (h *Handler) webhookOrderCreate(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.ingestService.IngestOrder(c.Request.Context(), body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order received and stored"})
}

// webhookCustomerCreate ingests a pushed customer
func (h *Handler) webhookCustomerCreate(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.ingestService.IngestCustomer(c.Request.Context(), body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer received and stored"})
}

// webhookProductCreate ingests a pushed product
func (h *Handler) webhookProductCreate(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.ingestService.IngestProduct(c.Request.Context(), body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product received and stored"})
}

// webhookInventoryUpdate ingests a pushed inventory level, replacing any
// existing record for the same inventory_item_id
func (h *Handler) webhookInventoryUpdate(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.ingestService.IngestInventory(c.Request.Context(), body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory level received and stored"})
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
