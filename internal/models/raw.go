package models

import "time"

// Raw types mirror the upstream API's JSON contract for the fields this
// service keeps. Anything the upstream sends beyond these is dropped at
// decode time.

// RawOrder is an order as the upstream API sends it. The order number
// travels in the "name" field.
type RawOrder struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	TotalPrice        string            `json:"total_price"`
	FinancialStatus   string            `json:"financial_status"`
	FulfillmentStatus string            `json:"fulfillment_status"`
	CreatedAt         time.Time         `json:"created_at"`
	LineItems         []RawLineItem     `json:"line_items"`
	Customer          *RawOrderCustomer `json:"customer"`
}

// RawLineItem is one line of an upstream order.
type RawLineItem struct {
	ProductID int64  `json:"product_id"`
	VariantID int64  `json:"variant_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// RawOrderCustomer is the customer snapshot the upstream embeds in orders.
type RawOrderCustomer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// RawCustomer is a customer as the upstream API sends it.
type RawCustomer struct {
	ID          int64        `json:"id"`
	Email       string       `json:"email"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Phone       string       `json:"phone"`
	OrdersCount int          `json:"orders_count"`
	TotalSpent  string       `json:"total_spent"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Addresses   []RawAddress `json:"addresses"`
}

// RawAddress is one entry of an upstream customer's addresses. The upstream
// flags the default address with a bare "default" boolean.
type RawAddress struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	Province string `json:"province"`
	Country  string `json:"country"`
	Zip      string `json:"zip"`
	Phone    string `json:"phone"`
	Default  bool   `json:"default"`
}

// RawProduct is a product as the upstream API sends it. The description
// travels as HTML in body_html.
type RawProduct struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	BodyHTML    string       `json:"body_html"`
	Vendor      string       `json:"vendor"`
	ProductType string       `json:"product_type"`
	Tags        string       `json:"tags"`
	Status      string       `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Variants    []RawVariant `json:"variants"`
	Images      []RawImage   `json:"images"`
}

// RawVariant is one entry of an upstream product's variants.
type RawVariant struct {
	ID                int64   `json:"id"`
	Title             string  `json:"title"`
	Price             float64 `json:"price"`
	SKU               string  `json:"sku"`
	InventoryQuantity int     `json:"inventory_quantity"`
}

// RawImage is an upstream product image object; only src survives.
type RawImage struct {
	Src string `json:"src"`
}

// RawInventoryLevel is an inventory level as the upstream API sends it.
type RawInventoryLevel struct {
	InventoryItemID int64     `json:"inventory_item_id"`
	ProductID       *int64    `json:"product_id"`
	VariantID       *int64    `json:"variant_id"`
	LocationID      int64     `json:"location_id"`
	Available       int       `json:"available"`
	UpdatedAt       time.Time `json:"updated_at"`
}
