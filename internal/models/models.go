package models

import "time"

// Order is the canonical stored form of an upstream order. Money fields keep
// the upstream string representation so currency amounts survive unrounded.
type Order struct {
	ID                int64        `bson:"id" json:"id"`
	OrderNumber       string       `bson:"order_number" json:"order_number"`
	TotalPrice        string       `bson:"total_price" json:"total_price"`
	FinancialStatus   string       `bson:"financial_status" json:"financial_status"`
	FulfillmentStatus string       `bson:"fulfillment_status" json:"fulfillment_status"`
	CreatedAt         time.Time    `bson:"created_at" json:"created_at"`
	LineItems         []LineItem   `bson:"line_items" json:"line_items"`
	Customer          *CustomerRef `bson:"customer" json:"customer"`
}

// LineItem is one entry of an order's line_items sequence.
type LineItem struct {
	ProductID int64  `bson:"product_id" json:"product_id"`
	VariantID int64  `bson:"variant_id" json:"variant_id"`
	Name      string `bson:"name" json:"name"`
	Quantity  int    `bson:"quantity" json:"quantity"`
	Price     string `bson:"price" json:"price"`
}

// CustomerRef is the customer snapshot embedded in an order, distinct from
// the full Customer record.
type CustomerRef struct {
	ID        int64  `bson:"id" json:"id"`
	FirstName string `bson:"first_name" json:"first_name"`
	LastName  string `bson:"last_name" json:"last_name"`
	Email     string `bson:"email" json:"email"`
}

// Customer is the canonical stored form of an upstream customer.
type Customer struct {
	ID          int64     `bson:"id" json:"id"`
	Email       string    `bson:"email" json:"email"`
	FirstName   string    `bson:"first_name" json:"first_name"`
	LastName    string    `bson:"last_name" json:"last_name"`
	Phone       string    `bson:"phone" json:"phone"`
	OrdersCount int       `bson:"orders_count" json:"orders_count"`
	TotalSpent  string    `bson:"total_spent" json:"total_spent"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
	Addresses   []Address `bson:"addresses" json:"addresses"`
}

// Address is one entry of a customer's addresses sequence. IsDefault carries
// the upstream "default" flag.
type Address struct {
	Address1  string `bson:"address1" json:"address1"`
	Address2  string `bson:"address2" json:"address2"`
	City      string `bson:"city" json:"city"`
	Province  string `bson:"province" json:"province"`
	Country   string `bson:"country" json:"country"`
	Zip       string `bson:"zip" json:"zip"`
	Phone     string `bson:"phone" json:"phone"`
	IsDefault bool   `bson:"is_default" json:"is_default"`
}

// Product is the canonical stored form of an upstream product. Description
// holds the upstream body_html verbatim; Tags stays the comma-joined string
// the upstream API ships.
type Product struct {
	ID          int64     `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Vendor      string    `bson:"vendor" json:"vendor"`
	ProductType string    `bson:"product_type" json:"product_type"`
	Tags        string    `bson:"tags" json:"tags"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
	Variants    []Variant `bson:"variants" json:"variants"`
	Images      []string  `bson:"images" json:"images"`
}

// Variant is one entry of a product's variants sequence. Price is numeric
// here because the upstream products payload sends variant prices as numbers,
// unlike order money fields.
type Variant struct {
	ID                int64   `bson:"id" json:"id"`
	Title             string  `bson:"title" json:"title"`
	Price             float64 `bson:"price" json:"price"`
	SKU               string  `bson:"sku" json:"sku"`
	InventoryQuantity int     `bson:"inventory_quantity" json:"inventory_quantity"`
}

// InventoryLevel is the canonical stored form of an upstream inventory level,
// keyed by inventory_item_id. ProductID and VariantID are pointers because
// some inventory rows legitimately have neither.
type InventoryLevel struct {
	InventoryItemID int64     `bson:"inventory_item_id" json:"inventory_item_id"`
	ProductID       *int64    `bson:"product_id,omitempty" json:"product_id,omitempty"`
	VariantID       *int64    `bson:"variant_id,omitempty" json:"variant_id,omitempty"`
	LocationID      int64     `bson:"location_id" json:"location_id"`
	Available       int       `bson:"available" json:"available"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
