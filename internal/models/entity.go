package models

// Entity describes one upstream collection and where its records live
// locally: the upstream resource path, the top-level key its payload nests
// records under, the explicit field subset to request, and the local
// collection name.
type Entity struct {
	Name          string
	Path          string
	CollectionKey string
	Fields        []string
	Collection    string
}

var (
	// EntityOrders is the upstream orders collection.
	EntityOrders = Entity{
		Name:          "orders",
		Path:          "orders.json",
		CollectionKey: "orders",
		Fields: []string{
			"id", "name", "total_price", "financial_status",
			"fulfillment_status", "created_at", "line_items", "customer",
		},
		Collection: "orders",
	}

	// EntityCustomers is the upstream customers collection.
	EntityCustomers = Entity{
		Name:          "customers",
		Path:          "customers.json",
		CollectionKey: "customers",
		Fields: []string{
			"id", "email", "first_name", "last_name", "phone",
			"orders_count", "total_spent", "created_at", "updated_at", "addresses",
		},
		Collection: "customers",
	}

	// EntityProducts is the upstream products collection.
	EntityProducts = Entity{
		Name:          "products",
		Path:          "products.json",
		CollectionKey: "products",
		Fields: []string{
			"id", "title", "body_html", "vendor", "product_type",
			"tags", "status", "created_at", "updated_at", "variants", "images",
		},
		Collection: "products",
	}

	// EntityInventory is the upstream inventory levels collection.
	EntityInventory = Entity{
		Name:          "inventory",
		Path:          "inventory_levels.json",
		CollectionKey: "inventory_levels",
		Fields: []string{
			"inventory_item_id", "product_id", "variant_id",
			"location_id", "available", "updated_at",
		},
		Collection: "inventory",
	}
)
