// Package normalize maps raw upstream payload shapes to the canonical stored
// shapes. All functions are pure: no I/O, no validation of field values, and
// absent optional fields come through as their zero values. Nested sequences
// always normalize to non-nil slices so an empty upstream array and a missing
// one both store as [].
package normalize

import "shopify-mirror/internal/models"

// Order maps one raw upstream order to its canonical form. A nil upstream
// customer stays nil.
func Order(raw models.RawOrder) models.Order {
	items := make([]models.LineItem, 0, len(raw.LineItems))
	for _, li := range raw.LineItems {
		items = append(items, models.LineItem{
			ProductID: li.ProductID,
			VariantID: li.VariantID,
			Name:      li.Name,
			Quantity:  li.Quantity,
			Price:     li.Price,
		})
	}

	var customer *models.CustomerRef
	if raw.Customer != nil {
		customer = &models.CustomerRef{
			ID:        raw.Customer.ID,
			FirstName: raw.Customer.FirstName,
			LastName:  raw.Customer.LastName,
			Email:     raw.Customer.Email,
		}
	}

	return models.Order{
		ID:                raw.ID,
		OrderNumber:       raw.Name,
		TotalPrice:        raw.TotalPrice,
		FinancialStatus:   raw.FinancialStatus,
		FulfillmentStatus: raw.FulfillmentStatus,
		CreatedAt:         raw.CreatedAt,
		LineItems:         items,
		Customer:          customer,
	}
}

// Customer maps one raw upstream customer to its canonical form. The
// per-address "default" flag becomes is_default.
func Customer(raw models.RawCustomer) models.Customer {
	addrs := make([]models.Address, 0, len(raw.Addresses))
	for _, a := range raw.Addresses {
		addrs = append(addrs, models.Address{
			Address1:  a.Address1,
			Address2:  a.Address2,
			City:      a.City,
			Province:  a.Province,
			Country:   a.Country,
			Zip:       a.Zip,
			Phone:     a.Phone,
			IsDefault: a.Default,
		})
	}

	return models.Customer{
		ID:          raw.ID,
		Email:       raw.Email,
		FirstName:   raw.FirstName,
		LastName:    raw.LastName,
		Phone:       raw.Phone,
		OrdersCount: raw.OrdersCount,
		TotalSpent:  raw.TotalSpent,
		CreatedAt:   raw.CreatedAt,
		UpdatedAt:   raw.UpdatedAt,
		Addresses:   addrs,
	}
}

// Product maps one raw upstream product to its canonical form. Image objects
// collapse to their src URLs; body_html is stored as-is under description.
func Product(raw models.RawProduct) models.Product {
	variants := make([]models.Variant, 0, len(raw.Variants))
	for _, v := range raw.Variants {
		variants = append(variants, models.Variant{
			ID:                v.ID,
			Title:             v.Title,
			Price:             v.Price,
			SKU:               v.SKU,
			InventoryQuantity: v.InventoryQuantity,
		})
	}

	images := make([]string, 0, len(raw.Images))
	for _, img := range raw.Images {
		images = append(images, img.Src)
	}

	return models.Product{
		ID:          raw.ID,
		Title:       raw.Title,
		Description: raw.BodyHTML,
		Vendor:      raw.Vendor,
		ProductType: raw.ProductType,
		Tags:        raw.Tags,
		Status:      raw.Status,
		CreatedAt:   raw.CreatedAt,
		UpdatedAt:   raw.UpdatedAt,
		Variants:    variants,
		Images:      images,
	}
}

// Inventory maps one raw upstream inventory level to its canonical form.
// Missing product_id/variant_id pass through as nil.
func Inventory(raw models.RawInventoryLevel) models.InventoryLevel {
	return models.InventoryLevel{
		InventoryItemID: raw.InventoryItemID,
		ProductID:       raw.ProductID,
		VariantID:       raw.VariantID,
		LocationID:      raw.LocationID,
		Available:       raw.Available,
		UpdatedAt:       raw.UpdatedAt,
	}
}

// Orders maps a raw order collection element-wise, preserving order.
func Orders(raw []models.RawOrder) []models.Order {
	out := make([]models.Order, 0, len(raw))
	for _, r := range raw {
		out = append(out, Order(r))
	}
	return out
}

// Customers maps a raw customer collection element-wise.
func Customers(raw []models.RawCustomer) []models.Customer {
	out := make([]models.Customer, 0, len(raw))
	for _, r := range raw {
		out = append(out, Customer(r))
	}
	return out
}

// Products maps a raw product collection element-wise.
func Products(raw []models.RawProduct) []models.Product {
	out := make([]models.Product, 0, len(raw))
	for _, r := range raw {
		out = append(out, Product(r))
	}
	return out
}

// InventoryLevels maps a raw inventory collection element-wise.
func InventoryLevels(raw []models.RawInventoryLevel) []models.InventoryLevel {
	out := make([]models.InventoryLevel, 0, len(raw))
	for _, r := range raw {
		out = append(out, Inventory(r))
	}
	return out
}
