package sdk

// Offline fixtures served by the mock fallback. Keep in sync with the demo
// seed data, not with production shapes.

func mockVendors() []Vendor {
	return []Vendor{
		{ID: "mock-vendor-1", Name: "Acme Supply Co", ContactEmail: "orders@acmesupply.test", Phone: "+15550001111", Status: "active"},
		{ID: "mock-vendor-2", Name: "Northwind Traders", ContactEmail: "sales@northwind.test", Phone: "+15550002222", Status: "active"},
		{ID: "mock-vendor-3", Name: "Initech Wholesale", ContactEmail: "contact@initech.test", Phone: "+15550003333", Status: "suspended"},
	}
}

func mockVendorByID(id string) *Vendor {
	for _, vendor := range mockVendors() {
		if vendor.ID == id {
			return &vendor
		}
	}
	return nil
}

func mockProducts() []Product {
	return []Product{
		{ID: "mock-product-1", SKU: "ACM-001", Name: "Box Cutter", VendorID: "mock-vendor-1", Category: "tools", UnitPrice: 799},
		{ID: "mock-product-2", SKU: "ACM-014", Name: "Packing Tape", VendorID: "mock-vendor-1", Category: "consumables", UnitPrice: 349},
		{ID: "mock-product-3", SKU: "NWT-207", Name: "Pallet Wrap", VendorID: "mock-vendor-2", Category: "consumables", UnitPrice: 1800},
	}
}

func mockInventory() []InventoryItem {
	return []InventoryItem{
		{ID: "mock-inv-1", ProductID: "mock-product-1", Location: "A-01", Quantity: 120, ReorderLevel: 20},
		{ID: "mock-inv-2", ProductID: "mock-product-2", Location: "A-02", Quantity: 14, ReorderLevel: 25},
		{ID: "mock-inv-3", ProductID: "mock-product-3", Location: "B-07", Quantity: 66, ReorderLevel: 10},
	}
}
