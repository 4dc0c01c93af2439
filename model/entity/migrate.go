package entity

// All returns every entity for gorm AutoMigrate, in FK dependency order.
func All() []interface{} {
	return []interface{}{
		&Category{},
		&Supplier{},
		&SupplierCategory{},
		&Customer{},
		&Stock{},
		&Cargo{},
		&CargoStock{},
		&Shipment{},
		&ShipmentStock{},
		&ActionLogEntry{},
	}
}
