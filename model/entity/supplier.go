package entity

// Supplier is an organization delivering goods to the warehouse.
type Supplier struct {
	ID           uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Organization string     `gorm:"column:organization;type:varchar(80);not null;uniqueIndex" json:"organization"`
	Address      string     `gorm:"column:address;type:text" json:"address"`
	PhoneNumber  string     `gorm:"column:phone_number;type:varchar(20)" json:"phone_number"`
	Email        string     `gorm:"column:email;type:varchar(128)" json:"email"`
	LegalDetails string     `gorm:"column:legal_details;type:text" json:"legal_details"`
	ContactInfo  *string    `gorm:"column:contact_info;type:text" json:"contact_info,omitempty"`
	Categories   []Category `gorm:"many2many:supplier_category;joinForeignKey:SupplierID;joinReferences:CategoryID" json:"categories,omitempty"`
}

func (Supplier) TableName() string {
	return "supplier"
}

func (s Supplier) String() string {
	return s.Organization
}

// SupplierCategory is the supplier-category join row. The pair is unique.
type SupplierCategory struct {
	ID         uint `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SupplierID uint `gorm:"column:supplier_id;not null;uniqueIndex:idx_supplier_category_unq" json:"supplier_id"`
	CategoryID uint `gorm:"column:category_id;not null;uniqueIndex:idx_supplier_category_unq" json:"category_id"`
}

func (SupplierCategory) TableName() string {
	return "supplier_category"
}
