package entity

// Customer places outgoing orders.
type Customer struct {
	ID          uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FullName    string  `gorm:"column:full_name;type:varchar(80);not null" json:"full_name"`
	PhoneNumber string  `gorm:"column:phone_number;type:varchar(20)" json:"phone_number"`
	Email       string  `gorm:"column:email;type:varchar(128)" json:"email"`
	ContactInfo *string `gorm:"column:contact_info;type:text" json:"contact_info,omitempty"`
}

func (Customer) TableName() string {
	return "customer"
}

func (c Customer) String() string {
	return c.FullName
}
