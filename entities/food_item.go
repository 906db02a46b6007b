package entities

// FoodItem mirrors the food_items table. Dates are kept as the ISO strings
// that are persisted so rows written by older tools load unchanged.
type FoodItem struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"column:name;type:text;not null" json:"name"`
	Category   string `gorm:"column:category;type:text" json:"category"`
	Quantity   string `gorm:"column:quantity;type:text" json:"quantity"`
	Location   string `gorm:"column:location;type:text" json:"location"`
	ExpiryDate string `gorm:"column:expiry_date;type:text;not null" json:"expiry_date"`
	AddedAt    string `gorm:"column:added_at;type:text" json:"added_at"`
}

func (FoodItem) TableName() string {
	return "food_items"
}
