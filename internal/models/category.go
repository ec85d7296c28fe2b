package models

// Category groups products. Products reference a category, they never own it.
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

func (Category) TableName() string {
	return "categories"
}
