// file: models/category.go
package models

// Category 仅作展示分组用的独立字典表，不作为题目的外键约束
type Category struct {
	ID    uint32 `gorm:"primarykey" json:"id"`
	Name  string `gorm:"size:50;not null" json:"name"`
	Type  string `gorm:"size:50;not null;default:'category'" json:"type"`
	Color string `gorm:"size:20" json:"color"`
}

func (Category) TableName() string {
	return "categories"
}
