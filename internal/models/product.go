package models

import (
	"time"
)

// Product 商品（目录读路径，库存以该表计数为准）
type Product struct {
	ID           uint      `gorm:"primarykey" json:"id"`                         // 主键
	Slug         string    `gorm:"type:varchar(191);not null;unique" json:"slug"` // 唯一标识
	Name         string    `gorm:"type:varchar(191);not null" json:"name"`       // 商品名
	Category     string    `gorm:"type:varchar(64)" json:"category"`             // 分类
	Brand        string    `gorm:"type:varchar(64)" json:"brand"`                // 品牌
	Image        string    `gorm:"type:varchar(255)" json:"image"`               // 主图
	Banner       string    `gorm:"type:varchar(255)" json:"banner,omitempty"`    // 轮播图
	Price        Money     `gorm:"type:decimal(12,2);not null" json:"price"`     // 单价
	Rating       float64   `json:"rating"`                                       // 评分
	NumReviews   int       `json:"num_reviews"`                                  // 评论数
	CountInStock int       `gorm:"not null;default:0" json:"count_in_stock"`     // 库存数量
	Description  string    `gorm:"type:text" json:"description"`                 // 描述
	IsFeatured   bool      `gorm:"index" json:"is_featured"`                     // 是否推荐
	CreatedAt    time.Time `json:"created_at"`                                   // 创建时间
	UpdatedAt    time.Time `json:"updated_at"`                                   // 更新时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
