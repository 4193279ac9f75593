package repository

import (
	"errors"

	"github.com/amazona-next/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品目录数据访问接口（只读为主）
type ProductRepository interface {
	List() ([]models.Product, error)
	ListFeatured() ([]models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// List 获取全部商品
func (r *GormProductRepository) List() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("created_at desc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListFeatured 获取推荐商品
func (r *GormProductRepository) ListFeatured() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("is_featured = ?", true).Order("created_at desc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetBySlug 按 slug 获取商品，不存在时返回 (nil, nil)
func (r *GormProductRepository) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.Where("slug = ?", slug).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}
