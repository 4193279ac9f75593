package main

import (
	"github.com/amazona-next/internal/config"
	"github.com/amazona-next/internal/logger"
	"github.com/amazona-next/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	products := []models.Product{
		{
			Name:         "Free Shirt",
			Slug:         "free-shirt",
			Category:     "Shirts",
			Image:        "/images/shirt1.jpg",
			IsFeatured:   true,
			Banner:       "/images/banner1.jpg",
			Price:        models.NewMoneyFromFloat(70),
			Brand:        "Nike",
			Rating:       4.5,
			NumReviews:   10,
			CountInStock: 20,
			Description:  "A popular shirt",
		},
		{
			Name:         "Fit Shirt",
			Slug:         "fit-shirt",
			Category:     "Shirts",
			Image:        "/images/shirt2.jpg",
			IsFeatured:   true,
			Banner:       "/images/banner2.jpg",
			Price:        models.NewMoneyFromFloat(80),
			Brand:        "Adidas",
			Rating:       3.2,
			NumReviews:   10,
			CountInStock: 20,
			Description:  "A popular shirt",
		},
		{
			Name:         "Slim Shirt",
			Slug:         "slim-shirt",
			Category:     "Shirts",
			Image:        "/images/shirt3.jpg",
			Price:        models.NewMoneyFromFloat(90),
			Brand:        "Raymond",
			Rating:       4.5,
			NumReviews:   3,
			CountInStock: 20,
			Description:  "A popular shirt",
		},
		{
			Name:         "Golf Pants",
			Slug:         "golf-pants",
			Category:     "Pants",
			Image:        "/images/pants1.jpg",
			Price:        models.NewMoneyFromFloat(90),
			Brand:        "Oliver",
			Rating:       4.5,
			NumReviews:   10,
			CountInStock: 20,
			Description:  "Smart looking pants",
		},
		{
			Name:         "Fit Pants",
			Slug:         "fit-pants",
			Category:     "Pants",
			Image:        "/images/pants2.jpg",
			Price:        models.NewMoneyFromFloat(95),
			Brand:        "Zara",
			Rating:       4.5,
			NumReviews:   10,
			CountInStock: 20,
			Description:  "A popular pants",
		},
		{
			Name:         "Classic Pants",
			Slug:         "classic-pants",
			Category:     "Pants",
			Image:        "/images/pants3.jpg",
			Price:        models.NewMoneyFromFloat(75),
			Brand:        "Casely",
			Rating:       4.5,
			NumReviews:   10,
			CountInStock: 20,
			Description:  "A popular pants",
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("slug = ?", product.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Slug, err)
			} else {
				stdLog.Printf("Created product: %s", product.Slug)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Slug)
		}
	}

	stdLog.Println("Seed finished")
}
