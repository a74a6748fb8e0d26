package main

import (
	"github.com/shopvn-next/internal/config"
	"github.com/shopvn-next/internal/logger"
	"github.com/shopvn-next/internal/models"

	"github.com/shopspring/decimal"
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

	// 添加分类
	categories := []models.Category{
		{Name: "Điện thoại", Description: "Điện thoại di động chính hãng", SortOrder: 30},
		{Name: "Laptop", Description: "Laptop văn phòng và gaming", SortOrder: 20},
		{Name: "Phụ kiện", Description: "Phụ kiện điện tử các loại", SortOrder: 10},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("name = ?", cat.Name).First(&existing).Error; err != nil {
			// 不存在则创建
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Name, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Name)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Name)
		}
	}

	// 获取分类ID
	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("name IN ?", []string{"Điện thoại", "Laptop", "Phụ kiện"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Name] = cat.ID
	}
	phoneID := categoryIDs["Điện thoại"]
	laptopID := categoryIDs["Laptop"]
	accessoryID := categoryIDs["Phụ kiện"]

	// 添加商品（价格单位：VND）
	products := []models.Product{
		{
			Name:          "Điện thoại thông minh X200",
			Description:   "Màn hình 6.7 inch, camera 108MP, pin 5000mAh",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(12990000)),
			CategoryID:    phoneID,
			ImageURL:      "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=800",
			StockQuantity: 50,
			IsActive:      true,
			SortOrder:     30,
		},
		{
			Name:          "Điện thoại phổ thông A15",
			Description:   "Màn hình 6.5 inch, pin 6000mAh, giá phải chăng",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(3490000)),
			CategoryID:    phoneID,
			ImageURL:      "https://images.unsplash.com/photo-1598327105666-5b89351aff97?w=800",
			StockQuantity: 120,
			IsActive:      true,
			SortOrder:     20,
		},
		{
			Name:          "Laptop văn phòng Slim 14",
			Description:   "CPU thế hệ mới, RAM 16GB, SSD 512GB, nặng 1.2kg",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(18990000)),
			CategoryID:    laptopID,
			ImageURL:      "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=800",
			StockQuantity: 30,
			IsActive:      true,
			SortOrder:     30,
		},
		{
			Name:          "Laptop gaming G15",
			Description:   "RTX đồ họa rời, màn hình 165Hz, tản nhiệt kép",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(32990000)),
			CategoryID:    laptopID,
			ImageURL:      "https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=800",
			StockQuantity: 15,
			IsActive:      true,
			SortOrder:     20,
		},
		{
			Name:          "Tai nghe không dây Pro",
			Description:   "Chống ồn chủ động, pin 24 giờ, kết nối Bluetooth 5.0",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(2490000)),
			CategoryID:    accessoryID,
			ImageURL:      "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=800",
			StockQuantity: 200,
			IsActive:      true,
			SortOrder:     30,
		},
		{
			Name:          "Sạc nhanh 65W",
			Description:   "Cổng USB-C, sạc nhanh cho điện thoại và laptop",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(490000)),
			CategoryID:    accessoryID,
			ImageURL:      "https://images.unsplash.com/photo-1583863788434-e58a36330cf0?w=800",
			StockQuantity: 300,
			IsActive:      true,
			SortOrder:     20,
		},
		{
			Name:          "Bàn phím cơ TKL",
			Description:   "Switch đỏ, đèn nền RGB, keycap PBT",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(1290000)),
			CategoryID:    accessoryID,
			ImageURL:      "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=800",
			StockQuantity: 0,
			IsActive:      true,
			SortOrder:     10,
		},
	}

	for _, p := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", p.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&p).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", p.Name, err)
			} else {
				stdLog.Printf("Created product: %s", p.Name)
			}
		} else {
			stdLog.Printf("Product already exists: %s", p.Name)
		}
	}

	stdLog.Printf("Seed finished")
}
