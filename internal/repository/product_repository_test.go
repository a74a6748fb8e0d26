package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopvn-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T, name string) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:product_repo_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price int64, stock int, active bool) *models.Product {
	t.Helper()
	category := models.Category{Name: "cat-" + name}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := models.Product{
		CategoryID:    category.ID,
		Name:          name,
		Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		StockQuantity: stock,
		IsActive:      active,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if !active {
		// is_active 列带默认值 true，零值在 INSERT 中被忽略，需显式下架
		if err := db.Model(&models.Product{}).Where("id = ?", product.ID).Update("is_active", false).Error; err != nil {
			t.Fatalf("deactivate product failed: %v", err)
		}
		product.IsActive = false
	}
	return &product
}

func TestInactiveProductSurvivesReload(t *testing.T) {
	_, db := setupProductRepositoryTest(t, "inactive")
	product := createTestProduct(t, db, "hidden", 100000, 5, false)

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.IsActive {
		t.Fatalf("product created inactive came back active")
	}
}

func TestDecrementStockGuardRefusesOverdraft(t *testing.T) {
	repo, db := setupProductRepositoryTest(t, "guard")
	product := createTestProduct(t, db, "guarded", 100000, 3, true)

	affected, err := repo.DecrementStock(product.ID, 2)
	if err != nil {
		t.Fatalf("decrement failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 affected row, got %d", affected)
	}

	// 剩余 1，再扣 2 不命中任何行
	affected, err = repo.DecrementStock(product.ID, 2)
	if err != nil {
		t.Fatalf("decrement failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected guard to refuse overdraft, affected=%d", affected)
	}

	var reloaded models.Product
	if err := db.First(&reloaded, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if reloaded.StockQuantity != 1 {
		t.Fatalf("expected stock 1, got %d", reloaded.StockQuantity)
	}
}

func TestDecrementStockExactRemainder(t *testing.T) {
	repo, db := setupProductRepositoryTest(t, "exact")
	product := createTestProduct(t, db, "exact", 100000, 5, true)

	affected, err := repo.DecrementStock(product.ID, 5)
	if err != nil {
		t.Fatalf("decrement failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected full decrement to succeed, affected=%d", affected)
	}

	var reloaded models.Product
	if err := db.First(&reloaded, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if reloaded.StockQuantity != 0 {
		t.Fatalf("expected stock 0, got %d", reloaded.StockQuantity)
	}
}

func TestDecrementStockRejectsInvalidParams(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t, "params")
	if _, err := repo.DecrementStock(0, 1); err == nil {
		t.Fatalf("expected error for zero product id")
	}
	if _, err := repo.DecrementStock(1, 0); err == nil {
		t.Fatalf("expected error for zero quantity")
	}
	if _, err := repo.IncrementStock(1, -1); err == nil {
		t.Fatalf("expected error for negative quantity")
	}
}

func TestProductListPriceFilterAndSort(t *testing.T) {
	repo, db := setupProductRepositoryTest(t, "list")
	createTestProduct(t, db, "cheap", 100000, 10, true)
	mid := createTestProduct(t, db, "mid", 500000, 10, true)
	createTestProduct(t, db, "expensive", 1000000, 10, true)

	minPrice := decimal.NewFromInt(200000)
	maxPrice := decimal.NewFromInt(800000)
	products, total, err := repo.List(ProductListFilter{
		Page:       1,
		PageSize:   10,
		MinPrice:   &minPrice,
		MaxPrice:   &maxPrice,
		OnlyActive: true,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].ID != mid.ID {
		t.Fatalf("expected only mid-priced product, got total=%d products=%+v", total, products)
	}

	products, _, err = repo.List(ProductListFilter{Page: 1, PageSize: 10, SortPrice: "desc"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 3 || products[0].Name != "expensive" || products[2].Name != "cheap" {
		t.Fatalf("unexpected price sort order: %+v", products)
	}
}

func TestProductListNormalizesPagination(t *testing.T) {
	repo, db := setupProductRepositoryTest(t, "pagination")
	for i := 0; i < 3; i++ {
		createTestProduct(t, db, fmt.Sprintf("sp-%d", i), 100000, 1, true)
	}

	// page=0 按第一页处理，超限的 page_size 被收敛到上限
	products, total, err := repo.List(ProductListFilter{Page: 0, PageSize: maxPageSize * 5})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 || len(products) != 3 {
		t.Fatalf("expected all 3 products, got total=%d len=%d", total, len(products))
	}
}

func TestProductListSearchAndActiveFilter(t *testing.T) {
	repo, db := setupProductRepositoryTest(t, "search")
	createTestProduct(t, db, "Điện thoại thông minh", 100000, 10, true)
	createTestProduct(t, db, "Laptop gaming", 200000, 10, true)
	createTestProduct(t, db, "Điện thoại cũ", 50000, 10, false)

	products, total, err := repo.List(ProductListFilter{
		Page:       1,
		PageSize:   10,
		Search:     "Điện thoại",
		OnlyActive: true,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("expected 1 active matching product, got total=%d len=%d", total, len(products))
	}
	if products[0].Name != "Điện thoại thông minh" {
		t.Fatalf("unexpected product: %s", products[0].Name)
	}
}
