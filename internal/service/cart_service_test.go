package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopvn-next/internal/models"
	"github.com/shopvn-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T, name string) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_service_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.User{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	svc := NewCartService(
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
	)
	return svc, db
}

func createCartTestProduct(t *testing.T, db *gorm.DB, name string, price int64, stock int, active bool) *models.Product {
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

func loadStock(t *testing.T, db *gorm.DB, productID uint) int {
	t.Helper()
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		t.Fatalf("load product failed: %v", err)
	}
	return product.StockQuantity
}

func TestAddItemMergesQuantityAndReservesStock(t *testing.T) {
	svc, db := setupCartServiceTest(t, "merge")
	product := createCartTestProduct(t, db, "phone", 100000, 10, true)

	if _, err := svc.AddItem(AddItemInput{UserID: 1, ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	view, err := svc.AddItem(AddItemInput{UserID: 1, ProductID: product.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if len(view.Items) != 1 {
		t.Fatalf("expected single merged item, got %d", len(view.Items))
	}
	if view.Items[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", view.Items[0].Quantity)
	}
	if got := loadStock(t, db, product.ID); got != 5 {
		t.Fatalf("expected stock 5 after reservation, got %d", got)
	}
}

func TestAddItemInsufficientStockLeavesStateUnchanged(t *testing.T) {
	svc, db := setupCartServiceTest(t, "insufficient")
	product := createCartTestProduct(t, db, "laptop", 200000, 1, true)

	_, err := svc.AddItem(AddItemInput{UserID: 1, ProductID: product.ID, Quantity: 2})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock, got: %v", err)
	}
	if got := loadStock(t, db, product.ID); got != 1 {
		t.Fatalf("expected stock unchanged at 1, got %d", got)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Count(&count).Error; err != nil {
		t.Fatalf("count cart items failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no cart items after rollback, got %d", count)
	}
}

func TestAddItemRejectsInactiveProduct(t *testing.T) {
	svc, db := setupCartServiceTest(t, "inactive")
	product := createCartTestProduct(t, db, "hidden", 50000, 10, false)

	_, err := svc.AddItem(AddItemInput{UserID: 1, ProductID: product.ID, Quantity: 1})
	if !errors.Is(err, ErrProductInactive) {
		t.Fatalf("expected product inactive, got: %v", err)
	}
}

func TestUpdateQuantitySyncsStockByDiff(t *testing.T) {
	svc, db := setupCartServiceTest(t, "update")
	product := createCartTestProduct(t, db, "earphones", 2490000, 10, true)

	view, err := svc.AddItem(AddItemInput{UserID: 1, ProductID: product.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	itemID := view.Items[0].ID

	// 2 -> 5：再扣 3
	if _, err := svc.UpdateQuantity(1, itemID, 5); err != nil {
		t.Fatalf("increase failed: %v", err)
	}
	if got := loadStock(t, db, product.ID); got != 5 {
		t.Fatalf("expected stock 5 after increase, got %d", got)
	}

	// 5 -> 1：归还 4
	updated, err := svc.UpdateQuantity(1, itemID, 1)
	if err != nil {
		t.Fatalf("decrease failed: %v", err)
	}
	if updated.Item.Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", updated.Item.Quantity)
	}
	if got := loadStock(t, db, product.ID); got != 9 {
		t.Fatalf("expected stock 9 after release, got %d", got)
	}
}

func TestUpdateQuantityInsufficientStock(t *testing.T) {
	svc, db := setupCartServiceTest(t, "update_insufficient")
	product := createCartTestProduct(t, db, "charger", 490000, 3, true)

	view, err := svc.AddItem(AddItemInput{UserID: 1, ProductID: product.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	_, err = svc.UpdateQuantity(1, view.Items[0].ID, 10)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock, got: %v", err)
	}
	if got := loadStock(t, db, product.ID); got != 1 {
		t.Fatalf("expected stock unchanged at 1, got %d", got)
	}
}

func TestUpdateQuantityRejectsBelowOne(t *testing.T) {
	svc, db := setupCartServiceTest(t, "floor")
	product := createCartTestProduct(t, db, "keyboard", 1290000, 5, true)

	view, err := svc.AddItem(AddItemInput{UserID: 1, ProductID: product.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.UpdateQuantity(1, view.Items[0].ID, 0); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for quantity 0, got: %v", err)
	}
}

func TestRemoveItemDoesNotRestoreStock(t *testing.T) {
	svc, db := setupCartServiceTest(t, "remove")
	product := createCartTestProduct(t, db, "watch", 4990000, 10, true)

	view, err := svc.AddItem(AddItemInput{UserID: 1, ProductID: product.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.RemoveItem(1, view.Items[0].ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	// 删除不归还库存
	if got := loadStock(t, db, product.ID); got != 7 {
		t.Fatalf("expected stock to stay at 7, got %d", got)
	}
	listed, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(listed.Items))
	}
}

func TestCartItemOwnershipNotLeaked(t *testing.T) {
	svc, db := setupCartServiceTest(t, "ownership")
	product := createCartTestProduct(t, db, "speaker", 890000, 10, true)

	view, err := svc.AddItem(AddItemInput{UserID: 1, ProductID: product.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// 他人的条目与不存在的条目返回同一错误
	if _, err := svc.UpdateQuantity(2, view.Items[0].ID, 3); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected cart item not found for foreign user, got: %v", err)
	}
	if _, err := svc.RemoveItem(2, view.Items[0].ID); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected cart item not found for foreign user, got: %v", err)
	}
	if _, err := svc.RemoveItem(1, 9999); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected cart item not found for missing item, got: %v", err)
	}
}

func TestListByUserWithoutCartReturnsEmpty(t *testing.T) {
	svc, _ := setupCartServiceTest(t, "empty")
	view, err := svc.ListByUser(42)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if view.Items == nil || len(view.Items) != 0 {
		t.Fatalf("expected empty item list, got: %+v", view.Items)
	}
}

func TestPruneRemovesInactiveAndStaleItems(t *testing.T) {
	svc, db := setupCartServiceTest(t, "prune")
	active := createCartTestProduct(t, db, "active", 100000, 10, true)
	toDisable := createCartTestProduct(t, db, "soon_inactive", 100000, 10, true)

	if _, err := svc.AddItem(AddItemInput{UserID: 1, ProductID: active.ID, Quantity: 1}); err != nil {
		t.Fatalf("add active failed: %v", err)
	}
	if _, err := svc.AddItem(AddItemInput{UserID: 1, ProductID: toDisable.ID, Quantity: 1}); err != nil {
		t.Fatalf("add to-disable failed: %v", err)
	}
	if err := db.Model(&models.Product{}).Where("id = ?", toDisable.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("disable product failed: %v", err)
	}

	removed, err := svc.Prune(time.Now().Add(-30 * 24 * time.Hour))
	if err != nil {
		t.Fatalf("prune failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed item, got %d", removed)
	}

	view, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].ProductID != active.ID {
		t.Fatalf("expected only active product to remain, got: %+v", view.Items)
	}
}
