package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopvn-next/internal/constants"
	"github.com/shopvn-next/internal/models"
	"github.com/shopvn-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupUserServiceTest(t *testing.T, name string) (*UserService, *CartService, *OrderService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:user_service_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)

	userSvc := NewUserService(userRepo, cartRepo, orderRepo)
	cartSvc := NewCartService(cartRepo, productRepo)
	orderSvc := NewOrderService(orderRepo, cartRepo, productRepo, userRepo)
	return userSvc, cartSvc, orderSvc, db
}

func TestGetProfileAggregatesCartAndOrders(t *testing.T) {
	userSvc, cartSvc, orderSvc, db := setupUserServiceTest(t, "profile")
	user := createOrderTestUser(t, db, "profile@example.com")
	product := createCartTestProduct(t, db, "p", 100000, 10, true)

	if _, err := cartSvc.AddItem(AddItemInput{UserID: user.ID, ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := orderSvc.Checkout(CheckoutInput{
		UserID:        user.ID,
		Items:         []CheckoutItem{{ProductID: product.ID, Quantity: 1}},
		PaymentMethod: constants.PaymentMethodCOD,
	}); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if _, err := cartSvc.AddItem(AddItemInput{UserID: user.ID, ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	profile, err := userSvc.GetProfile(user.ID)
	if err != nil {
		t.Fatalf("get profile failed: %v", err)
	}
	if profile.User.ID != user.ID {
		t.Fatalf("unexpected user: %+v", profile.User)
	}
	if len(profile.Cart) != 1 || profile.Cart[0].Quantity != 2 {
		t.Fatalf("unexpected cart items: %+v", profile.Cart)
	}
	if len(profile.Orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(profile.Orders))
	}
}

func TestUpdateProfileOnlyTouchesSubmittedFields(t *testing.T) {
	userSvc, _, _, db := setupUserServiceTest(t, "update")
	user := createOrderTestUser(t, db, "update@example.com")

	newName := "  Trần Thị B  "
	updated, err := userSvc.UpdateProfile(user.ID, UpdateProfileInput{FullName: &newName})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.FullName != "Trần Thị B" {
		t.Fatalf("expected trimmed full name, got %q", updated.FullName)
	}
	if updated.Phone != user.Phone || updated.Address != user.Address {
		t.Fatalf("unsubmitted fields must stay unchanged: %+v", updated)
	}
}

func TestDeleteAccountCascades(t *testing.T) {
	userSvc, cartSvc, orderSvc, db := setupUserServiceTest(t, "delete")
	user := createOrderTestUser(t, db, "delete@example.com")
	product := createCartTestProduct(t, db, "p", 100000, 10, true)

	if _, err := cartSvc.AddItem(AddItemInput{UserID: user.ID, ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := orderSvc.Checkout(CheckoutInput{
		UserID:        user.ID,
		Items:         []CheckoutItem{{ProductID: product.ID, Quantity: 1}},
		PaymentMethod: constants.PaymentMethodCOD,
	}); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if _, err := cartSvc.AddItem(AddItemInput{UserID: user.ID, ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if err := userSvc.DeleteAccount(user.ID); err != nil {
		t.Fatalf("delete account failed: %v", err)
	}

	if _, err := userSvc.GetProfile(user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected user not found after deletion, got: %v", err)
	}
	for _, model := range []interface{}{&models.CartItem{}, &models.Cart{}, &models.OrderItem{}, &models.Order{}} {
		var count int64
		if err := db.Model(model).Count(&count).Error; err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count != 0 {
			t.Fatalf("expected cascade cleanup for %T, got %d rows", model, count)
		}
	}
}
