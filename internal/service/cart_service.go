package service

import (
	"time"

	"github.com/shopvn-next/internal/models"
	"github.com/shopvn-next/internal/repository"

	"gorm.io/gorm"
)

// CartService 购物车服务
// 库存在加购时预留：加购/调量与库存扣减始终在同一事务内完成，
// 扣减使用条件 UPDATE，并发加购由数据库行锁串行化，库存不会为负。
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItemInput 加购输入
type AddItemInput struct {
	UserID    uint
	ProductID uint
	Quantity  int
}

// CartView 购物车视图（加购/查询响应）
type CartView struct {
	CartID  uint              `json:"cart_id"`
	Items   []models.CartItem `json:"items"`
	Product *models.Product   `json:"product,omitempty"`
}

// CartItemView 单项变更视图（调量/删除响应）
type CartItemView struct {
	Item    *models.CartItem `json:"cart_item,omitempty"`
	Product *models.Product  `json:"product"`
}

// AddItem 加购（同商品合并数量）
// 库存校验只针对本次新增的增量：已在车内的数量此前已扣过库存。
func (s *CartService) AddItem(input AddItemInput) (*CartView, error) {
	if input.UserID == 0 || input.ProductID == 0 {
		return nil, ErrValidation
	}
	if input.Quantity < 1 {
		return nil, ErrValidation
	}

	var view *CartView
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)

		product, err := productRepo.GetByID(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}
		if !product.IsActive {
			return ErrProductInactive
		}

		affected, err := productRepo.DecrementStock(product.ID, input.Quantity)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInsufficientStock
		}

		cart, err := cartRepo.GetOrCreateByUser(input.UserID)
		if err != nil {
			return err
		}

		existing, err := cartRepo.GetItem(cart.ID, product.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			if err := cartRepo.CreateItem(&models.CartItem{
				CartID:    cart.ID,
				ProductID: product.ID,
				Quantity:  input.Quantity,
			}); err != nil {
				return err
			}
		} else {
			if err := cartRepo.UpdateItemQuantity(existing.ID, existing.Quantity+input.Quantity); err != nil {
				return err
			}
		}

		items, err := cartRepo.ListItems(cart.ID)
		if err != nil {
			return err
		}
		fresh, err := productRepo.GetByID(product.ID)
		if err != nil {
			return err
		}
		view = &CartView{CartID: cart.ID, Items: items, Product: fresh}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// ListByUser 获取用户购物车（没有购物车时返回空列表）
func (s *CartService) ListByUser(userID uint) (*CartView, error) {
	if userID == 0 {
		return nil, ErrValidation
	}
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &CartView{Items: []models.CartItem{}}, nil
	}
	items, err := s.cartRepo.ListItems(cart.ID)
	if err != nil {
		return nil, err
	}
	return &CartView{CartID: cart.ID, Items: items}, nil
}

// UpdateQuantity 调整购物车项数量
// 按差量同步库存：上调走条件扣减，下调归还差量，数量下限为 1。
func (s *CartService) UpdateQuantity(userID, cartItemID uint, quantity int) (*CartItemView, error) {
	if userID == 0 || cartItemID == 0 {
		return nil, ErrValidation
	}
	if quantity < 1 {
		return nil, ErrValidation
	}

	var view *CartItemView
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)

		item, err := s.ownedItem(cartRepo, userID, cartItemID)
		if err != nil {
			return err
		}

		diff := quantity - item.Quantity
		switch {
		case diff > 0:
			affected, err := productRepo.DecrementStock(item.ProductID, diff)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrInsufficientStock
			}
		case diff < 0:
			if _, err := productRepo.IncrementStock(item.ProductID, -diff); err != nil {
				return err
			}
		}

		if err := cartRepo.UpdateItemQuantity(item.ID, quantity); err != nil {
			return err
		}
		item.Quantity = quantity

		product, err := productRepo.GetByID(item.ProductID)
		if err != nil {
			return err
		}
		view = &CartItemView{Item: item, Product: product}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// RemoveItem 删除购物车项
// 注意：删除不归还库存，与加购时的预留构成既定的不对称语义。
func (s *CartService) RemoveItem(userID, cartItemID uint) (*CartItemView, error) {
	if userID == 0 || cartItemID == 0 {
		return nil, ErrValidation
	}

	var view *CartItemView
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)

		item, err := s.ownedItem(cartRepo, userID, cartItemID)
		if err != nil {
			return err
		}

		if err := cartRepo.DeleteItem(item.ID); err != nil {
			return err
		}

		product, err := productRepo.GetByID(item.ProductID)
		if err != nil {
			return err
		}
		view = &CartItemView{Product: product}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Prune 清理失效购物车项：商品已下架/删除的，以及长期未动的。
// 与 RemoveItem 一致，清理不归还库存。
func (s *CartService) Prune(staleBefore time.Time) (int64, error) {
	removedInactive, err := s.cartRepo.DeleteItemsWithInactiveProducts()
	if err != nil {
		return 0, err
	}
	removedStale, err := s.cartRepo.DeleteStaleItems(staleBefore)
	if err != nil {
		return removedInactive, err
	}
	return removedInactive + removedStale, nil
}

// ownedItem 获取购物车项并校验归属，归属不符与不存在同样返回未找到
func (s *CartService) ownedItem(cartRepo repository.CartRepository, userID, cartItemID uint) (*models.CartItem, error) {
	item, err := cartRepo.GetItemByID(cartItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	cart, err := cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil || cart.ID != item.CartID {
		return nil, ErrCartItemNotFound
	}
	return item, nil
}
