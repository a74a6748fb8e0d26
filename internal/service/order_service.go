package service

import (
	"github.com/shopvn-next/internal/constants"
	"github.com/shopvn-next/internal/models"
	"github.com/shopvn-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// CheckoutItem 结算项输入
type CheckoutItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CheckoutInput 结算输入
type CheckoutInput struct {
	UserID        uint
	Items         []CheckoutItem
	PaymentMethod string
}

// Checkout 结算下单
// 单事务完成：单价按下单时刻的商品现价做快照写入订单项，订单总额由
// 服务端价格汇总（不信任客户端金额）；已下单的商品从购物车移除；库存
// 不在此处变动（加购时已预留）。任一步失败整体回滚。
func (s *OrderService) Checkout(input CheckoutInput) (*models.Order, error) {
	if input.UserID == 0 || len(input.Items) == 0 {
		return nil, ErrValidation
	}
	for _, item := range input.Items {
		if item.ProductID == 0 || item.Quantity < 1 {
			return nil, ErrValidation
		}
	}
	if !constants.ValidPaymentMethod(input.PaymentMethod) {
		return nil, ErrInvalidPayment
	}

	var created *models.Order
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)
		userRepo := s.userRepo.WithTx(tx)

		cart, err := cartRepo.GetByUser(input.UserID)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartNotFound
		}

		user, err := userRepo.GetByID(input.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		total := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(input.Items))
		productIDs := make([]uint, 0, len(input.Items))
		for _, item := range input.Items {
			product, err := productRepo.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return ErrProductNotFound
			}
			lineTotal := product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
			total = total.Add(lineTotal)
			orderItems = append(orderItems, models.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				Price:     product.Price,
			})
			productIDs = append(productIDs, product.ID)
		}

		order := &models.Order{
			UserID:          input.UserID,
			TotalAmount:     models.NewMoneyFromDecimal(total),
			ShippingAddress: user.Address,
			ShippingPhone:   user.Phone,
			Status:          constants.OrderStatusPending,
			PaymentMethod:   input.PaymentMethod,
			PaymentStatus:   constants.PaymentStatusPending,
			Items:           orderItems,
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}

		if err := cartRepo.DeleteItemsByProducts(cart.ID, productIDs); err != nil {
			return err
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListByUser 用户订单列表（最新在前）
func (s *OrderService) ListByUser(userID uint, page, pageSize int) ([]models.Order, int64, error) {
	if userID == 0 {
		return nil, 0, ErrValidation
	}
	return s.orderRepo.List(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
	})
}

// GetByIDForUser 获取订单详情并校验归属
func (s *OrderService) GetByIDForUser(orderID, userID uint) (*models.Order, error) {
	if orderID == 0 || userID == 0 {
		return nil, ErrValidation
	}
	order, err := s.orderRepo.GetByIDForUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
