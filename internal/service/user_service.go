package service

import (
	"strings"

	"github.com/shopvn-next/internal/models"
	"github.com/shopvn-next/internal/repository"
)

// UserService 用户资料服务
type UserService struct {
	userRepo  repository.UserRepository
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
}

// NewUserService 创建用户资料服务
func NewUserService(userRepo repository.UserRepository, cartRepo repository.CartRepository, orderRepo repository.OrderRepository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
	}
}

// ProfileView 用户主页视图（含购物车与订单）
type ProfileView struct {
	User   *models.User      `json:"user"`
	Cart   []models.CartItem `json:"cart_items"`
	Orders []models.Order    `json:"orders"`
}

// GetProfile 获取用户主页数据
func (s *UserService) GetProfile(userID uint) (*ProfileView, error) {
	if userID == 0 {
		return nil, ErrValidation
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	cartItems := []models.CartItem{}
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		cartItems, err = s.cartRepo.ListItems(cart.ID)
		if err != nil {
			return nil, err
		}
	}

	orders, _, err := s.orderRepo.List(repository.OrderListFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	return &ProfileView{User: user, Cart: cartItems, Orders: orders}, nil
}

// UpdateProfileInput 资料更新输入
type UpdateProfileInput struct {
	FullName *string
	Phone    *string
	Address  *string
}

// UpdateProfile 更新用户资料（仅覆盖提交的字段）
func (s *UserService) UpdateProfile(userID uint, input UpdateProfileInput) (*models.User, error) {
	if userID == 0 {
		return nil, ErrValidation
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if input.FullName != nil {
		user.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Address != nil {
		user.Address = strings.TrimSpace(*input.Address)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount 注销账号（级联删除购物车与订单）
func (s *UserService) DeleteAccount(userID uint) error {
	if userID == 0 {
		return ErrValidation
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.DeleteCascade(userID)
}
