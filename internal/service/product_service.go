package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopvn-next/internal/cache"
	"github.com/shopvn-next/internal/logger"
	"github.com/shopvn-next/internal/models"
	"github.com/shopvn-next/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	categoryCacheKey = "catalog:categories"
	categoryCacheTTL = 5 * time.Minute
)

// ProductService 商品服务
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ProductListInput 商品列表查询输入
type ProductListInput struct {
	Page       int
	PageSize   int
	CategoryID uint
	Search     string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	SortPrice  string // asc / desc
}

// List 商品列表（仅上架商品），支持搜索、分类、价格区间与价格排序
func (s *ProductService) List(input ProductListInput) ([]models.Product, int64, error) {
	return s.productRepo.List(repository.ProductListFilter{
		Page:         input.Page,
		PageSize:     input.PageSize,
		CategoryID:   input.CategoryID,
		Search:       strings.TrimSpace(input.Search),
		MinPrice:     input.MinPrice,
		MaxPrice:     input.MaxPrice,
		SortPrice:    input.SortPrice,
		OnlyActive:   true,
		WithCategory: true,
	})
}

// GetByID 获取上架商品详情
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	if id == 0 {
		return nil, ErrValidation
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListCategories 分类列表（短 TTL 缓存，缓存不可用时直接回源）
func (s *ProductService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var cached []models.Category
	hit, err := cache.GetJSON(ctx, categoryCacheKey, &cached)
	if err != nil {
		logger.Warnw("category_cache_read_failed", "error", err)
	}
	if hit {
		return cached, nil
	}

	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, categoryCacheKey, categories, categoryCacheTTL); err != nil {
		logger.Warnw("category_cache_write_failed", "error", err)
	}
	return categories, nil
}
