package public

import (
	"strconv"
	"strings"

	"github.com/shopvn-next/internal/http/response"
	"github.com/shopvn-next/internal/i18n"
	"github.com/shopvn-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ListProducts 商品列表
// 支持 search、category_id、min_price、max_price、sort_price、page、page_size。
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize > 100 {
		pageSize = 100
	}

	input := service.ProductListInput{
		Page:      page,
		PageSize:  pageSize,
		Search:    c.Query("search"),
		SortPrice: c.Query("sort_price"),
	}
	if raw := strings.TrimSpace(c.Query("category_id")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(c, response.CodeBadRequest, i18n.MsgBadRequest, err)
			return
		}
		input.CategoryID = uint(id)
	}
	if raw := strings.TrimSpace(c.Query("min_price")); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, i18n.MsgBadRequest, err)
			return
		}
		input.MinPrice = &v
	}
	if raw := strings.TrimSpace(c.Query("max_price")); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, i18n.MsgBadRequest, err)
			return
		}
		input.MaxPrice = &v
	}

	products, total, err := h.ProductService.List(input)
	if err != nil {
		respondError(c, response.CodeInternal, i18n.MsgInternalError, err)
		return
	}

	totalPage := int64(0)
	if pageSize > 0 {
		totalPage = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	response.SuccessWithPage(c, products, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, i18n.MsgBadRequest, err)
		return
	}
	product, svcErr := h.ProductService.GetByID(uint(id))
	if svcErr != nil {
		respondWithMappedError(c, svcErr, []mappedHandlerError{
			{target: service.ErrProductNotFound, code: response.CodeNotFound, key: i18n.MsgProductNotFound},
			{target: service.ErrValidation, code: response.CodeBadRequest, key: i18n.MsgBadRequest},
		}, response.CodeInternal, i18n.MsgInternalError)
		return
	}
	response.Success(c, product)
}

// ListCategories 分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.ProductService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, i18n.MsgInternalError, err)
		return
	}
	response.Success(c, categories)
}
