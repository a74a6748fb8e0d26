package public

import (
	"strconv"

	"github.com/shopvn-next/internal/http/response"
	"github.com/shopvn-next/internal/i18n"
	"github.com/shopvn-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest 结算请求
type CheckoutRequest struct {
	Items []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
	// cod / bank_transfer / e_wallet
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// CheckoutItemRequest 结算项
type CheckoutItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// Checkout 结算下单
func (h *Handler) Checkout(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, i18n.MsgBadRequest, err)
		return
	}

	items := make([]service.CheckoutItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.CheckoutItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.OrderService.Checkout(service.CheckoutInput{
		UserID:        userID,
		Items:         items,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), i18n.MsgCheckoutSuccess), gin.H{
		"order": order,
	})
}

// ListOrders 当前用户订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize > 100 {
		pageSize = 100
	}

	orders, total, err := h.OrderService.ListByUser(userID, page, pageSize)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	totalPage := int64(0)
	if pageSize > 0 {
		totalPage = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	response.SuccessWithPage(c, orders, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, i18n.MsgBadRequest, err)
		return
	}

	order, svcErr := h.OrderService.GetByIDForUser(uint(id), userID)
	if svcErr != nil {
		respondOrderError(c, svcErr)
		return
	}
	response.Success(c, order)
}
