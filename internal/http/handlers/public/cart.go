package public

import (
	"strconv"

	"github.com/shopvn-next/internal/http/response"
	"github.com/shopvn-next/internal/i18n"
	"github.com/shopvn-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AddToCartRequest 加购请求
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// AddToCart 加入购物车
func (h *Handler) AddToCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, i18n.MsgInvalidQuantity, err)
		return
	}

	view, err := h.CartService.AddItem(service.AddItemInput{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondCartError(c, err)
		return
	}

	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), i18n.MsgCartItemAdded), view)
}

// GetCart 查看购物车
func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	view, err := h.CartService.ListByUser(userID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// UpdateCartItemRequest 调量请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItem 调整购物车项数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, i18n.MsgBadRequest, err)
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, i18n.MsgInvalidQuantity, err)
		return
	}

	view, svcErr := h.CartService.UpdateQuantity(userID, uint(itemID), req.Quantity)
	if svcErr != nil {
		respondCartError(c, svcErr)
		return
	}

	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), i18n.MsgCartItemUpdated), view)
}

// RemoveCartItem 删除购物车项
func (h *Handler) RemoveCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, i18n.MsgBadRequest, err)
		return
	}

	view, svcErr := h.CartService.RemoveItem(userID, uint(itemID))
	if svcErr != nil {
		respondCartError(c, svcErr)
		return
	}

	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), i18n.MsgCartItemRemoved), view)
}
