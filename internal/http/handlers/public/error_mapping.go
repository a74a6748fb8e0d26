package public

import (
	"errors"

	"github.com/shopvn-next/internal/http/response"
	"github.com/shopvn-next/internal/i18n"
	"github.com/shopvn-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var authErrorRules = []mappedHandlerError{
	{target: service.ErrValidation, code: response.CodeBadRequest, key: i18n.MsgBadRequest},
	{target: service.ErrEmailExists, code: response.CodeBadRequest, key: i18n.MsgEmailTaken},
	{target: service.ErrUsernameExists, code: response.CodeBadRequest, key: i18n.MsgUsernameTaken},
	{target: service.ErrWeakPassword, code: response.CodeBadRequest, key: i18n.MsgWeakPassword},
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, key: i18n.MsgInvalidCredentials},
	{target: service.ErrUserDisabled, code: response.CodeUnauthorized, key: i18n.MsgUserDisabled},
}

var profileErrorRules = []mappedHandlerError{
	{target: service.ErrValidation, code: response.CodeBadRequest, key: i18n.MsgBadRequest},
	{target: service.ErrUserNotFound, code: response.CodeNotFound, key: i18n.MsgUnauthorized},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrValidation, code: response.CodeBadRequest, key: i18n.MsgInvalidQuantity},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: i18n.MsgProductNotFound},
	{target: service.ErrProductInactive, code: response.CodeBadRequest, key: i18n.MsgProductUnavailable},
	{target: service.ErrInsufficientStock, code: response.CodeBadRequest, key: i18n.MsgInsufficientStock},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, key: i18n.MsgCartItemNotFound},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrValidation, code: response.CodeBadRequest, key: i18n.MsgBadRequest},
	{target: service.ErrInvalidPayment, code: response.CodeBadRequest, key: i18n.MsgInvalidPaymentMethod},
	{target: service.ErrCartNotFound, code: response.CodeNotFound, key: i18n.MsgCartEmpty},
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: i18n.MsgCartEmpty},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: i18n.MsgProductNotFound},
	{target: service.ErrUserNotFound, code: response.CodeUnauthorized, key: i18n.MsgUnauthorized},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrValidation, code: response.CodeBadRequest, key: i18n.MsgBadRequest},
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: i18n.MsgOrderNotFound},
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, i18n.MsgInternalError)
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, i18n.MsgInternalError)
}

func respondAuthError(c *gin.Context, err error) {
	respondWithMappedError(c, err, authErrorRules, response.CodeInternal, i18n.MsgInternalError)
}

func respondProfileError(c *gin.Context, err error) {
	respondWithMappedError(c, err, profileErrorRules, response.CodeInternal, i18n.MsgInternalError)
}

func respondOrderError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, i18n.MsgInternalError)
}
