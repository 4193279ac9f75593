package public

import (
	"errors"

	"github.com/amazona-next/internal/http/response"
	"github.com/amazona-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var cartMutationErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotAvailable, code: response.CodeNotFound, msg: "product not available"},
	{target: service.ErrInsufficientStock, code: response.CodeConflict, msg: "sorry, product is out of stock"},
	{target: service.ErrStockUnavailable, code: response.CodeUnavailable, msg: "stock check unavailable"},
}

var checkoutDetailErrorRules = []mappedHandlerError{
	{target: service.ErrShippingFieldMissing, code: response.CodeBadRequest, msg: "all shipping address fields are required"},
	{target: service.ErrPaymentMethodRequired, code: response.CodeBadRequest, msg: "payment method is required"},
	{target: service.ErrPaymentMethodInvalid, code: response.CodeBadRequest, msg: "payment method is not supported"},
}

var placeOrderExtraErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, msg: "cart is empty"},
	{target: service.ErrCheckoutIncomplete, code: response.CodeBadRequest, msg: "checkout steps incomplete"},
	{target: service.ErrQueueUnavailable, code: response.CodeInternal, msg: "order hand-off failed"},
}

func respondCartMutationError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartMutationErrorRules, response.CodeInternal, "cart update failed")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutDetailErrorRules, response.CodeInternal, "checkout update failed")
}

func respondPlaceOrderError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(cartMutationErrorRules, placeOrderExtraErrorRules), response.CodeInternal, "order placement failed")
}
