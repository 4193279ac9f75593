package public

import (
	"github.com/amazona-next/internal/constants"
	handlershared "github.com/amazona-next/internal/http/handlers/shared"
	"github.com/amazona-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

// cartSessionID 读取中间件注入的购物车会话标识
func cartSessionID(c *gin.Context) (string, bool) {
	value, ok := c.Get(constants.CartSessionContextKey)
	if !ok {
		respondError(c, response.CodeBadRequest, "cart session missing", nil)
		return "", false
	}
	id, ok := value.(string)
	if !ok || id == "" {
		respondError(c, response.CodeBadRequest, "cart session invalid", nil)
		return "", false
	}
	return id, true
}
