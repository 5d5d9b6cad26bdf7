package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhub/internal/core/apperr"
	mdw "taskhub/internal/transport/http/middleware"
	resp "taskhub/internal/transport/http/response"
)

// fail 错误只在这一处映射成响应
func fail(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		c.JSON(ae.Status, resp.Error(ae.Status, ae.Msg))
		return
	}
	c.JSON(http.StatusInternalServerError, resp.Error(resp.CodeServerError, "internal error"))
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint(mdw.KeyUserID)
}
