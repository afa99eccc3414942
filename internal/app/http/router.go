package httpapi

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"configecho/internal/app/http/handler"
	"configecho/internal/app/http/middleware"
)

func NewRouter(h *handler.Handler, log *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(
		gin.Recovery(),
		middleware.ZapLogger(log),
		middleware.ZapRecovery(log),
	)

	r.GET("/", h.ConfigGet)

	return r
}
