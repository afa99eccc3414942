package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"configecho/internal/app/dto"
)

// ConfigGet echoes the database URL and port; absent values render as null.
func (h *Handler) ConfigGet(c *gin.Context) {
	s := h.SettingsSvc.Current(c.Request.Context())

	h.Log.Debug("config served",
		zap.Bool("db_set", s.DatabaseURL.IsSet()),
		zap.Bool("port_set", s.Port.IsSet()),
	)

	c.JSON(http.StatusOK, dto.ConfigResponse{
		DB:   s.DatabaseURL.Ptr(),
		Port: s.Port.Ptr(),
	})
}
