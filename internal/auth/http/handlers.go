package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	apimw "github.com/deepak92201/Portfolio/internal/api/http/middleware"
	"github.com/deepak92201/Portfolio/internal/auth/domain"
	"github.com/deepak92201/Portfolio/internal/auth/throttle"
)

// Login exchanges a username and password for a signed admin token.
// Every attempt takes one slot from the client's allowance before the
// credential check; a successful login gives the allowance back.
func (h *Handler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	clientKey := c.ClientIP()
	log := h.log.WithFields(logrus.Fields{
		"request_id": apimw.GetRequestID(ctx),
		"client":     clientKey,
	})

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	allowed, err := h.limiter.Reserve(ctx, clientKey)
	if err != nil {
		log.WithError(err).Warn("login throttle unavailable, allowing attempt")
		allowed = true
	}
	if !allowed {
		log.Info("login throttled")
		c.JSON(http.StatusTooManyRequests, gin.H{"error": throttle.ErrTooManyAttempts.Error()})
		return
	}

	res, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			log.Info("login rejected")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		log.WithError(err).Error("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if err := h.limiter.Reset(ctx, clientKey); err != nil {
		log.WithError(err).Warn("failed to reset login attempts")
	}
	c.JSON(http.StatusOK, loginResp{Token: res.Token})
}
