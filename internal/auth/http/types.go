package http

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/deepak92201/Portfolio/internal/auth/service"
	"github.com/deepak92201/Portfolio/internal/auth/throttle"
)

// LoginService is satisfied by *service.AuthService.
type LoginService interface {
	Login(ctx context.Context, username, password string) (*service.LoginResult, error)
}

type Handler struct {
	authService LoginService
	limiter     throttle.Limiter
	log         logrus.FieldLogger
}

func New(authService LoginService, limiter throttle.Limiter, log logrus.FieldLogger) *Handler {
	if limiter == nil {
		limiter = throttle.Disabled{}
	}
	return &Handler{
		authService: authService,
		limiter:     limiter,
		log:         log,
	}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResp struct {
	Token string `json:"token"`
}
