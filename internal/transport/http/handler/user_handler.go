package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhub/internal/core/apperr"
	"taskhub/internal/service"
	resp "taskhub/internal/transport/http/response"
)

type UserAPI interface {
	Signup(ctx context.Context, in service.SignupInput) (*service.AuthResult, error)
	Login(ctx context.Context, email, password string) (*service.AuthResult, error)
	Profile(ctx context.Context, userID uint) (*service.PublicUser, error)
	UpdateProfile(ctx context.Context, userID uint, in service.UpdateProfileInput) (*service.PublicUser, error)
}

type UserHandler struct{ svc UserAPI }

func NewUserHandler(svc UserAPI) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) Signup(c *gin.Context) {
	var in service.SignupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.Validation(err.Error()))
		return
	}
	out, err := h.svc.Signup(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp.OK(out))
}

func (h *UserHandler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.Validation(err.Error()))
		return
	}
	out, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(out))
}

func (h *UserHandler) Profile(c *gin.Context) {
	u, err := h.svc.Profile(c.Request.Context(), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"user": u}))
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var in service.UpdateProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.Validation(err.Error()))
		return
	}
	u, err := h.svc.UpdateProfile(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"user": u}))
}
