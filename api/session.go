package api

import (
	"net/http"

	"github.com/Domenick1991/tripmate/internal/domain"
	"github.com/Domenick1991/tripmate/internal/service/state"
	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	store state.StateStore
}

type loginRequest struct {
	ID          string      `json:"id"`
	Name        string      `json:"name" binding:"required"`
	Email       string      `json:"email" binding:"required,email"`
	Phone       string      `json:"phone"`
	Role        domain.Role `json:"role" binding:"omitempty,oneof=traveler provider"`
	Avatar      string      `json:"avatar"`
	OwnedHotels []string    `json:"ownedHotels"`
}

func NewSessionHandler(store state.StateStore) *SessionHandler {
	return &SessionHandler{store: store}
}

func (h *SessionHandler) Register(router *gin.RouterGroup) {
	router.POST("/session", h.login)
	router.GET("/session", h.current)
	router.DELETE("/session", h.logout)
}

func (h *SessionHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.store.Login(c.Request.Context(), domain.User{
		ID:          req.ID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Role:        req.Role,
		Avatar:      req.Avatar,
		OwnedHotels: req.OwnedHotels,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *SessionHandler) current(c *gin.Context) {
	user, ok := h.store.CurrentUser(c.Request.Context())
	if !ok {
		writeError(c, domain.ErrUnauthenticated)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *SessionHandler) logout(c *gin.Context) {
	h.store.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}
