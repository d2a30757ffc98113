package api

import (
	"net/http"

	"github.com/Domenick1991/tripmate/internal/service/state"
	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	store state.StateStore
}

type createMatchRequest struct {
	BuddyID     string `json:"buddyId" binding:"required"`
	Destination string `json:"destination"`
}

func NewMatchHandler(store state.StateStore) *MatchHandler {
	return &MatchHandler{store: store}
}

func (h *MatchHandler) Register(router *gin.RouterGroup) {
	router.POST("/matches", h.create)
	router.GET("/matches", h.list)
	router.GET("/matches/:buddyId/status", h.status)
	router.DELETE("/matches/:id", h.deactivate)
}

func (h *MatchHandler) create(c *gin.Context) {
	var req createMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := h.store.AddMatch(c.Request.Context(), req.BuddyID, req.Destination)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *MatchHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetMatches(c.Request.Context()))
}

func (h *MatchHandler) status(c *gin.Context) {
	buddyID := c.Param("buddyId")
	c.JSON(http.StatusOK, gin.H{"buddyId": buddyID, "matched": h.store.IsMatched(c.Request.Context(), buddyID)})
}

func (h *MatchHandler) deactivate(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, statusResponse{ID: id, Changed: h.store.DeactivateMatch(c.Request.Context(), id)})
}

type ChatHandler struct {
	store state.StateStore
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
	Message    string `json:"message" binding:"required"`
}

func NewChatHandler(store state.StateStore) *ChatHandler {
	return &ChatHandler{store: store}
}

func (h *ChatHandler) Register(router *gin.RouterGroup) {
	router.POST("/messages", h.send)
	router.GET("/messages/:userId", h.thread)
	router.POST("/messages/:userId/read", h.markRead)
	router.GET("/messages/:userId/unread", h.unread)
	router.GET("/conversations", h.conversations)
}

func (h *ChatHandler) send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := h.store.AddMessage(c.Request.Context(), req.ReceiverID, req.Message)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *ChatHandler) thread(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetChatMessages(c.Request.Context(), c.Param("userId")))
}

func (h *ChatHandler) markRead(c *gin.Context) {
	h.store.MarkMessagesAsRead(c.Request.Context(), c.Param("userId"))
	c.Status(http.StatusNoContent)
}

func (h *ChatHandler) unread(c *gin.Context) {
	userID := c.Param("userId")
	c.JSON(http.StatusOK, gin.H{"userId": userID, "unread": h.store.GetUnreadCount(c.Request.Context(), userID)})
}

func (h *ChatHandler) conversations(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Conversations(c.Request.Context()))
}
