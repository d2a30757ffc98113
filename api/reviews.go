package api

import (
	"net/http"

	"github.com/Domenick1991/tripmate/internal/domain"
	"github.com/Domenick1991/tripmate/internal/service/review"
	"github.com/Domenick1991/tripmate/internal/service/state"
	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	service review.ReviewUseCase
	store   state.StateStore
}

type voteRequest struct {
	Helpful *bool `json:"helpful" binding:"required"`
}

type respondRequest struct {
	Text string `json:"text"`
}

func NewReviewHandler(service review.ReviewUseCase, store state.StateStore) *ReviewHandler {
	return &ReviewHandler{service: service, store: store}
}

func (h *ReviewHandler) Register(router *gin.RouterGroup) {
	router.POST("/reviews", h.submit)
	router.GET("/reviews/:type/:targetId", h.list)
	router.GET("/reviews/:type/:targetId/summary", h.summary)
	router.POST("/reviews/:id/vote", h.vote)
	router.POST("/reviews/:id/response", h.respond)
}

func (h *ReviewHandler) submit(c *gin.Context) {
	var sub review.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		badRequest(c, err)
		return
	}
	user, ok := h.store.CurrentUser(c.Request.Context())
	if !ok {
		writeError(c, domain.ErrUnauthenticated)
		return
	}
	sub.AuthorID, sub.AuthorName = user.ID, user.Name

	created, err := h.service.Submit(c.Request.Context(), sub)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ReviewHandler) list(c *gin.Context) {
	t, ok := reviewType(c)
	if !ok {
		return
	}
	order := review.SortOrder(c.DefaultQuery("sort", string(review.SortNewest)))
	c.JSON(http.StatusOK, h.service.ReviewsForTarget(c.Request.Context(), t, c.Param("targetId"), order))
}

func (h *ReviewHandler) summary(c *gin.Context) {
	t, ok := reviewType(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.Summary(c.Request.Context(), t, c.Param("targetId")))
}

func (h *ReviewHandler) vote(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, ok := h.store.CurrentUser(c.Request.Context())
	if !ok {
		writeError(c, domain.ErrUnauthenticated)
		return
	}
	updated, ok := h.service.VoteHelpful(c.Request.Context(), c.Param("id"), user.ID, *req.Helpful)
	if !ok {
		writeError(c, domain.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ReviewHandler) respond(c *gin.Context) {
	var req respondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, ok := h.store.CurrentUser(c.Request.Context())
	if !ok {
		writeError(c, domain.ErrUnauthenticated)
		return
	}
	updated, err := h.service.Respond(c.Request.Context(), c.Param("id"), user, req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func reviewType(c *gin.Context) (domain.ReviewType, bool) {
	t := domain.ReviewType(c.Param("type"))
	if !t.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown review type " + string(t)})
		return "", false
	}
	return t, true
}
