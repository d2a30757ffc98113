package api

import (
	"net/http"

	"github.com/Domenick1991/tripmate/internal/domain"
	"github.com/Domenick1991/tripmate/internal/service/search"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service search.SearchUseCase
}

func NewCatalogHandler(service search.SearchUseCase) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/drivers", h.drivers)
	router.GET("/buddies", h.buddies)
	router.GET("/hotels", h.hotels)
	router.POST("/buddies/matches", h.matches)
}

func (h *CatalogHandler) drivers(c *gin.Context) {
	var params search.DriverParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.service.SearchDrivers(params))
}

func (h *CatalogHandler) buddies(c *gin.Context) {
	var params search.BuddyParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.service.SearchTravelBuddies(params))
}

func (h *CatalogHandler) hotels(c *gin.Context) {
	var params search.HotelParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.service.SearchHotels(params))
}

func (h *CatalogHandler) matches(c *gin.Context) {
	var plan domain.TravelPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.service.MatchBuddies(plan))
}
