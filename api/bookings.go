package api

import (
	"net/http"

	"github.com/Domenick1991/tripmate/internal/domain"
	"github.com/Domenick1991/tripmate/internal/service/booking"
	"github.com/Domenick1991/tripmate/internal/service/state"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
	store   state.StateStore
}

type statusResponse struct {
	ID      string `json:"id"`
	Changed bool   `json:"changed"`
}

func NewBookingHandler(service booking.BookingUseCase, store state.StateStore) *BookingHandler {
	return &BookingHandler{service: service, store: store}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/bookings", h.createHotel)
	router.GET("/bookings", h.listHotel)
	router.POST("/bookings/:id/cancel", h.cancelHotel)
	router.POST("/bookings/:id/refund", h.refundHotel)
	router.GET("/provider/bookings", h.providerBookings)

	router.POST("/carpool-bookings", h.createCarpool)
	router.GET("/carpool-bookings", h.listCarpool)
	router.POST("/carpool-bookings/:id/cancel", h.cancelCarpool)
	router.POST("/carpool-bookings/:id/refund", h.refundCarpool)
	router.GET("/drivers/:id/bookings", h.driverBookings)
}

func (h *BookingHandler) createHotel(c *gin.Context) {
	var req booking.HotelBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	created, err := h.service.BookHotel(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *BookingHandler) listHotel(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetBookings(c.Request.Context(), c.Query("userId")))
}

func (h *BookingHandler) cancelHotel(c *gin.Context) {
	if _, ok := h.store.CurrentUser(c.Request.Context()); !ok {
		writeError(c, domain.ErrUnauthenticated)
		return
	}
	id := c.Param("id")
	c.JSON(http.StatusOK, statusResponse{ID: id, Changed: h.store.CancelBooking(c.Request.Context(), id)})
}

func (h *BookingHandler) refundHotel(c *gin.Context) {
	id := c.Param("id")
	ok, err := h.store.RefundBooking(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{ID: id, Changed: ok})
}

func (h *BookingHandler) providerBookings(c *gin.Context) {
	bookings, err := h.store.ProviderBookings(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) createCarpool(c *gin.Context) {
	var req booking.CarpoolBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	created, err := h.service.BookCarpool(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *BookingHandler) listCarpool(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetCarpoolBookings(c.Request.Context(), c.Query("userId")))
}

func (h *BookingHandler) cancelCarpool(c *gin.Context) {
	if _, ok := h.store.CurrentUser(c.Request.Context()); !ok {
		writeError(c, domain.ErrUnauthenticated)
		return
	}
	id := c.Param("id")
	c.JSON(http.StatusOK, statusResponse{ID: id, Changed: h.store.CancelCarpoolBooking(c.Request.Context(), id)})
}

func (h *BookingHandler) refundCarpool(c *gin.Context) {
	id := c.Param("id")
	ok, err := h.store.RefundCarpoolBooking(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{ID: id, Changed: ok})
}

func (h *BookingHandler) driverBookings(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.DriverCarpoolBookings(c.Request.Context(), c.Param("id")))
}
