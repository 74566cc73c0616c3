package router

import (
	"courtsched/modules/booking/controller"

	"github.com/labstack/echo/v4"
)

type BookingRouter struct {
	Controller *controller.BookingController
}

func NewBookingRouter(ctrl *controller.BookingController) *BookingRouter {
	return &BookingRouter{Controller: ctrl}
}

func (r *BookingRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.POST("/bookings", r.Controller.Create)
	v1.POST("/bookings/:id/cancel", r.Controller.Cancel)
	v1.GET("/courts/:courtId/bookings", r.Controller.ListByCourt)
}
