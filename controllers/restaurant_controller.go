package controllers

import (
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /restaurant
func (h *RestaurantController) Get(c *gin.Context) {
	rest, err := h.Svc.Get()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}

// PUT /admin/restaurant — partial merge of the singleton profile.
func (h *RestaurantController) Update(c *gin.Context) {
	var req services.RestaurantUpdateIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := h.Svc.Update(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}
