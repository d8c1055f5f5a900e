package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// GET /orders/available-slots — open minus booked slots for today.
func (h *OrderController) AvailableSlots(c *gin.Context) {
	slots, err := h.Svc.AvailableSlots(h.Svc.Now())
	if err != nil {
		resp.Error(c, err)
		return
	}
	if len(slots) == 0 {
		resp.NotFound(c, "no available slots for today")
		return
	}
	resp.OK(c, gin.H{"availableSlots": slots})
}

// deliverySlot 0 (midnight) is legal, so no required binding; the service
// rejects slots outside the opening hours.
type placeOrderReq struct {
	DeliverySlot int `json:"deliverySlot"`
}

// POST /orders/place-from-cart
func (h *OrderController) PlaceFromCart(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req placeOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.PlaceFromCart(uid, req.DeliverySlot)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (h *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	orders, err := h.Svc.ListForUser(uid, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /orders/:id — owner or admin.
func (h *OrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	if utils.CurrentRole(c) == "admin" {
		order, err := h.Svc.Get(uint(id))
		if err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, order)
		return
	}
	order, err := h.Svc.GetForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /orders/:id/cancel — owner or admin.
func (h *OrderController) Cancel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	if utils.CurrentRole(c) != "admin" {
		if _, err := h.Svc.GetForUser(utils.CurrentUserID(c), uint(id)); err != nil {
			resp.Error(c, err)
			return
		}
	}
	order, err := h.Svc.Cancel(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /admin/orders?all=true — defaults to in-progress only.
func (h *OrderController) ListAll(c *gin.Context) {
	all := c.Query("all") == "true"
	orders, err := h.Svc.ListAll(all)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// PUT /admin/orders/:id/delivered
func (h *OrderController) MarkDelivered(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.Svc.MarkDelivered(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

type setStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /admin/orders/:id/status
func (h *OrderController) SetStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.SetStatus(uint(id), req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}
