package controllers

import (
	"errors"
	"strconv"

	"github.com/mauz21/Heat-box/pkg/resp"
	"github.com/mauz21/Heat-box/services"
	"github.com/mauz21/Heat-box/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// POST /orders — guest checkout allowed, identity attached when present.
// A missing product comes back as 400 with the offending id in the
// message, never as a partially persisted order.
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Service.Create(utils.CurrentUserIDPtr(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	detail, err := oc.Service.Detail(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, detail)
}
