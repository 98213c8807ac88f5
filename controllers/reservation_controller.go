package controllers

import (
	"github.com/mauz21/Heat-box/pkg/resp"
	"github.com/mauz21/Heat-box/services"
	"github.com/mauz21/Heat-box/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Service: svc}
}

// POST /reservations
func (rc *ReservationController) Create(c *gin.Context) {
	var req services.CreateReservationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := rc.Service.Create(utils.CurrentUserIDPtr(c), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, res)
}
