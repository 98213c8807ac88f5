package controllers

import (
	"github.com/mauz21/Heat-box/pkg/resp"
	"github.com/mauz21/Heat-box/services"
	"github.com/mauz21/Heat-box/utils"

	"github.com/gin-gonic/gin"
)

type LoyaltyController struct {
	Service *services.LoyaltyService
}

func NewLoyaltyController(svc *services.LoyaltyService) *LoyaltyController {
	return &LoyaltyController{Service: svc}
}

// GET /loyalty — creates a zero-balance account on first read
func (lc *LoyaltyController) Get(c *gin.Context) {
	acc, err := lc.Service.GetOrCreate(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, acc)
}

// POST /loyalty/points
func (lc *LoyaltyController) AddPoints(c *gin.Context) {
	var req services.AddPointsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	acc, err := lc.Service.AddPoints(utils.CurrentUserID(c), req.Points)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, acc)
}
