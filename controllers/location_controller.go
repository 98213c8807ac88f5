package controllers

import (
	"github.com/mauz21/Heat-box/pkg/resp"
	"github.com/mauz21/Heat-box/repository"

	"github.com/gin-gonic/gin"
)

type LocationController struct {
	Repo *repository.LocationRepository
}

func NewLocationController(repo *repository.LocationRepository) *LocationController {
	return &LocationController{Repo: repo}
}

// GET /locations
func (lc *LocationController) List(c *gin.Context) {
	locations, err := lc.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, locations)
}
