package controllers

import (
	"errors"
	"strconv"

	"github.com/mauz21/Heat-box/pkg/resp"
	"github.com/mauz21/Heat-box/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Service *services.CatalogService
}

func NewProductController(svc *services.CatalogService) *ProductController {
	return &ProductController{Service: svc}
}

// GET /products?category=&spicyLevel=
func (pc *ProductController) List(c *gin.Context) {
	var category *string
	if v := c.Query("category"); v != "" {
		category = &v
	}

	var spicy *int
	if v := c.Query("spicyLevel"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			resp.BadRequest(c, "spicyLevel must be a number")
			return
		}
		spicy = &n
	}

	products, err := pc.Service.List(category, spicy)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}

// GET /products/:id
func (pc *ProductController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}

	p, err := pc.Service.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}
