package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"item-api/pkg/response"
)

// List godoc
// @Summary     List items
// @Description Returns every item, newest first.
// @Tags        Items
// @Produce     json
// @Success     200 {array}  itemResp
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.uc.List(ctx)
	if err != nil {
		if h.serverFault(err) {
			h.l.Errorf(ctx, "uc.List: %v", err)
		}
		response.Fail(c, err, msgFetchFailed)
		return
	}

	response.JSON(c, http.StatusOK, h.newListResp(items))
}

// Create godoc
// @Summary     Create an item
// @Description Validates and stores a new item. Responds with an empty body.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     201
// @Failure     400 {object} response.ErrorResp "Validation failed"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Fail(c, err, msgCreateFailed)
		return
	}

	if err := h.uc.Create(ctx, req.toInput()); err != nil {
		if h.serverFault(err) {
			h.l.Errorf(ctx, "uc.Create: %v", err)
		}
		response.Fail(c, err, msgCreateFailed)
		return
	}

	response.Created(c)
}
