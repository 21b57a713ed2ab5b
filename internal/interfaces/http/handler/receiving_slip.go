package handler

import (
	"mime"
	"net/http"

	apprcv "github.com/erp/receiving/internal/application/receiving"
	"github.com/gin-gonic/gin"
)

// ReceivingSlipHandler serves the receiving-slip API
type ReceivingSlipHandler struct {
	BaseHandler
	service *apprcv.ReceivingSlipService
}

// NewReceivingSlipHandler creates a new ReceivingSlipHandler
func NewReceivingSlipHandler(service *apprcv.ReceivingSlipService) *ReceivingSlipHandler {
	return &ReceivingSlipHandler{service: service}
}

// List godoc
// @ID           listReceivingSlips
// @Summary      List receiving slips
// @Description  Retrieve a paginated list of receiving slips, newest receipt date first
// @Tags         receiving-slips
// @Produce      json
// @Param        search query string false "Case-insensitive match on supplier or reference number"
// @Param        date_from query string false "Receipt date lower bound, inclusive (YYYY-MM-DD)"
// @Param        date_to query string false "Receipt date upper bound, inclusive (YYYY-MM-DD)"
// @Param        status query string false "Status filter" Enums(DRAFT, CONFIRMED)
// @Param        page query int false "Page number; values below 1 select page 1" default(1)
// @Param        page_size query int false "Page size; out-of-range values select the default" default(20)
// @Param        order_by query string false "Sort field" Enums(receipt_date, reference_no, supplier, created_at, id)
// @Param        order_dir query string false "Sort direction" Enums(asc, desc)
// @Success      200 {object} dto.Response{data=[]apprcv.SlipListItemResponse}
// @Failure      400 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /receiving/slips [get]
func (h *ReceivingSlipHandler) List(c *gin.Context) {
	var query ListSlipsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.service.List(c.Request.Context(), query.toFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize, page.TotalPages)
}

// Summary godoc
// @ID           getReceivingSlipSummary
// @Summary      Get slip status summary
// @Description  Count receiving slips per status
// @Tags         receiving-slips
// @Produce      json
// @Success      200 {object} dto.Response{data=apprcv.SlipStatusSummary}
// @Failure      500 {object} dto.Response
// @Router       /receiving/slips/stats/summary [get]
func (h *ReceivingSlipHandler) Summary(c *gin.Context) {
	summary, err := h.service.StatusSummary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// Create godoc
// @ID           createReceivingSlip
// @Summary      Create a receiving slip
// @Description  Create a Draft receiving slip with at least one item
// @Tags         receiving-slips
// @Accept       json
// @Produce      json
// @Param        request body CreateSlipRequest true "Slip creation request"
// @Success      201 {object} dto.Response{data=apprcv.CreateSlipResult}
// @Failure      400 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Failure      413 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /receiving/slips [post]
func (h *ReceivingSlipHandler) Create(c *gin.Context) {
	var req CreateSlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	appReq, err := req.toApp()
	if err != nil {
		h.BadRequest(c, "receipt_date must be a date in 2006-01-02 format")
		return
	}

	result, err := h.service.Create(c.Request.Context(), appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// Get godoc
// @ID           getReceivingSlipById
// @Summary      Get receiving slip by ID
// @Description  Retrieve a receiving slip with its items and totals
// @Tags         receiving-slips
// @Produce      json
// @Param        id path int true "Slip ID"
// @Success      200 {object} dto.Response{data=apprcv.SlipResponse}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /receiving/slips/{id} [get]
func (h *ReceivingSlipHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid slip ID")
		return
	}
	slip, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, slip)
}

// Delete godoc
// @ID           deleteReceivingSlip
// @Summary      Delete a receiving slip
// @Description  Delete a Draft receiving slip and its items
// @Tags         receiving-slips
// @Produce      json
// @Param        id path int true "Slip ID"
// @Success      204 "No Content"
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /receiving/slips/{id} [delete]
func (h *ReceivingSlipHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid slip ID")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListItems godoc
// @ID           listReceivingSlipItems
// @Summary      List slip items
// @Description  Retrieve the items of a receiving slip in entry order
// @Tags         receiving-slip-items
// @Produce      json
// @Param        id path int true "Slip ID"
// @Success      200 {object} dto.Response{data=[]apprcv.SlipItemResponse}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /receiving/slips/{id}/items [get]
func (h *ReceivingSlipHandler) ListItems(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid slip ID")
		return
	}
	items, err := h.service.GetItems(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// AddItem godoc
// @ID           addReceivingSlipItem
// @Summary      Add an item to a slip
// @Description  Add a line item to a Draft receiving slip
// @Tags         receiving-slip-items
// @Accept       json
// @Produce      json
// @Param        id path int true "Slip ID"
// @Param        request body SlipItemRequest true "Item request"
// @Success      201 {object} dto.Response{data=apprcv.SlipItemResponse}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /receiving/slips/{id}/items [post]
func (h *ReceivingSlipHandler) AddItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid slip ID")
		return
	}
	var req SlipItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	item, err := h.service.AddItem(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// Confirm godoc
// @ID           confirmReceivingSlip
// @Summary      Confirm a receiving slip
// @Description  Confirm a Draft slip and add its quantities to product stock in one transaction
// @Tags         receiving-slips
// @Produce      json
// @Param        id path int true "Slip ID"
// @Success      200 {object} dto.Response{data=apprcv.ConfirmSlipResult}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /receiving/slips/{id}/confirm [post]
func (h *ReceivingSlipHandler) Confirm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid slip ID")
		return
	}
	result, err := h.service.Confirm(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Export godoc
// @ID           exportReceivingSlip
// @Summary      Export a receiving slip
// @Description  Download the slip as an XLSX workbook
// @Tags         receiving-slips
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      json
// @Param        id path int true "Slip ID"
// @Success      200 {file} file
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /receiving/slips/{id}/export [get]
func (h *ReceivingSlipHandler) Export(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid slip ID")
		return
	}
	file, err := h.service.Export(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Filename}))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

// UpdateItem godoc
// @ID           updateReceivingSlipItem
// @Summary      Update a slip item
// @Description  Overwrite every field of an item on a Draft slip and recompute its total
// @Tags         receiving-slip-items
// @Accept       json
// @Produce      json
// @Param        item_id path int true "Item ID"
// @Param        request body SlipItemRequest true "Item request"
// @Success      200 {object} dto.Response{data=apprcv.SlipItemResponse}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /receiving/slip-items/{item_id} [put]
func (h *ReceivingSlipHandler) UpdateItem(c *gin.Context) {
	itemID, ok := parseID(c, "item_id")
	if !ok {
		h.BadRequest(c, "Invalid item ID")
		return
	}
	var req SlipItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	item, err := h.service.UpdateItem(c.Request.Context(), itemID, req.toInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// DeleteItem godoc
// @ID           deleteReceivingSlipItem
// @Summary      Delete a slip item
// @Description  Remove an item from a Draft slip
// @Tags         receiving-slip-items
// @Produce      json
// @Param        item_id path int true "Item ID"
// @Success      204 "No Content"
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /receiving/slip-items/{item_id} [delete]
func (h *ReceivingSlipHandler) DeleteItem(c *gin.Context) {
	itemID, ok := parseID(c, "item_id")
	if !ok {
		h.BadRequest(c, "Invalid item ID")
		return
	}
	if err := h.service.DeleteItem(c.Request.Context(), itemID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
