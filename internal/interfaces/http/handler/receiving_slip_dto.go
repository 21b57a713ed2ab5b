package handler

import (
	"time"

	apprcv "github.com/erp/receiving/internal/application/receiving"
	"github.com/shopspring/decimal"
)

// dateLayout is the wire format of receipt dates and date filters
const dateLayout = "2006-01-02"

// SlipItemRequest is a line item in create, add and update bodies
// @Description Receiving slip line item
type SlipItemRequest struct {
	ProductID   *int64          `json:"product_id" binding:"omitempty,gt=0" example:"42"`
	ProductName string          `json:"product_name" binding:"required,notblank,max=200" example:"M8 hex bolt"`
	Unit        string          `json:"unit" binding:"max=50" example:"box"` // defaults to "unit" when blank
	Quantity    int64           `json:"quantity" binding:"gt=0,max=1000000000" example:"10"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"string" example:"12.5000"`
}

func (r SlipItemRequest) toInput() apprcv.SlipItemInput {
	return apprcv.SlipItemInput{
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		Unit:        r.Unit,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
	}
}

// CreateSlipRequest is the body of POST /slips
// @Description Request body for creating a receiving slip
type CreateSlipRequest struct {
	Supplier    string            `json:"supplier" binding:"required,notblank,max=200" example:"Acme Fasteners"`
	ReferenceNo string            `json:"reference_no" binding:"required,notblank,max=50" example:"RS-2026-0001"`
	ReceiptDate string            `json:"receipt_date" binding:"required,datetime=2006-01-02" example:"2026-03-14"`
	Note        string            `json:"note" binding:"max=500" example:"Partial delivery"`
	Items       []SlipItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r CreateSlipRequest) toApp() (apprcv.CreateSlipRequest, error) {
	date, err := time.Parse(dateLayout, r.ReceiptDate)
	if err != nil {
		return apprcv.CreateSlipRequest{}, err
	}
	items := make([]apprcv.SlipItemInput, len(r.Items))
	for i, item := range r.Items {
		items[i] = item.toInput()
	}
	return apprcv.CreateSlipRequest{
		Supplier:    r.Supplier,
		ReferenceNo: r.ReferenceNo,
		ReceiptDate: date,
		Note:        r.Note,
		Items:       items,
	}, nil
}

// ListSlipsQuery holds the query parameters of GET /slips. Page and PageSize
// are passed through unchecked; the service resets out-of-range values.
type ListSlipsQuery struct {
	Search   string `form:"search" binding:"max=100"`
	DateFrom string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc ASC DESC"`
}

func (q ListSlipsQuery) toFilter() apprcv.SlipListFilter {
	filter := apprcv.SlipListFilter{
		Search:   q.Search,
		Status:   q.Status,
		Page:     q.Page,
		PageSize: q.PageSize,
		OrderBy:  q.OrderBy,
		OrderDir: q.OrderDir,
	}
	// formats were checked by binding
	if t, err := time.Parse(dateLayout, q.DateFrom); err == nil {
		filter.DateFrom = &t
	}
	if t, err := time.Parse(dateLayout, q.DateTo); err == nil {
		filter.DateTo = &t
	}
	return filter
}
