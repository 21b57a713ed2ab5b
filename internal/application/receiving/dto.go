package receiving

import (
	"time"

	"github.com/erp/receiving/internal/domain/receiving"
	"github.com/shopspring/decimal"
)

// ==================== Requests ====================

// SlipItemInput carries the fields of a line item for create, add and update
type SlipItemInput struct {
	ProductID   *int64          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Unit        string          `json:"unit"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func (in SlipItemInput) toSpec() receiving.ItemSpec {
	return receiving.ItemSpec{
		ProductID:   in.ProductID,
		ProductName: in.ProductName,
		Unit:        in.Unit,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
	}
}

// CreateSlipRequest represents a request to create a Draft slip
type CreateSlipRequest struct {
	Supplier    string          `json:"supplier"`
	ReferenceNo string          `json:"reference_no"`
	ReceiptDate time.Time       `json:"receipt_date"`
	Note        string          `json:"note"`
	Items       []SlipItemInput `json:"items"`
}

// SlipListFilter holds list criteria. Status is a status name or empty.
type SlipListFilter struct {
	Search   string
	DateFrom *time.Time
	DateTo   *time.Time
	Status   string
	Page     int
	PageSize int
	// OrderBy and OrderDir override the default receipt-date-descending
	// order; unknown fields fall back to it. Ties always break on id.
	OrderBy  string
	OrderDir string
}

// ==================== Responses ====================

// CreateSlipResult is returned by Create
type CreateSlipResult struct {
	ID          int64  `json:"id"`
	ReferenceNo string `json:"reference_no"`
}

// SlipListItemResponse is one row of the slip list
type SlipListItemResponse struct {
	ID          int64      `json:"id"`
	Supplier    string     `json:"supplier"`
	ReferenceNo string     `json:"reference_no"`
	ReceiptDate time.Time  `json:"receipt_date"`
	Note        string     `json:"note,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
}

// SlipItemResponse is a line item with its computed total
type SlipItemResponse struct {
	ID          int64           `json:"id"`
	SlipID      int64           `json:"slip_id"`
	ProductID   *int64          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Unit        string          `json:"unit"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// SlipResponse is the detail view of a slip
type SlipResponse struct {
	SlipListItemResponse
	TotalQuantity int64              `json:"total_quantity"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	Items         []SlipItemResponse `json:"items"`
}

// StockIncrementResponse is one (product, added quantity) pair applied by confirm
type StockIncrementResponse struct {
	ProductID     int64 `json:"product_id"`
	AddedQuantity int64 `json:"added_quantity"`
}

// ConfirmSlipResult is returned by Confirm
type ConfirmSlipResult struct {
	ID          int64                    `json:"id"`
	ReferenceNo string                   `json:"reference_no"`
	Status      string                   `json:"status"`
	ConfirmedAt time.Time                `json:"confirmed_at"`
	Applied     []StockIncrementResponse `json:"applied"`
}

// SlipStatusSummary counts slips per status
type SlipStatusSummary struct {
	Draft     int64 `json:"draft"`
	Confirmed int64 `json:"confirmed"`
	Total     int64 `json:"total"`
}

// ExportFile is a rendered document ready for download
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ==================== Mappers ====================

// ToSlipListItemResponse converts a slip header to a list row
func ToSlipListItemResponse(s *receiving.ReceivingSlip) SlipListItemResponse {
	return SlipListItemResponse{
		ID:          s.ID,
		Supplier:    s.Supplier,
		ReferenceNo: s.ReferenceNo,
		ReceiptDate: s.ReceiptDate,
		Note:        s.Note,
		Status:      s.Status.String(),
		CreatedAt:   s.CreatedAt,
		ConfirmedAt: s.ConfirmedAt,
	}
}

// ToSlipListItemResponses converts a page of slips
func ToSlipListItemResponses(slips []receiving.ReceivingSlip) []SlipListItemResponse {
	out := make([]SlipListItemResponse, len(slips))
	for i := range slips {
		out[i] = ToSlipListItemResponse(&slips[i])
	}
	return out
}

// ToSlipItemResponse converts a line item
func ToSlipItemResponse(item *receiving.ReceivingSlipItem) SlipItemResponse {
	return SlipItemResponse{
		ID:          item.ID,
		SlipID:      item.SlipID,
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		Unit:        item.Unit,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Total:       item.Total,
	}
}

// ToSlipItemResponses converts line items, keeping their order
func ToSlipItemResponses(items []receiving.ReceivingSlipItem) []SlipItemResponse {
	out := make([]SlipItemResponse, len(items))
	for i := range items {
		out[i] = ToSlipItemResponse(&items[i])
	}
	return out
}

// ToSlipResponse converts a slip with its items
func ToSlipResponse(s *receiving.ReceivingSlip) SlipResponse {
	return SlipResponse{
		SlipListItemResponse: ToSlipListItemResponse(s),
		TotalQuantity:        s.TotalQuantity(),
		TotalAmount:          s.TotalAmount(),
		Items:                ToSlipItemResponses(s.Items),
	}
}

func toStockIncrementResponses(increments []receiving.StockIncrement) []StockIncrementResponse {
	out := make([]StockIncrementResponse, len(increments))
	for i, inc := range increments {
		out[i] = StockIncrementResponse{ProductID: inc.ProductID, AddedQuantity: inc.Quantity}
	}
	return out
}
