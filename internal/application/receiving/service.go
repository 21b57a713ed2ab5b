package receiving

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/erp/receiving/internal/domain/catalog"
	"github.com/erp/receiving/internal/domain/receiving"
	"github.com/erp/receiving/internal/domain/shared"
	"github.com/erp/receiving/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Default paging policy for List
const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// ReceivingSlipService runs the receiving-slip lifecycle: Draft slips are
// created and edited item by item, then confirmed exactly once, which adds
// their quantities to product stock.
type ReceivingSlipService struct {
	slipRepo    receiving.ReceivingSlipRepository
	itemRepo    receiving.ReceivingSlipItemRepository
	productRepo catalog.ProductRepository
	txScope     TransactionScope

	locker         ConfirmLocker
	exporter       SlipExporter
	eventPublisher shared.EventPublisher
	metrics        *telemetry.ReceivingMetrics
	logger         *zap.Logger
	now            func() time.Time

	defaultPageSize int
	maxPageSize     int
}

// NewReceivingSlipService creates a new ReceivingSlipService
func NewReceivingSlipService(
	slipRepo receiving.ReceivingSlipRepository,
	itemRepo receiving.ReceivingSlipItemRepository,
	productRepo catalog.ProductRepository,
	txScope TransactionScope,
) *ReceivingSlipService {
	return &ReceivingSlipService{
		slipRepo:        slipRepo,
		itemRepo:        itemRepo,
		productRepo:     productRepo,
		txScope:         txScope,
		logger:          zap.NewNop(),
		now:             func() time.Time { return time.Now().UTC() },
		defaultPageSize: DefaultPageSize,
		maxPageSize:     MaxPageSize,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ReceivingSlipService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetMetrics sets the receiving metrics collector
func (s *ReceivingSlipService) SetMetrics(m *telemetry.ReceivingMetrics) {
	s.metrics = m
}

// SetConfirmLocker enables cross-process locking of confirm calls
func (s *ReceivingSlipService) SetConfirmLocker(locker ConfirmLocker) {
	s.locker = locker
}

// SetExporter sets the document renderer used by Export
func (s *ReceivingSlipService) SetExporter(exporter SlipExporter) {
	s.exporter = exporter
}

// SetLogger sets the service logger
func (s *ReceivingSlipService) SetLogger(logger *zap.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// SetPageSizeLimits overrides the default and maximum list page size.
// Non-positive values keep the current setting.
func (s *ReceivingSlipService) SetPageSizeLimits(defaultSize, maxSize int) {
	if defaultSize > 0 {
		s.defaultPageSize = defaultSize
	}
	if maxSize > 0 {
		s.maxPageSize = maxSize
	}
}

// List returns a page of slips ordered by receipt date then id, newest first
func (s *ReceivingSlipService) List(ctx context.Context, filter SlipListFilter) (*shared.Paginated[SlipListItemResponse], error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > s.maxPageSize {
		filter.PageSize = s.defaultPageSize
	}

	domainFilter := receiving.SlipFilter{
		Filter: shared.Filter{
			Page:     filter.Page,
			PageSize: filter.PageSize,
			Search:   filter.Search,
			OrderBy:  filter.OrderBy,
			OrderDir: filter.OrderDir,
		},
	}
	if filter.Status != "" {
		status, err := receiving.ParseSlipStatus(filter.Status)
		if err != nil {
			return nil, err
		}
		domainFilter.Status = &status
	}
	if filter.DateFrom != nil {
		from := receiving.NormalizeDate(*filter.DateFrom)
		domainFilter.DateFrom = &from
	}
	if filter.DateTo != nil {
		to := receiving.NormalizeDate(*filter.DateTo)
		domainFilter.DateTo = &to
	}

	slips, total, err := s.slipRepo.FindPage(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToSlipListItemResponses(slips), total, filter.Page, filter.PageSize)
	return &page, nil
}

// Create persists a new Draft slip with its items
func (s *ReceivingSlipService) Create(ctx context.Context, req CreateSlipRequest) (*CreateSlipResult, error) {
	header := receiving.SlipHeader{
		Supplier:    req.Supplier,
		ReferenceNo: req.ReferenceNo,
		ReceiptDate: req.ReceiptDate,
		Note:        req.Note,
	}
	if err := receiving.ValidateRequired(header, len(req.Items)); err != nil {
		return nil, err
	}

	exists, err := s.slipRepo.ExistsByReferenceNo(ctx, normalizeReference(req.ReferenceNo))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, referenceTaken(req.ReferenceNo)
	}

	specs := make([]receiving.ItemSpec, len(req.Items))
	for i, in := range req.Items {
		specs[i] = in.toSpec()
	}
	slip, err := receiving.NewReceivingSlip(header, specs)
	if err != nil {
		return nil, err
	}

	var productIDs []int64
	for i := range slip.Items {
		if slip.Items[i].ProductID != nil {
			productIDs = append(productIDs, *slip.Items[i].ProductID)
		}
	}
	if err := ensureProductsExist(ctx, s.productRepo, productIDs); err != nil {
		return nil, err
	}

	if err := s.slipRepo.Create(ctx, slip); err != nil {
		if errors.Is(err, shared.ErrConflict) {
			return nil, referenceTaken(req.ReferenceNo)
		}
		return nil, err
	}

	slip.AddDomainEvent(receiving.NewSlipCreatedEvent(slip))
	s.publishEvents(ctx, slip)

	if s.metrics != nil {
		s.metrics.RecordSlipCreated(ctx, len(slip.Items))
	}
	s.logger.Info("receiving slip created",
		zap.Int64("slip_id", slip.ID),
		zap.String("reference_no", slip.ReferenceNo),
		zap.Int("items", len(slip.Items)),
	)

	return &CreateSlipResult{ID: slip.ID, ReferenceNo: slip.ReferenceNo}, nil
}

// GetByID returns a slip with its items
func (s *ReceivingSlipService) GetByID(ctx context.Context, slipID int64) (*SlipResponse, error) {
	slip, err := s.slipRepo.FindByIDWithItems(ctx, slipID)
	if err != nil {
		return nil, slipLookupError(err, slipID)
	}
	response := ToSlipResponse(slip)
	return &response, nil
}

// GetItems returns the slip's items ordered by item id
func (s *ReceivingSlipService) GetItems(ctx context.Context, slipID int64) ([]SlipItemResponse, error) {
	if _, err := s.slipRepo.FindByID(ctx, slipID); err != nil {
		return nil, slipLookupError(err, slipID)
	}
	items, err := s.itemRepo.FindBySlipID(ctx, slipID)
	if err != nil {
		return nil, err
	}
	return ToSlipItemResponses(items), nil
}

// AddItem appends an item to a Draft slip
func (s *ReceivingSlipService) AddItem(ctx context.Context, slipID int64, in SlipItemInput) (*SlipItemResponse, error) {
	var created *receiving.ReceivingSlipItem
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		slip, err := repos.SlipRepo().FindByIDForUpdate(ctx, slipID)
		if err != nil {
			return slipLookupError(err, slipID)
		}
		item, err := slip.AddItem(in.toSpec())
		if err != nil {
			return err
		}
		if item.ProductID != nil {
			if err := ensureProductsExist(ctx, repos.ProductRepo(), []int64{*item.ProductID}); err != nil {
				return err
			}
		}
		if err := repos.ItemRepo().Create(ctx, item); err != nil {
			return err
		}
		created = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToSlipItemResponse(created)
	return &response, nil
}

// UpdateItem overwrites an item of a Draft slip and recomputes its total
func (s *ReceivingSlipService) UpdateItem(ctx context.Context, itemID int64, in SlipItemInput) (*SlipItemResponse, error) {
	var updated *receiving.ReceivingSlipItem
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		item, slip, err := s.lockItemSlip(ctx, repos, itemID)
		if err != nil {
			return err
		}
		if err := slip.EnsureModifiable(); err != nil {
			return err
		}
		if err := item.Apply(in.toSpec()); err != nil {
			return err
		}
		if item.ProductID != nil {
			if err := ensureProductsExist(ctx, repos.ProductRepo(), []int64{*item.ProductID}); err != nil {
				return err
			}
		}
		if err := repos.ItemRepo().Update(ctx, item); err != nil {
			return itemLookupError(err, itemID)
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToSlipItemResponse(updated)
	return &response, nil
}

// DeleteItem removes an item from a Draft slip
func (s *ReceivingSlipService) DeleteItem(ctx context.Context, itemID int64) error {
	return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		_, slip, err := s.lockItemSlip(ctx, repos, itemID)
		if err != nil {
			return err
		}
		if err := slip.EnsureModifiable(); err != nil {
			return err
		}
		if err := repos.ItemRepo().Delete(ctx, itemID); err != nil {
			return itemLookupError(err, itemID)
		}
		return nil
	})
}

// Delete removes a Draft slip together with its items
func (s *ReceivingSlipService) Delete(ctx context.Context, slipID int64) error {
	var deleted *receiving.ReceivingSlip
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		slip, err := repos.SlipRepo().FindByIDForUpdate(ctx, slipID)
		if err != nil {
			return slipLookupError(err, slipID)
		}
		if err := slip.EnsureDeletable(); err != nil {
			return err
		}
		if err := repos.SlipRepo().Delete(ctx, slipID); err != nil {
			return slipLookupError(err, slipID)
		}
		deleted = slip
		return nil
	})
	if err != nil {
		return err
	}

	deleted.AddDomainEvent(receiving.NewSlipDeletedEvent(deleted))
	s.publishEvents(ctx, deleted)
	if s.metrics != nil {
		s.metrics.RecordSlipDeleted(ctx)
	}
	s.logger.Info("receiving slip deleted",
		zap.Int64("slip_id", slipID),
		zap.String("reference_no", deleted.ReferenceNo),
	)
	return nil
}

// Confirm applies a Draft slip's quantities to product stock and marks it
// Confirmed. Slip status and every stock increment commit atomically.
func (s *ReceivingSlipService) Confirm(ctx context.Context, slipID int64) (*ConfirmSlipResult, error) {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "receiving_slip.confirm", attribute.Int64("slip.id", slipID))
	defer span.End()

	if s.locker != nil {
		release, err := s.locker.Acquire(ctx, slipID)
		if err != nil {
			telemetry.RecordError(span, err)
			s.recordConfirmRejected(ctx, err)
			return nil, err
		}
		defer func() {
			if rerr := release(context.WithoutCancel(ctx)); rerr != nil {
				s.logger.Warn("failed to release confirm lock",
					zap.Int64("slip_id", slipID), zap.Error(rerr))
			}
		}()
	}

	var (
		slip       *receiving.ReceivingSlip
		increments []receiving.StockIncrement
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		slip, err = repos.SlipRepo().FindByIDForUpdate(ctx, slipID)
		if err != nil {
			return slipLookupError(err, slipID)
		}

		increments, err = slip.PlanReconciliation()
		if err != nil {
			return err
		}
		products, err := loadProducts(ctx, repos.ProductRepo(), receiving.ProductIDs(increments))
		if err != nil {
			return err
		}
		stock := make(map[int64]int64, len(products))
		for id, p := range products {
			stock[id] = p.Quantity
		}
		if err := receiving.EnsureStockHeadroom(increments, stock); err != nil {
			return err
		}

		confirmedAt := s.now()
		ok, err := repos.SlipRepo().MarkConfirmed(ctx, slipID, confirmedAt)
		if err != nil {
			return err
		}
		if !ok {
			return shared.NewConflictError("slip %s was confirmed by another request", slip.ReferenceNo)
		}

		for _, inc := range increments {
			if err := repos.ProductRepo().IncrementQuantity(ctx, inc.ProductID, inc.Quantity); err != nil {
				return fmt.Errorf("increment stock of product %d: %w", inc.ProductID, err)
			}
		}
		return slip.Confirm(confirmedAt, increments)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		s.recordConfirmRejected(ctx, err)
		return nil, err
	}

	s.publishEvents(ctx, slip)

	var units int64
	for _, inc := range increments {
		units += inc.Quantity
	}
	if s.metrics != nil {
		s.metrics.RecordSlipConfirmed(ctx, len(increments), units, time.Since(start))
	}
	s.logger.Info("receiving slip confirmed",
		zap.Int64("slip_id", slip.ID),
		zap.String("reference_no", slip.ReferenceNo),
		zap.Int("products", len(increments)),
		zap.Int64("units", units),
	)

	return &ConfirmSlipResult{
		ID:          slip.ID,
		ReferenceNo: slip.ReferenceNo,
		Status:      slip.Status.String(),
		ConfirmedAt: *slip.ConfirmedAt,
		Applied:     toStockIncrementResponses(increments),
	}, nil
}

// StatusSummary counts slips per status
func (s *ReceivingSlipService) StatusSummary(ctx context.Context) (*SlipStatusSummary, error) {
	counts, err := s.slipRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	summary := &SlipStatusSummary{
		Draft:     counts[receiving.SlipStatusDraft],
		Confirmed: counts[receiving.SlipStatusConfirmed],
	}
	summary.Total = summary.Draft + summary.Confirmed
	return summary, nil
}

// Export renders the slip as a document
func (s *ReceivingSlipService) Export(ctx context.Context, slipID int64) (*ExportFile, error) {
	if s.exporter == nil {
		return nil, errors.New("slip export is not configured")
	}
	slip, err := s.slipRepo.FindByIDWithItems(ctx, slipID)
	if err != nil {
		return nil, slipLookupError(err, slipID)
	}
	return s.exporter.Export(ctx, slip)
}

// lockItemSlip loads an item and row-locks its parent slip
func (s *ReceivingSlipService) lockItemSlip(ctx context.Context, repos TransactionalRepositories, itemID int64) (*receiving.ReceivingSlipItem, *receiving.ReceivingSlip, error) {
	item, err := repos.ItemRepo().FindByID(ctx, itemID)
	if err != nil {
		return nil, nil, itemLookupError(err, itemID)
	}
	slip, err := repos.SlipRepo().FindByIDForUpdate(ctx, item.SlipID)
	if err != nil {
		return nil, nil, slipLookupError(err, item.SlipID)
	}
	return item, slip, nil
}

func (s *ReceivingSlipService) publishEvents(ctx context.Context, slip *receiving.ReceivingSlip) {
	events := slip.GetDomainEvents()
	slip.ClearDomainEvents()
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Error("failed to publish receiving slip events",
			zap.Int64("slip_id", slip.ID),
			zap.Error(err),
		)
	}
}

func (s *ReceivingSlipService) recordConfirmRejected(ctx context.Context, err error) {
	if s.metrics == nil {
		return
	}
	var de *shared.DomainError
	reason := "error"
	if errors.As(err, &de) {
		reason = de.Code
	}
	s.metrics.RecordConfirmRejected(ctx, reason)
}

// ensureProductsExist fails with a validation error listing every id in ids
// that has no product.
func ensureProductsExist(ctx context.Context, repo catalog.ProductRepository, ids []int64) error {
	_, err := loadProducts(ctx, repo, ids)
	return err
}

// loadProducts returns the products among ids keyed by id, or a validation
// error listing every id that has no product.
func loadProducts(ctx context.Context, repo catalog.ProductRepository, ids []int64) (map[int64]catalog.Product, error) {
	found := make(map[int64]catalog.Product, len(ids))
	if len(ids) == 0 {
		return found, nil
	}
	products, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range products {
		found[products[i].ID] = products[i]
	}
	missing := receiving.MissingProductIDs(uniqueIDs(ids), found)
	if len(missing) == 0 {
		return found, nil
	}
	return nil, shared.NewValidationError("products not found: %v", missing).
		WithDetail("missing_product_ids", missing)
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func slipLookupError(err error, slipID int64) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NewNotFoundError("receiving slip", slipID)
	}
	return err
}

func itemLookupError(err error, itemID int64) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NewNotFoundError("receiving slip item", itemID)
	}
	return err
}

func normalizeReference(ref string) string {
	return strings.TrimSpace(ref)
}

func referenceTaken(ref string) error {
	return shared.NewConflictError("reference number %s is already used", normalizeReference(ref))
}
