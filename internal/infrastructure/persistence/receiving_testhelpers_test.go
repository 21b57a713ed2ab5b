package persistence

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/erp/receiving/internal/domain/catalog"
	"github.com/erp/receiving/internal/domain/receiving"
	"github.com/erp/receiving/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupReceivingTestDB opens a private in-memory sqlite database with the
// receiving schema. One connection keeps every query on the same database.
func setupReceivingTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		NowFunc:                func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, code string, quantity int64) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(code, "Product "+code, "box")
	require.NoError(t, err)
	p.Quantity = quantity
	require.NoError(t, NewGormProductRepository(db).Save(context.Background(), p))
	return p
}

func productQuantity(t *testing.T, db *gorm.DB, id int64) int64 {
	t.Helper()
	p, err := NewGormProductRepository(db).FindByID(context.Background(), id)
	require.NoError(t, err)
	return p.Quantity
}

func newSlip(t *testing.T, supplier, ref string, date time.Time, specs ...receiving.ItemSpec) *receiving.ReceivingSlip {
	t.Helper()
	if len(specs) == 0 {
		specs = []receiving.ItemSpec{{ProductName: "Loose part", Quantity: 1, UnitPrice: decimal.NewFromInt(1)}}
	}
	slip, err := receiving.NewReceivingSlip(receiving.SlipHeader{
		Supplier:    supplier,
		ReferenceNo: ref,
		ReceiptDate: date,
	}, specs)
	require.NoError(t, err)
	return slip
}

func seedSlip(t *testing.T, db *gorm.DB, supplier, ref string, date time.Time, specs ...receiving.ItemSpec) *receiving.ReceivingSlip {
	t.Helper()
	slip := newSlip(t, supplier, ref, date, specs...)
	require.NoError(t, NewGormReceivingSlipRepository(db).Create(context.Background(), slip))
	return slip
}

func spec(productID *int64, name string, qty int64, price string) receiving.ItemSpec {
	return receiving.ItemSpec{
		ProductID:   productID,
		ProductName: name,
		Quantity:    qty,
		UnitPrice:   decimal.RequireFromString(price),
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
