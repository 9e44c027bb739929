package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/domain/entity"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
	"github.com/khata-ledger/backend/internal/integration/persistence/model"
)

// testDB opens a private in-memory sqlite database and migrates the schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	dbSQL.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbSQL.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(model.AllModels()...))
	return db
}

func newCustomer(name string) *entity.Customer {
	return &entity.Customer{
		ID:        uuid.New(),
		Name:      name,
		Phone:     "0300-1234567",
		AccessKey: uuid.NewString()[:32],
		Lifecycle: entity.LifecycleActive,
		CreatedAt: time.Now(),
	}
}

func newTransaction(customerID uuid.UUID, date string, due decimal.Decimal) *entity.Transaction {
	return &entity.Transaction{
		ID:          uuid.New(),
		CustomerID:  customerID,
		MainType:    entity.MainTypeCash,
		Type:        entity.CashGiven,
		Date:        date,
		TotalAmount: due.Abs(),
		DueAmount:   due,
		Lifecycle:   entity.LifecycleActive,
		CreatedAt:   time.Now(),
	}
}

func TestCustomerRepository_FindByID(t *testing.T) {
	db := testDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	customer := newCustomer("Akbar")
	require.NoError(t, repo.Create(ctx, customer))

	found, err := repo.FindByID(ctx, customer.ID)
	require.NoError(t, err)
	require.Equal(t, customer.Name, found.Name)
	require.Equal(t, customer.AccessKey, found.AccessKey)

	_, err = repo.FindByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerror.ErrCustomerNotFound)
}

func TestCustomerRepository_FindByAccessKey(t *testing.T) {
	db := testDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	customer := newCustomer("Bashir")
	require.NoError(t, repo.Create(ctx, customer))

	found, err := repo.FindByAccessKey(ctx, customer.AccessKey)
	require.NoError(t, err)
	require.Equal(t, customer.ID, found.ID)

	// A deleted customer's key must behave like an unknown key.
	require.NoError(t, repo.SoftDelete(ctx, customer.ID, time.Now()))
	_, err = repo.FindByAccessKey(ctx, customer.AccessKey)
	require.ErrorIs(t, err, domainerror.ErrAccessKeyNotFound)
}

func TestCustomerRepository_ExistsByName(t *testing.T) {
	db := testDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newCustomer("Chaudhry Sahab")))

	exists, err := repo.ExistsByName(ctx, "chaudhry sahab")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "someone else")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestCustomerRepository_ListActiveWithDues(t *testing.T) {
	db := testDB(t)
	customerRepo := NewCustomerRepository(db)
	transactionRepo := NewTransactionRepository(db)
	ctx := context.Background()

	zubair := newCustomer("Zubair")
	amin := newCustomer("Amin")
	require.NoError(t, customerRepo.Create(ctx, zubair))
	require.NoError(t, customerRepo.Create(ctx, amin))

	require.NoError(t, transactionRepo.Create(ctx, newTransaction(zubair.ID, "2025-01-10", decimal.NewFromInt(500))))
	require.NoError(t, transactionRepo.Create(ctx, newTransaction(zubair.ID, "2025-01-12", decimal.NewFromInt(-200))))

	customers, err := customerRepo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 2)

	// Ordered by name, dues folded from active transactions.
	require.Equal(t, "Amin", customers[0].Customer.Name)
	require.True(t, customers[0].Due.IsZero())
	require.Equal(t, "Zubair", customers[1].Customer.Name)
	require.True(t, customers[1].Due.Equal(decimal.NewFromInt(300)))
}

func TestCustomerRepository_SoftDeleteCascadesAndRestores(t *testing.T) {
	db := testDB(t)
	customerRepo := NewCustomerRepository(db)
	transactionRepo := NewTransactionRepository(db)
	ctx := context.Background()

	customer := newCustomer("Dilawar")
	require.NoError(t, customerRepo.Create(ctx, customer))
	txn := newTransaction(customer.ID, "2025-02-01", decimal.NewFromInt(900))
	require.NoError(t, transactionRepo.Create(ctx, txn))

	deletedAt := time.Now()
	require.NoError(t, customerRepo.SoftDelete(ctx, customer.ID, deletedAt))

	_, err := customerRepo.FindByID(ctx, customer.ID)
	require.ErrorIs(t, err, domainerror.ErrCustomerNotFound)
	_, err = transactionRepo.FindByID(ctx, txn.ID)
	require.ErrorIs(t, err, domainerror.ErrTransactionNotFound)

	count, err := transactionRepo.CountDeletedByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	// Deleting twice is a no-op error, the customer is no longer active.
	require.ErrorIs(t, customerRepo.SoftDelete(ctx, customer.ID, deletedAt), domainerror.ErrCustomerNotFound)

	require.NoError(t, customerRepo.Restore(ctx, customer.ID))

	restored, err := customerRepo.FindByID(ctx, customer.ID)
	require.NoError(t, err)
	require.Nil(t, restored.DeletedAt)
	_, err = transactionRepo.FindByID(ctx, txn.ID)
	require.NoError(t, err)

	require.ErrorIs(t, customerRepo.Restore(ctx, customer.ID), domainerror.ErrCustomerNotDeleted)
}

func TestCustomerRepository_Purge(t *testing.T) {
	db := testDB(t)
	customerRepo := NewCustomerRepository(db)
	transactionRepo := NewTransactionRepository(db)
	ctx := context.Background()

	customer := newCustomer("Ejaz")
	require.NoError(t, customerRepo.Create(ctx, customer))
	require.NoError(t, transactionRepo.Create(ctx, newTransaction(customer.ID, "2025-03-01", decimal.NewFromInt(100))))

	// Purging an active customer must be refused.
	require.ErrorIs(t, customerRepo.Purge(ctx, customer.ID), domainerror.ErrCustomerNotDeleted)

	require.NoError(t, customerRepo.SoftDelete(ctx, customer.ID, time.Now()))
	require.NoError(t, customerRepo.Purge(ctx, customer.ID))

	_, err := customerRepo.FindByIDAnyState(ctx, customer.ID)
	require.ErrorIs(t, err, domainerror.ErrCustomerNotFound)

	count, err := transactionRepo.CountDeletedByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestCustomerRepository_FindExpired(t *testing.T) {
	db := testDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	old := newCustomer("Old")
	fresh := newCustomer("Fresh")
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, fresh))

	now := time.Now()
	require.NoError(t, repo.SoftDelete(ctx, old.ID, now.AddDate(0, 0, -61)))
	require.NoError(t, repo.SoftDelete(ctx, fresh.ID, now.AddDate(0, 0, -10)))

	expired, err := repo.FindExpired(ctx, now.AddDate(0, 0, -60))
	require.NoError(t, err)
	require.Len(t, expired, 1)
	require.Equal(t, old.ID, expired[0].ID)
}

func TestTransactionRepository_Ordering(t *testing.T) {
	db := testDB(t)
	customerRepo := NewCustomerRepository(db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	customer := newCustomer("Farid")
	require.NoError(t, customerRepo.Create(ctx, customer))

	early := newTransaction(customer.ID, "2025-01-05", decimal.NewFromInt(10))
	late := newTransaction(customer.ID, "2025-01-20", decimal.NewFromInt(20))
	sameDayOld := newTransaction(customer.ID, "2025-01-20", decimal.NewFromInt(30))
	late.CreatedAt = time.Now()
	sameDayOld.CreatedAt = late.CreatedAt.Add(-time.Hour)

	for _, txn := range []*entity.Transaction{early, late, sameDayOld} {
		require.NoError(t, repo.Create(ctx, txn))
	}

	transactions, err := repo.FindByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, transactions, 3)
	require.Equal(t, late.ID, transactions[0].ID)
	require.Equal(t, sameDayOld.ID, transactions[1].ID)
	require.Equal(t, early.ID, transactions[2].ID)
}

func TestTransactionRepository_FindByFilter(t *testing.T) {
	db := testDB(t)
	customerRepo := NewCustomerRepository(db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	customer := newCustomer("Ghulam")
	require.NoError(t, customerRepo.Create(ctx, customer))

	cash := newTransaction(customer.ID, "2025-04-01", decimal.NewFromInt(50))
	crop := newTransaction(customer.ID, "2025-04-10", decimal.NewFromInt(70))
	crop.MainType = entity.MainTypeCrops
	crop.Type = entity.TradeCropSell
	crop.CropType = "wheat"
	require.NoError(t, repo.Create(ctx, cash))
	require.NoError(t, repo.Create(ctx, crop))

	mainType := entity.MainTypeCrops
	transactions, err := repo.FindByFilter(ctx, adapter.TransactionFilter{MainType: &mainType})
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	require.Equal(t, crop.ID, transactions[0].ID)

	transactions, err = repo.FindByFilter(ctx, adapter.TransactionFilter{SinceDate: "2025-04-05"})
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	require.Equal(t, crop.ID, transactions[0].ID)
}

func TestTransactionRepository_NetDues(t *testing.T) {
	db := testDB(t)
	customerRepo := NewCustomerRepository(db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	active := newCustomer("Haider")
	deleted := newCustomer("Ibrar")
	require.NoError(t, customerRepo.Create(ctx, active))
	require.NoError(t, customerRepo.Create(ctx, deleted))

	require.NoError(t, repo.Create(ctx, newTransaction(active.ID, "2025-05-01", decimal.NewFromInt(400))))
	require.NoError(t, repo.Create(ctx, newTransaction(active.ID, "2025-05-02", decimal.NewFromInt(-150))))
	require.NoError(t, repo.Create(ctx, newTransaction(deleted.ID, "2025-05-03", decimal.NewFromInt(999))))
	require.NoError(t, customerRepo.SoftDelete(ctx, deleted.ID, time.Now()))

	nets, err := repo.NetDueByCustomer(ctx)
	require.NoError(t, err)
	require.Len(t, nets, 1)
	require.Equal(t, active.ID, nets[0].CustomerID)
	require.True(t, nets[0].Due.Equal(decimal.NewFromInt(250)))

	due, err := repo.NetDueForCustomer(ctx, active.ID)
	require.NoError(t, err)
	require.True(t, due.Equal(decimal.NewFromInt(250)))

	// No transactions folds to zero, not an error.
	due, err = repo.NetDueForCustomer(ctx, uuid.New())
	require.NoError(t, err)
	require.True(t, due.IsZero())
}

func TestTransactionRepository_Delete(t *testing.T) {
	db := testDB(t)
	customerRepo := NewCustomerRepository(db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	customer := newCustomer("Javed")
	require.NoError(t, customerRepo.Create(ctx, customer))
	txn := newTransaction(customer.ID, "2025-06-01", decimal.NewFromInt(80))
	require.NoError(t, repo.Create(ctx, txn))

	require.NoError(t, repo.Delete(ctx, txn.ID))
	require.ErrorIs(t, repo.Delete(ctx, txn.ID), domainerror.ErrTransactionNotFound)
}

func TestExpenseRepository_ListSince(t *testing.T) {
	db := testDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	older := &entity.Expense{
		ID:        uuid.New(),
		Amount:    decimal.NewFromInt(100),
		Type:      entity.ExpenseTractorDiesel,
		Date:      "2025-01-15",
		Lifecycle: entity.LifecycleActive,
		CreatedAt: time.Now(),
	}
	newer := &entity.Expense{
		ID:        uuid.New(),
		Amount:    decimal.NewFromInt(250),
		Type:      entity.ExpenseTractorRepair,
		Date:      "2025-07-01",
		Lifecycle: entity.LifecycleActive,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, newer.ID, all[0].ID)

	since, err := repo.ListSince(ctx, "2025-06-01")
	require.NoError(t, err)
	require.Len(t, since, 1)
	require.Equal(t, newer.ID, since[0].ID)
}

func TestSettingRepository_Upsert(t *testing.T) {
	db := testDB(t)
	repo := NewSettingRepository(db)
	ctx := context.Background()

	value, err := repo.Get(ctx, adapter.SettingPinHash)
	require.NoError(t, err)
	require.Empty(t, value)

	require.NoError(t, repo.Set(ctx, adapter.SettingPinHash, "first"))
	require.NoError(t, repo.Set(ctx, adapter.SettingPinHash, "second"))

	value, err = repo.Get(ctx, adapter.SettingPinHash)
	require.NoError(t, err)
	require.Equal(t, "second", value)
}

func TestBackupRepository_DumpIncludesDeleted(t *testing.T) {
	db := testDB(t)
	customerRepo := NewCustomerRepository(db)
	transactionRepo := NewTransactionRepository(db)
	backupRepo := NewBackupRepository(db)
	ctx := context.Background()

	customer := newCustomer("Kamran")
	require.NoError(t, customerRepo.Create(ctx, customer))
	require.NoError(t, transactionRepo.Create(ctx, newTransaction(customer.ID, "2025-08-01", decimal.NewFromInt(60))))
	require.NoError(t, customerRepo.SoftDelete(ctx, customer.ID, time.Now()))

	dump, err := backupRepo.Dump(ctx)
	require.NoError(t, err)
	require.Len(t, dump.Customers, 1)
	require.Equal(t, entity.LifecycleDeleted, dump.Customers[0].Lifecycle)
	require.Len(t, dump.Transactions, 1)
}

func TestImportRepository_ApplyIsAtomic(t *testing.T) {
	db := testDB(t)
	customerRepo := NewCustomerRepository(db)
	importRepo := NewImportRepository(db)
	ctx := context.Background()

	existing := newCustomer("Latif")
	require.NoError(t, customerRepo.Create(ctx, existing))

	incoming := newCustomer("Munir")
	merged := *existing
	merged.Phone = "0345-7654321"

	batch := &adapter.ImportBatch{
		NewCustomers:    []*entity.Customer{incoming},
		MergedCustomers: []*entity.Customer{&merged},
		Transactions: []*entity.Transaction{
			newTransaction(incoming.ID, "2025-08-10", decimal.NewFromInt(120)),
		},
	}
	require.NoError(t, importRepo.Apply(ctx, batch))

	customers, err := customerRepo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 2)

	updated, err := customerRepo.FindByID(ctx, existing.ID)
	require.NoError(t, err)
	require.Equal(t, "0345-7654321", updated.Phone)

	// A batch that violates a constraint must leave nothing behind.
	bad := &adapter.ImportBatch{
		NewCustomers: []*entity.Customer{newCustomer("Nadeem")},
		Transactions: []*entity.Transaction{
			newTransaction(uuid.New(), "2025-08-11", decimal.NewFromInt(10)),
			newTransaction(uuid.New(), "2025-08-11", decimal.NewFromInt(10)),
		},
	}
	bad.Transactions[1].ID = bad.Transactions[0].ID
	require.Error(t, importRepo.Apply(ctx, bad))

	customers, err = customerRepo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 2)
}
