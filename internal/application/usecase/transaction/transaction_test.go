package transaction

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/application/stream"
	"github.com/khata-ledger/backend/internal/domain/entity"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
	"github.com/khata-ledger/backend/internal/domain/valuation"
)

// fakeTransactionRepo is an in-memory adapter.TransactionRepository.
type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*entity.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[uuid.UUID]*entity.Transaction)}
}

func (r *fakeTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	r.transactions[t.ID] = t
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	t, ok := r.transactions[id]
	if !ok || t.Lifecycle != entity.LifecycleActive {
		return nil, domainerror.ErrTransactionNotFound
	}
	return t, nil
}

func (r *fakeTransactionRepo) FindByCustomer(_ context.Context, customerID uuid.UUID) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.CustomerID == customerID && t.Lifecycle == entity.LifecycleActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) FindByFilter(_ context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.Lifecycle != entity.LifecycleActive {
			continue
		}
		if filter.CustomerID != nil && t.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.MainType != nil && t.MainType != *filter.MainType {
			continue
		}
		if filter.SinceDate != "" && t.Date < filter.SinceDate {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTransactionRepo) FindRecent(_ context.Context, n int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.Lifecycle == entity.LifecycleActive && len(out) < n {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) NetDueByCustomer(_ context.Context) ([]*adapter.CustomerNetDue, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) NetDueForCustomer(_ context.Context, customerID uuid.UUID) (decimal.Decimal, error) {
	due := decimal.Zero
	for _, t := range r.transactions {
		if t.CustomerID == customerID && t.Lifecycle == entity.LifecycleActive {
			due = due.Add(t.DueAmount)
		}
	}
	return due, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, t *entity.Transaction) error {
	r.transactions[t.ID] = t
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.transactions[id]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	delete(r.transactions, id)
	return nil
}

func (r *fakeTransactionRepo) CountByCustomer(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeTransactionRepo) CountDeletedByCustomer(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

// fakeCustomerLookup implements just enough of adapter.CustomerRepository
// for the existence check.
type fakeCustomerLookup struct {
	adapter.CustomerRepository
	known map[uuid.UUID]bool
}

func (r *fakeCustomerLookup) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	if !r.known[id] {
		return nil, domainerror.ErrCustomerNotFound
	}
	return &entity.Customer{ID: id, Lifecycle: entity.LifecycleActive}, nil
}

func setupRecord(t *testing.T) (*RecordTransactionUseCase, *fakeTransactionRepo, uuid.UUID) {
	t.Helper()
	repo := newFakeTransactionRepo()
	customerID := uuid.New()
	customers := &fakeCustomerLookup{known: map[uuid.UUID]bool{customerID: true}}
	return NewRecordTransactionUseCase(repo, customers, stream.NewHub()), repo, customerID
}

func TestRecordTransaction(t *testing.T) {
	t.Run("crop sell values due from weight and rate", func(t *testing.T) {
		uc, repo, customerID := setupRecord(t)
		out, err := uc.Execute(context.Background(), RecordTransactionInput{
			CustomerID:  customerID,
			MainType:    entity.MainTypeCrops,
			Type:        entity.TradeCropSell,
			Date:        "2025-06-10",
			CropType:    valuation.CropTypes[0],
			WeightInput: "10 + 20",
			Rate:        decimal.NewFromInt(50),
			AmountPaid:  decimal.NewFromInt(1000),
		})
		require.NoError(t, err)
		require.True(t, out.Transaction.TotalAmount.Equal(decimal.NewFromInt(1500)))
		// Customer owes the unpaid remainder of a sale.
		require.True(t, out.Transaction.DueAmount.Equal(decimal.NewFromInt(500)))
		require.Contains(t, repo.transactions, out.Transaction.ID)
	})

	t.Run("cash given is money the customer owes", func(t *testing.T) {
		uc, _, customerID := setupRecord(t)
		out, err := uc.Execute(context.Background(), RecordTransactionInput{
			CustomerID: customerID,
			MainType:   entity.MainTypeCash,
			Type:       entity.CashGiven,
			Date:       "2025-06-10",
			Amount:     decimal.NewFromInt(700),
		})
		require.NoError(t, err)
		require.True(t, out.Transaction.DueAmount.Equal(decimal.NewFromInt(700)))
	})

	t.Run("rejects missing date", func(t *testing.T) {
		uc, _, customerID := setupRecord(t)
		_, err := uc.Execute(context.Background(), RecordTransactionInput{
			CustomerID: customerID,
			MainType:   entity.MainTypeCash,
			Type:       entity.CashTaken,
			Amount:     decimal.NewFromInt(10),
		})
		require.ErrorIs(t, err, domainerror.ErrMissingTransactionDate)
	})

	t.Run("rejects oversized bill photo", func(t *testing.T) {
		uc, _, customerID := setupRecord(t)
		_, err := uc.Execute(context.Background(), RecordTransactionInput{
			CustomerID: customerID,
			MainType:   entity.MainTypeCash,
			Type:       entity.CashTaken,
			Date:       "2025-06-10",
			Amount:     decimal.NewFromInt(10),
			BillPhoto:  strings.Repeat("x", valuation.MaxBillPhotoKB*1024+1),
		})
		require.ErrorIs(t, err, domainerror.ErrBillPhotoTooLarge)
	})

	t.Run("rejects unknown customer", func(t *testing.T) {
		uc, _, _ := setupRecord(t)
		_, err := uc.Execute(context.Background(), RecordTransactionInput{
			CustomerID: uuid.New(),
			MainType:   entity.MainTypeCash,
			Type:       entity.CashTaken,
			Date:       "2025-06-10",
			Amount:     decimal.NewFromInt(10),
		})
		var cusErr *domainerror.CustomerError
		require.ErrorAs(t, err, &cusErr)
		require.Equal(t, domainerror.ErrCodeCustomerNotFound, cusErr.Code)
	})
}

func TestUpdateTransactionRevalues(t *testing.T) {
	recordUC, repo, customerID := setupRecord(t)
	recorded, err := recordUC.Execute(context.Background(), RecordTransactionInput{
		CustomerID: customerID,
		MainType:   entity.MainTypeCash,
		Type:       entity.CashGiven,
		Date:       "2025-06-10",
		Amount:     decimal.NewFromInt(700),
	})
	require.NoError(t, err)
	originalCreatedAt := recorded.Transaction.CreatedAt

	uc := NewUpdateTransactionUseCase(repo, stream.NewHub())
	out, err := uc.Execute(context.Background(), UpdateTransactionInput{
		TransactionID: recorded.Transaction.ID,
		RecordTransactionInput: RecordTransactionInput{
			// Switching the customer on an edit is ignored; the entry
			// stays with its owner.
			CustomerID: uuid.New(),
			MainType:   entity.MainTypeCash,
			Type:       entity.CashTaken,
			Date:       "2025-06-12",
			Amount:     decimal.NewFromInt(300),
		},
	})
	require.NoError(t, err)
	require.Equal(t, recorded.Transaction.ID, out.Transaction.ID)
	require.Equal(t, customerID, out.Transaction.CustomerID)
	require.Equal(t, originalCreatedAt, out.Transaction.CreatedAt)
	require.True(t, out.Transaction.DueAmount.Equal(decimal.NewFromInt(-300)))
	require.Equal(t, "2025-06-12", out.Transaction.Date)
}

func TestUpdateTransactionNotFound(t *testing.T) {
	uc := NewUpdateTransactionUseCase(newFakeTransactionRepo(), stream.NewHub())
	_, err := uc.Execute(context.Background(), UpdateTransactionInput{
		TransactionID: uuid.New(),
		RecordTransactionInput: RecordTransactionInput{
			MainType: entity.MainTypeCash,
			Type:     entity.CashTaken,
			Date:     "2025-06-10",
			Amount:   decimal.NewFromInt(10),
		},
	})
	var txnErr *domainerror.TransactionError
	require.ErrorAs(t, err, &txnErr)
	require.Equal(t, domainerror.ErrCodeTransactionNotFound, txnErr.Code)
}

func TestDeleteTransaction(t *testing.T) {
	recordUC, repo, customerID := setupRecord(t)
	recorded, err := recordUC.Execute(context.Background(), RecordTransactionInput{
		CustomerID: customerID,
		MainType:   entity.MainTypeCash,
		Type:       entity.CashGiven,
		Date:       "2025-06-10",
		Amount:     decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	uc := NewDeleteTransactionUseCase(repo, stream.NewHub())
	_, err = uc.Execute(context.Background(), DeleteTransactionInput{
		TransactionID: recorded.Transaction.ID,
	})
	require.NoError(t, err)
	require.NotContains(t, repo.transactions, recorded.Transaction.ID)

	_, err = uc.Execute(context.Background(), DeleteTransactionInput{
		TransactionID: recorded.Transaction.ID,
	})
	var txnErr *domainerror.TransactionError
	require.ErrorAs(t, err, &txnErr)
	require.Equal(t, domainerror.ErrCodeTransactionNotFound, txnErr.Code)
}

// Guard against accidental drift in the tie-break timestamp source.
func TestRecordedTransactionUsesUTC(t *testing.T) {
	uc, _, customerID := setupRecord(t)
	out, err := uc.Execute(context.Background(), RecordTransactionInput{
		CustomerID: customerID,
		MainType:   entity.MainTypeCash,
		Type:       entity.CashTaken,
		Date:       "2025-06-10",
		Amount:     decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	require.Equal(t, time.UTC, out.Transaction.CreatedAt.Location())
}
