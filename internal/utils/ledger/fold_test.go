package ledger_test

import (
	"testing"
	"time"

	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
	"github.com/firmbooks/firmbooks_backend/internal/utils/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func firmTxn(id string, typ domain.TransactionType, amount float64, date time.Time) domain.FirmTransaction {
	return domain.FirmTransaction{
		TransactionID: id,
		AccountID:     "acc-1",
		Type:          typ,
		Amount:        decimal.NewFromFloat(amount),
		TxnDate:       date,
		AuditFields:   domain.AuditFields{CreatedAt: date.Add(10 * time.Hour)},
	}
}

func TestFold_Scenario(t *testing.T) {
	opening := decimal.NewFromFloat(1000.00)
	txns := []domain.FirmTransaction{
		firmTxn("t1", domain.Income, 500.00, day(1)),
		firmTxn("t2", domain.Expense, 200.00, day(2)),
		firmTxn("t3", domain.PartnerWithdrawal, 100.00, day(3)),
	}

	balance := ledger.Fold(opening, txns)
	assert.True(t, balance.Equal(decimal.NewFromFloat(1200.00)), "got %s", balance)
}

func TestFold_AfterDeletingExpense(t *testing.T) {
	opening := decimal.NewFromFloat(1000.00)
	txns := []domain.FirmTransaction{
		firmTxn("t1", domain.Income, 500.00, day(1)),
		firmTxn("t3", domain.PartnerWithdrawal, 100.00, day(3)),
	}

	balance := ledger.Fold(opening, txns)
	assert.True(t, balance.Equal(decimal.NewFromFloat(1400.00)), "got %s", balance)
}

func TestFold_NoTransactionsEqualsOpeningExactly(t *testing.T) {
	opening := decimal.NewFromFloat(2500.75)
	assert.True(t, ledger.Fold(opening, nil).Equal(opening))
	assert.True(t, ledger.Fold(opening, []domain.FirmTransaction{}).Equal(opening))
}

func TestFold_OrderIndependent(t *testing.T) {
	opening := decimal.NewFromFloat(1000.00)
	txns := []domain.FirmTransaction{
		firmTxn("t1", domain.Income, 500.00, day(1)),
		firmTxn("t2", domain.Expense, 200.00, day(2)),
		firmTxn("t3", domain.PartnerWithdrawal, 100.00, day(3)),
		firmTxn("t4", domain.PartnerDeposit, 33.33, day(4)),
	}
	reversed := []domain.FirmTransaction{txns[3], txns[2], txns[1], txns[0]}
	shuffled := []domain.FirmTransaction{txns[2], txns[0], txns[3], txns[1]}

	want := ledger.Fold(opening, txns)
	assert.True(t, ledger.Fold(opening, reversed).Equal(want))
	assert.True(t, ledger.Fold(opening, shuffled).Equal(want))
}

func TestFold_Idempotent(t *testing.T) {
	opening := decimal.NewFromFloat(100.00)
	txns := []domain.FirmTransaction{
		firmTxn("t1", domain.Income, 42.42, day(1)),
		firmTxn("t2", domain.Expense, 7.07, day(2)),
	}

	first := ledger.Fold(opening, txns)
	second := ledger.Fold(opening, txns)
	assert.True(t, first.Equal(second))
}

func TestFold_AdjustmentAndUnknownContributeZero(t *testing.T) {
	opening := decimal.NewFromFloat(100.00)
	txns := []domain.FirmTransaction{
		firmTxn("t1", domain.Adjustment, 999.99, day(1)),
		firmTxn("t2", domain.TransactionType("mystery"), 50.00, day(2)),
	}

	assert.True(t, ledger.Fold(opening, txns).Equal(opening))
}

func TestFold_DoesNotMutateInput(t *testing.T) {
	txns := []domain.FirmTransaction{
		firmTxn("t2", domain.Expense, 1.00, day(2)),
		firmTxn("t1", domain.Income, 1.00, day(1)),
	}
	ledger.Fold(decimal.Zero, txns)
	assert.Equal(t, "t2", txns[0].TransactionID)
	assert.Equal(t, "t1", txns[1].TransactionID)
}

func statementEntry(id string, source domain.StatementSource, date, createdAt time.Time) domain.StatementEntry {
	return domain.StatementEntry{EntryID: id, Source: source, Date: date, CreatedAt: createdAt}
}

func TestMergeStatement_CrossStreamOrder(t *testing.T) {
	partner := []domain.StatementEntry{
		statementEntry("p1", domain.SourcePartner, day(10), day(10)),
	}
	firm := []domain.StatementEntry{
		statementEntry("f1", domain.SourceFirm, day(15), day(15)),
	}

	merged := ledger.MergeStatement(append(firm, partner...))
	require.Len(t, merged, 2)
	assert.Equal(t, "f1", merged[0].EntryID)
	assert.Equal(t, "p1", merged[1].EntryID)
}

func TestMergeStatement_CountAndDescendingDates(t *testing.T) {
	entries := []domain.StatementEntry{
		statementEntry("p1", domain.SourcePartner, day(3), day(3)),
		statementEntry("p2", domain.SourcePartner, day(9), day(9)),
		statementEntry("f1", domain.SourceFirm, day(1), day(1)),
		statementEntry("f2", domain.SourceFirm, day(7), day(7)),
		statementEntry("f3", domain.SourceFirm, day(5), day(5)),
	}

	merged := ledger.MergeStatement(entries)
	require.Len(t, merged, 5)
	for i := 1; i < len(merged); i++ {
		assert.False(t, merged[i].Date.After(merged[i-1].Date),
			"entry %d (%s) is newer than entry %d", i, merged[i].EntryID, i-1)
	}
}

func TestMergeStatement_EqualDateTieBreak(t *testing.T) {
	entries := []domain.StatementEntry{
		statementEntry("p-old", domain.SourcePartner, day(5), day(5).Add(1*time.Hour)),
		statementEntry("p-new", domain.SourcePartner, day(5), day(5).Add(3*time.Hour)),
		statementEntry("f-old", domain.SourceFirm, day(5), day(5).Add(2*time.Hour)),
	}

	merged := ledger.MergeStatement(entries)
	require.Len(t, merged, 3)
	// Firm entries first on equal date, then newer created_at first.
	assert.Equal(t, "f-old", merged[0].EntryID)
	assert.Equal(t, "p-new", merged[1].EntryID)
	assert.Equal(t, "p-old", merged[2].EntryID)
}

func TestMergeStatement_EmptySourceStreams(t *testing.T) {
	assert.Empty(t, ledger.MergeStatement(nil))

	only := []domain.StatementEntry{statementEntry("p1", domain.SourcePartner, day(2), day(2))}
	merged := ledger.MergeStatement(only)
	require.Len(t, merged, 1)
	assert.Equal(t, "p1", merged[0].EntryID)
}
