package ledger

import (
	"sort"

	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Fold recomputes an account's current balance from its opening balance and
// the full set of its transactions. The sum is order-independent, but the
// input is folded in ascending (date, created_at) order so rounding is
// reproducible run to run. Callers pass every transaction of the account:
// the fold is a full rescan, never an incremental patch, so the displayed
// balance cannot drift from the ledger.
func Fold(opening decimal.Decimal, txns []domain.FirmTransaction) decimal.Decimal {
	ordered := make([]domain.FirmTransaction, len(txns))
	copy(ordered, txns)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].TxnDate.Equal(ordered[j].TxnDate) {
			return ordered[i].TxnDate.Before(ordered[j].TxnDate)
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	balance := opening
	for _, txn := range ordered {
		balance = balance.Add(SignedAmount(txn))
	}
	return balance
}

// MergeStatement sorts the concatenation of normalized firm and partner
// entries into a single chronologically-descending statement. On equal
// dates, firm-sourced entries come first, then newer created_at first; the
// tie-break is fixed so merged statements are deterministic.
func MergeStatement(entries []domain.StatementEntry) []domain.StatementEntry {
	merged := make([]domain.StatementEntry, len(entries))
	copy(merged, entries)
	sort.SliceStable(merged, func(i, j int) bool {
		if !merged[i].Date.Equal(merged[j].Date) {
			return merged[i].Date.After(merged[j].Date)
		}
		if merged[i].Source != merged[j].Source {
			return merged[i].Source == domain.SourceFirm
		}
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged
}
