package ledger

import (
	"fmt"

	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var typeLabels = map[domain.TransactionType]string{
	domain.PartnerDeposit:    "Partner Deposit",
	domain.PartnerWithdrawal: "Partner Withdrawal",
	domain.Expense:           "Expense",
	domain.Income:            "Income",
	domain.Adjustment:        "Adjustment",
}

// Sign returns the balance contribution direction for a transaction type.
// Deposits and income add, withdrawals and expenses subtract. Adjustments
// carry no defined direction and contribute zero, as does any unrecognized
// tag: a tag we cannot classify must not move money.
func Sign(t domain.TransactionType) decimal.Decimal {
	switch t {
	case domain.PartnerDeposit, domain.Income:
		return decimal.NewFromInt(1)
	case domain.PartnerWithdrawal, domain.Expense:
		return decimal.NewFromInt(-1)
	default:
		return decimal.Zero
	}
}

// Label maps a transaction type to its display string. Unrecognized tags are
// echoed verbatim rather than failing, so stale rows still render.
func Label(t domain.TransactionType) string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return string(t)
}

// SignedAmount applies the type-derived sign to a transaction's magnitude.
func SignedAmount(txn domain.FirmTransaction) decimal.Decimal {
	return txn.Amount.Mul(Sign(txn.Type))
}

// NormalizeFirmTransaction maps a firm transaction into the uniform statement
// shape. Firm rows carry no payment mode, so a bank-like default is assumed;
// the counterparty falls back to "Firm Account" when no partner is linked,
// and the notes line is synthesized from label, description and account name.
func NormalizeFirmTransaction(txn domain.FirmTransaction, accountName, partnerName string) domain.StatementEntry {
	counterparty := partnerName
	if counterparty == "" {
		counterparty = "Firm Account"
	}
	description := txn.Description
	if description == "" {
		description = "No description"
	}
	return domain.StatementEntry{
		EntryID:      txn.TransactionID,
		Source:       domain.SourceFirm,
		Date:         txn.TxnDate,
		Amount:       txn.Amount,
		SignedAmount: SignedAmount(txn),
		TypeLabel:    Label(txn.Type),
		PaymentMode:  domain.ModeBankTransfer,
		Counterparty: counterparty,
		Notes:        fmt.Sprintf("%s - %s (%s)", Label(txn.Type), description, accountName),
		CreatedAt:    txn.CreatedAt,
	}
}

// NormalizePartnerTransaction maps a partner payment into the uniform
// statement shape. Payments count toward the partner's invested total, so
// the signed amount keeps the positive magnitude.
func NormalizePartnerTransaction(txn domain.PartnerTransaction, mahajanName string) domain.StatementEntry {
	counterparty := mahajanName
	if counterparty == "" {
		counterparty = "Firm Account"
	}
	return domain.StatementEntry{
		EntryID:      txn.TransactionID,
		Source:       domain.SourcePartner,
		Date:         txn.PaymentDate,
		Amount:       txn.Amount,
		SignedAmount: txn.Amount,
		TypeLabel:    "Payment",
		PaymentMode:  txn.PaymentMode,
		Counterparty: counterparty,
		Notes:        txn.Notes,
		CreatedAt:    txn.CreatedAt,
	}
}
