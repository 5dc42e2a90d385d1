package ledger_test

import (
	"testing"
	"time"

	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
	"github.com/firmbooks/firmbooks_backend/internal/utils/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	tests := []struct {
		name string
		typ  domain.TransactionType
		want int64
	}{
		{"partner deposit adds", domain.PartnerDeposit, 1},
		{"income adds", domain.Income, 1},
		{"partner withdrawal subtracts", domain.PartnerWithdrawal, -1},
		{"expense subtracts", domain.Expense, -1},
		{"adjustment has no direction", domain.Adjustment, 0},
		{"unknown tag has no direction", domain.TransactionType("mystery"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, ledger.Sign(tt.typ).Equal(decimal.NewFromInt(tt.want)),
				"Sign(%s) = %s, want %d", tt.typ, ledger.Sign(tt.typ), tt.want)
		})
	}
}

func TestLabel_TotalOverKnownTypes(t *testing.T) {
	want := map[domain.TransactionType]string{
		domain.PartnerDeposit:    "Partner Deposit",
		domain.PartnerWithdrawal: "Partner Withdrawal",
		domain.Expense:           "Expense",
		domain.Income:            "Income",
		domain.Adjustment:        "Adjustment",
	}
	for typ, label := range want {
		assert.Equal(t, label, ledger.Label(typ))
		assert.NotEmpty(t, ledger.Label(typ))
	}
}

func TestLabel_UnknownTagEchoedVerbatim(t *testing.T) {
	assert.Equal(t, "loan_repayment", ledger.Label(domain.TransactionType("loan_repayment")))
}

func TestNormalizeFirmTransaction(t *testing.T) {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	partnerID := "partner-1"

	t.Run("with partner linkage", func(t *testing.T) {
		txn := domain.FirmTransaction{
			TransactionID: "txn-1",
			AccountID:     "acc-1",
			PartnerID:     &partnerID,
			Type:          domain.PartnerDeposit,
			Amount:        decimal.NewFromFloat(500.00),
			Description:   "March capital",
			TxnDate:       date,
		}
		entry := ledger.NormalizeFirmTransaction(txn, "Main Cash", "Ramesh")

		assert.Equal(t, domain.SourceFirm, entry.Source)
		assert.Equal(t, "Ramesh", entry.Counterparty)
		assert.Equal(t, domain.ModeBankTransfer, entry.PaymentMode)
		assert.Equal(t, "Partner Deposit", entry.TypeLabel)
		assert.Equal(t, "Partner Deposit - March capital (Main Cash)", entry.Notes)
		assert.True(t, entry.SignedAmount.Equal(decimal.NewFromFloat(500.00)))
	})

	t.Run("no partner and no description", func(t *testing.T) {
		txn := domain.FirmTransaction{
			TransactionID: "txn-2",
			AccountID:     "acc-1",
			Type:          domain.Expense,
			Amount:        decimal.NewFromFloat(200.00),
			TxnDate:       date,
		}
		entry := ledger.NormalizeFirmTransaction(txn, "SBI Current", "")

		assert.Equal(t, "Firm Account", entry.Counterparty)
		assert.Equal(t, "Expense - No description (SBI Current)", entry.Notes)
		assert.True(t, entry.SignedAmount.Equal(decimal.NewFromFloat(-200.00)))
	})
}

func TestNormalizePartnerTransaction(t *testing.T) {
	txn := domain.PartnerTransaction{
		TransactionID: "ptxn-1",
		PartnerID:     "partner-1",
		Amount:        decimal.NewFromFloat(1000.00),
		PaymentMode:   domain.ModeUPI,
		Notes:         "advance to mahajan",
		PaymentDate:   time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
	}

	entry := ledger.NormalizePartnerTransaction(txn, "Shah Traders")
	assert.Equal(t, domain.SourcePartner, entry.Source)
	assert.Equal(t, "Shah Traders", entry.Counterparty)
	assert.Equal(t, domain.ModeUPI, entry.PaymentMode)
	assert.Equal(t, "advance to mahajan", entry.Notes)

	entry = ledger.NormalizePartnerTransaction(txn, "")
	assert.Equal(t, "Firm Account", entry.Counterparty)
}
