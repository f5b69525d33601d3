package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Side represents the direction of a journal line
type Side string

const (
	SideDebit  Side = "DEBIT"
	SideCredit Side = "CREDIT"
)

// Account identifies a ledger account touched by amortization bookkeeping
type Account string

const (
	AccountDeferredExpense       Account = "LONG_TERM_DEFERRED_EXPENSE"
	AccountCash                  Account = "CASH"
	AccountAdministrativeExpense Account = "ADMINISTRATIVE_EXPENSE"
)

// JournalEntry represents one balanced double-entry bookkeeping record
type JournalEntry struct {
	ID    uuid.UUID
	Date  time.Time
	Memo  string
	Lines []JournalLine
}

// JournalLine represents a single debit or credit within a journal entry
type JournalLine struct {
	ID      uuid.UUID
	EntryID uuid.UUID
	Account Account
	Side    Side
	Amount  decimal.Decimal // ABSOLUTE VALUE (Always Positive)
}

// Validate ensures the journal entry adheres to double-entry rules.
// CRITICAL: Ensures sum of debits equals sum of credits.
func (e *JournalEntry) Validate() error {
	if len(e.Lines) == 0 {
		return errors.New("journal entry must have at least one line")
	}

	var totalDebits decimal.Decimal
	var totalCredits decimal.Decimal

	for _, line := range e.Lines {
		// Validate line amount is positive (absolute value)
		if line.Amount.LessThanOrEqual(decimal.Zero) {
			return errors.New("line amount must be positive (absolute value)")
		}

		switch line.Account {
		case AccountDeferredExpense, AccountCash, AccountAdministrativeExpense:
		default:
			return errors.New("line account is not a known ledger account")
		}

		switch line.Side {
		case SideDebit:
			totalDebits = totalDebits.Add(line.Amount)
		case SideCredit:
			totalCredits = totalCredits.Add(line.Amount)
		default:
			return errors.New("line side must be DEBIT or CREDIT")
		}
	}

	if !totalDebits.Equal(totalCredits) {
		return errors.New("sum of debits must equal sum of credits")
	}

	return nil
}
