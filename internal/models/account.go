package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType classifies an account by where its money lives.
type AccountType string

const (
	AccountCashbox AccountType = "CASHBOX"
	AccountBank    AccountType = "BANK"
	AccountWallet  AccountType = "WALLET"
)

// WalletProvider names the digital-wallet operator behind a WALLET account.
type WalletProvider string

const (
	ProviderInstapay WalletProvider = "INSTAPAY"
	ProviderVodafone WalletProvider = "VODAFONE"
	ProviderEtisalat WalletProvider = "ETISALAT"
	ProviderAman     WalletProvider = "AMAN"
	ProviderFawry    WalletProvider = "FAWRY"
)

// Account is a cash box, bank account, or digital wallet whose balance is
// derived from its opening balance plus its transactions.
type Account struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     AccountType     `json:"type"`
	Provider *WalletProvider `json:"provider,omitempty"`
	Currency string          `json:"currency"`
	// OpeningBalance seeds every balance computation. Changing it after
	// transactions exist shifts every historical balance; callers that allow
	// edits accept that drift.
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      string          `json:"createdAt"`
	UpdatedAt      string          `json:"updatedAt"`
}

// Ledger returns the ledger bucket the account's transactions belong to.
// Wallet accounts post to the DIGITAL ledger; cashbox and bank accounts post
// to the ledger named after their own type.
func (a *Account) Ledger() LedgerType {
	if a.Type == AccountWallet {
		return LedgerDigital
	}
	return LedgerType(a.Type)
}

// CreateAccountRequest carries the caller-supplied fields for a new account.
type CreateAccountRequest struct {
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	Provider       *WalletProvider `json:"provider,omitempty"`
	Currency       string          `json:"currency"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Notes          string          `json:"notes,omitempty"`
}

// Validate checks the request before it reaches the store.
func (r *CreateAccountRequest) Validate() error {
	if r.Name == "" {
		return Invalid("name", "must not be empty")
	}
	switch r.Type {
	case AccountCashbox, AccountBank, AccountWallet:
	default:
		return Invalid("type", "unknown account type")
	}
	if r.OpeningBalance.IsNegative() {
		return Invalid("openingBalance", "must not be negative")
	}
	return nil
}

// NewAccount materializes an Account from a validated request.
func NewAccount(r *CreateAccountRequest) *Account {
	now := NowISO()
	currency := r.Currency
	if currency == "" {
		currency = "EGP"
	}
	return &Account{
		ID:             uuid.NewString(),
		Name:           r.Name,
		Type:           r.Type,
		Provider:       r.Provider,
		Currency:       currency,
		OpeningBalance: r.OpeningBalance,
		Notes:          r.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// UpdateAccountRequest patches an existing account. Nil fields are left as-is.
type UpdateAccountRequest struct {
	Name           *string          `json:"name,omitempty"`
	Provider       *WalletProvider  `json:"provider,omitempty"`
	OpeningBalance *decimal.Decimal `json:"openingBalance,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}
