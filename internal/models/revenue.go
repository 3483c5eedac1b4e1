package models

import "github.com/shopspring/decimal"

// Invoice eligibility states.
const (
	EligibilityDue    = "DUE"
	EligibilityNotDue = "NOT_DUE"
)

// RevenueInvoice is a row in the revenue ledger tracking an issued invoice
// through collection. Eligibility and DelayDays are derived from the due
// date and payment state; see DeriveRevenueStatus.
type RevenueInvoice struct {
	ID                   string          `json:"id"`
	Customer             string          `json:"customer"`
	InvoiceMonth         string          `json:"invoiceMonth,omitempty"`
	InvoiceDate          string          `json:"invoiceDate"`
	TotalWithVat14       decimal.Decimal `json:"totalWithVat14"`
	TotalWithoutVat14    decimal.Decimal `json:"totalWithoutVat14"`
	Cairo                decimal.Decimal `json:"cairo"`
	Mansoura             decimal.Decimal `json:"mansoura"`
	Legal                decimal.Decimal `json:"legal"`
	Other                decimal.Decimal `json:"other"`
	Vat14                decimal.Decimal `json:"vat14"`
	Tax3                 decimal.Decimal `json:"tax3"`
	RequiredToTransfer   decimal.Decimal `json:"requiredToTransfer"`
	PaidAmount           decimal.Decimal `json:"paidAmount"`
	Expenses             decimal.Decimal `json:"expenses"`
	DueAmount            decimal.Decimal `json:"dueAmount"`
	DueDate              string          `json:"dueDate"`
	PaymentTerm          string          `json:"paymentTerm,omitempty"`
	Eligibility          string          `json:"eligibility"`
	DelayDays            int             `json:"delayDays"`
	PaidDate             *string         `json:"paidDate,omitempty"`
	ActualRevenueMinus14 decimal.Decimal `json:"actualRevenueMinus14"`
	Notes                string          `json:"notes,omitempty"`
	CreatedAt            string          `json:"createdAt"`
}

// Validate checks the invoice before it reaches the store.
func (i *RevenueInvoice) Validate() error {
	if i.Customer == "" {
		return Invalid("customer", "must not be empty")
	}
	if err := ValidateDate(i.InvoiceDate); err != nil {
		return err
	}
	if err := ValidateDate(i.DueDate); err != nil {
		return err
	}
	if i.PaidDate != nil {
		if err := ValidateDate(*i.PaidDate); err != nil {
			return err
		}
	}
	return nil
}
