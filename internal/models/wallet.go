package models

import "time"

// Transaction types.
const (
	TransactionPurchase = "purchase"
	TransactionRefund   = "refund"
	TransactionDeposit  = "deposit"
)

// WalletBalance splits the campus card balance by spending category.
type WalletBalance struct {
	Total   float64 `json:"total"`
	Dining  float64 `json:"dining"`
	Library float64 `json:"library"`
	Parking float64 `json:"parking"`
	Laundry float64 `json:"laundry"`
}

// Transaction is one campus card movement. Purchases carry negative amounts.
type Transaction struct {
	ID           int       `json:"id"`
	Type         string    `json:"type"`
	Category     string    `json:"category"`
	Amount       float64   `json:"amount"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Timestamp    time.Time `json:"timestamp"`
	Status       string    `json:"status"`
	BalanceAfter float64   `json:"balance_after"`
}

// Wallet is the campus card seed document.
type Wallet struct {
	Balance      WalletBalance `json:"balance"`
	Transactions []Transaction `json:"transactions"`
}
