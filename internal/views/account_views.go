package views

import "time"

// Amounts travel as strings on the wire and are parsed into decimals by the
// service layer; the core ledger only ever sees well-typed values.

type OpenAccountRequest struct {
	Name           string `json:"name" binding:"required"`
	Gender         string `json:"gender"`
	DOB            string `json:"dob"`
	Email          string `json:"email" binding:"omitempty,email"`
	Mobile         string `json:"mobile"`
	Address        string `json:"address"`
	NationalID     string `json:"nationalId"`
	TaxID          string `json:"taxId"`
	InitialBalance string `json:"initialBalance" binding:"required"`
}

type UpdateKYCRequest struct {
	DOB        string `json:"dob" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Mobile     string `json:"mobile" binding:"required"`
	NationalID string `json:"nationalId" binding:"required"`
	TaxID      string `json:"taxId" binding:"required"`
}

type AmountRequest struct {
	Amount string `json:"amount" binding:"required"`
}

type TransferRequest struct {
	FromAccountID string `json:"fromAccountId" binding:"required"`
	ToAccountID   string `json:"toAccountId" binding:"required"`
	Amount        string `json:"amount" binding:"required"`
}

// ReceiveRequest is the alternate call shape for callers who think in terms
// of "I am receiving"; same semantics as TransferRequest with sides swapped.
type ReceiveRequest struct {
	ToAccountID   string `json:"toAccountId" binding:"required"`
	FromAccountID string `json:"fromAccountId" binding:"required"`
	Amount        string `json:"amount" binding:"required"`
}

type StatementEntry struct {
	Type         string    `json:"type"`
	Amount       string    `json:"amount"`
	Balance      string    `json:"balance"`
	Counterparty string    `json:"counterparty,omitempty"`
	At           time.Time `json:"at"`
}

type StatementResponse struct {
	AccountID  string           `json:"accountId"`
	Name       string           `json:"name"`
	Gender     string           `json:"gender"`
	DOB        string           `json:"dob"`
	Email      string           `json:"email"`
	Mobile     string           `json:"mobile"`
	Address    string           `json:"address"`
	NationalID string           `json:"nationalId"`
	TaxID      string           `json:"taxId"`
	Balance    string           `json:"balance"`
	Entries    []StatementEntry `json:"entries"`
	Text       string           `json:"text"`
}
