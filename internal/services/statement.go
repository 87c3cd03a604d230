package services

import (
	"fmt"
	"strings"

	"github.com/Palani4051/Bank/internal/bank"
	"github.com/Palani4051/Bank/internal/views"
)

// renderStatement converts a ledger snapshot into the response view,
// including the plain-text rendering clients display verbatim. The text
// layout carries no timestamps so the same ledger always renders the same.
func renderStatement(statement bank.Statement) views.StatementResponse {
	entries := make([]views.StatementEntry, 0, len(statement.Entries))
	for _, e := range statement.Entries {
		entries = append(entries, views.StatementEntry{
			Type:         string(e.Type),
			Amount:       e.Amount.String(),
			Balance:      e.Balance.String(),
			Counterparty: e.Counterparty,
			At:           e.At,
		})
	}

	return views.StatementResponse{
		AccountID:  statement.AccountID,
		Name:       statement.Profile.Name,
		Gender:     statement.Profile.Gender,
		DOB:        statement.Profile.DOB,
		Email:      statement.Profile.Email,
		Mobile:     statement.Profile.Mobile,
		Address:    statement.Profile.Address,
		NationalID: statement.Profile.NationalID,
		TaxID:      statement.Profile.TaxID,
		Balance:    statement.Balance.String(),
		Entries:    entries,
		Text:       statementText(statement),
	}
}

func statementText(statement bank.Statement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Account Statement for %s\n", statement.Profile.Name)
	fmt.Fprintf(&b, "Name: %s\n", statement.Profile.Name)
	fmt.Fprintf(&b, "Gender: %s\n", statement.Profile.Gender)
	fmt.Fprintf(&b, "Date of Birth: %s\n", statement.Profile.DOB)
	fmt.Fprintf(&b, "Email: %s\n", statement.Profile.Email)
	fmt.Fprintf(&b, "Mobile: %s\n", statement.Profile.Mobile)
	fmt.Fprintf(&b, "Address: %s\n", statement.Profile.Address)
	fmt.Fprintf(&b, "Balance: %s\n", statement.Balance.String())
	fmt.Fprintf(&b, "National ID: %s\n", statement.Profile.NationalID)
	fmt.Fprintf(&b, "Tax ID: %s\n", statement.Profile.TaxID)
	b.WriteString("Transactions:\n")
	for _, e := range statement.Entries {
		if e.Counterparty != "" {
			fmt.Fprintf(&b, "  %s: %s | Balance: %s | Counterparty: %s\n", e.Type, e.Amount.String(), e.Balance.String(), e.Counterparty)
			continue
		}
		fmt.Fprintf(&b, "  %s: %s | Balance: %s\n", e.Type, e.Amount.String(), e.Balance.String())
	}
	return b.String()
}
