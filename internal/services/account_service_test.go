package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Palani4051/Bank/internal/bank"
	"github.com/Palani4051/Bank/internal/views"
	"github.com/Palani4051/Bank/pkg"
)

func newTestService(opts ...bank.Option) AccountService {
	return NewAccountService(zap.NewNop(), bank.NewRegistry(opts...))
}

func openRequest(name, initial string) views.OpenAccountRequest {
	return views.OpenAccountRequest{
		Name:           name,
		Gender:         "F",
		DOB:            "1990-01-01",
		Email:          name + "@example.com",
		Mobile:         "5550100",
		Address:        "12 Ledger Lane",
		NationalID:     "NID-1",
		TaxID:          "TAX-1",
		InitialBalance: initial,
	}
}

func appErrorCode(t *testing.T, err error) pkg.ErrorCode {
	t.Helper()
	var appErr pkg.AppError
	assert.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Code
}

func TestOpen_ReturnsGeneratedAccountID(t *testing.T) {
	svc := newTestService()

	id, err := svc.Open(context.Background(), "trace-1", openRequest("alice", "1000"))

	assert.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestOpen_RejectsUnparsableAmount(t *testing.T) {
	svc := newTestService()

	_, err := svc.Open(context.Background(), "trace-1", openRequest("alice", "not-a-number"))

	assert.Equal(t, pkg.ErrInvalidInputCode, appErrorCode(t, err))
}

func TestDeposit_MapsUnknownAccountToNotFoundCode(t *testing.T) {
	svc := newTestService()

	_, err := svc.Deposit(context.Background(), "trace-1", "ghost", views.AmountRequest{Amount: "10"})

	assert.Equal(t, pkg.ErrAccountNotFoundCode, appErrorCode(t, err))
}

func TestWithdraw_MapsInsufficientFundsCode(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	id, err := svc.Open(ctx, "trace-1", openRequest("bob", "0"))
	assert.NoError(t, err)

	_, err = svc.Withdraw(ctx, "trace-1", id, views.AmountRequest{Amount: "100"})

	assert.Equal(t, pkg.ErrInsufficientFundsCode, appErrorCode(t, err))
}

func TestTransfer_MapsSameAccountCode(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	id, err := svc.Open(ctx, "trace-1", openRequest("alice", "100"))
	assert.NoError(t, err)

	err = svc.Transfer(ctx, "trace-1", views.TransferRequest{
		FromAccountID: id,
		ToAccountID:   id,
		Amount:        "10",
	})

	assert.Equal(t, pkg.ErrSameAccountCode, appErrorCode(t, err))
}

func TestCloseTwice_MapsAlreadyClosedCode(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	id, err := svc.Open(ctx, "trace-1", openRequest("alice", "100"))
	assert.NoError(t, err)

	assert.NoError(t, svc.Close(ctx, "trace-1", id))
	err = svc.Close(ctx, "trace-1", id)

	assert.Equal(t, pkg.ErrAlreadyClosedCode, appErrorCode(t, err))
}

func TestReceive_ProducesSameLedgerAsTransfer(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	alice, err := svc.Open(ctx, "trace-1", openRequest("alice", "1000"))
	assert.NoError(t, err)
	bob, err := svc.Open(ctx, "trace-1", openRequest("bob", "200"))
	assert.NoError(t, err)

	err = svc.Receive(ctx, "trace-1", views.ReceiveRequest{
		ToAccountID:   bob,
		FromAccountID: alice,
		Amount:        "300",
	})
	assert.NoError(t, err)

	aliceSt, err := svc.Statement(ctx, "trace-1", alice)
	assert.NoError(t, err)
	bobSt, err := svc.Statement(ctx, "trace-1", bob)
	assert.NoError(t, err)
	assert.Equal(t, "700", aliceSt.Balance)
	assert.Equal(t, "500", bobSt.Balance)
	assert.Equal(t, "TRANSFER_OUT", aliceSt.Entries[1].Type)
	assert.Equal(t, "TRANSFER_IN", bobSt.Entries[1].Type)
}

func TestStatement_TextIsDeterministic(t *testing.T) {
	// Fixed IDs so the rendered counterparty references are stable.
	next := 0
	ids := []string{"acc-alice", "acc-bob"}
	svc := newTestService(bank.WithIDGenerator(func() string {
		id := ids[next]
		next++
		return id
	}))
	ctx := context.Background()

	alice, err := svc.Open(ctx, "trace-1", openRequest("alice", "1000"))
	assert.NoError(t, err)
	bob, err := svc.Open(ctx, "trace-1", openRequest("bob", "200"))
	assert.NoError(t, err)

	_, err = svc.Deposit(ctx, "trace-1", alice, views.AmountRequest{Amount: "500"})
	assert.NoError(t, err)
	err = svc.Transfer(ctx, "trace-1", views.TransferRequest{FromAccountID: alice, ToAccountID: bob, Amount: "300"})
	assert.NoError(t, err)

	st, err := svc.Statement(ctx, "trace-1", alice)
	assert.NoError(t, err)

	expected := "Account Statement for alice\n" +
		"Name: alice\n" +
		"Gender: F\n" +
		"Date of Birth: 1990-01-01\n" +
		"Email: alice@example.com\n" +
		"Mobile: 5550100\n" +
		"Address: 12 Ledger Lane\n" +
		"Balance: 1200\n" +
		"National ID: NID-1\n" +
		"Tax ID: TAX-1\n" +
		"Transactions:\n" +
		"  OPEN: 1000 | Balance: 1000\n" +
		"  DEPOSIT: 500 | Balance: 1500\n" +
		"  TRANSFER_OUT: 300 | Balance: 1200 | Counterparty: acc-bob\n"
	assert.Equal(t, expected, st.Text)
}
