package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Palani4051/Bank/internal/bank"
	"github.com/Palani4051/Bank/internal/views"
	"github.com/Palani4051/Bank/pkg"
)

type AccountService interface {
	Open(ctx context.Context, traceID string, req views.OpenAccountRequest) (string, error)
	UpdateKYC(ctx context.Context, traceID string, accountID string, req views.UpdateKYCRequest) error
	Deposit(ctx context.Context, traceID string, accountID string, req views.AmountRequest) (string, error)
	Withdraw(ctx context.Context, traceID string, accountID string, req views.AmountRequest) (string, error)
	Transfer(ctx context.Context, traceID string, req views.TransferRequest) error
	Receive(ctx context.Context, traceID string, req views.ReceiveRequest) error
	Statement(ctx context.Context, traceID string, accountID string) (views.StatementResponse, error)
	Close(ctx context.Context, traceID string, accountID string) error
}

type AccountServiceImpl struct {
	logger   *zap.Logger
	registry *bank.Registry
}

func NewAccountService(logger *zap.Logger, registry *bank.Registry) AccountService {
	return &AccountServiceImpl{
		logger:   logger,
		registry: registry,
	}
}

func (s *AccountServiceImpl) Open(ctx context.Context, traceID string, req views.OpenAccountRequest) (string, error) {
	initialBalance, err := parseAmount(req.InitialBalance)
	if err != nil {
		return "", err
	}

	profile := bank.Profile{
		Name:    strings.TrimSpace(req.Name),
		Gender:  strings.TrimSpace(req.Gender),
		Address: strings.TrimSpace(req.Address),
		KYC: bank.KYC{
			DOB:        strings.TrimSpace(req.DOB),
			Email:      strings.TrimSpace(req.Email),
			Mobile:     strings.TrimSpace(req.Mobile),
			NationalID: strings.TrimSpace(req.NationalID),
			TaxID:      strings.TrimSpace(req.TaxID),
		},
	}

	accountID, err := s.registry.Open(profile, initialBalance)
	if err != nil {
		return "", toAppError(err)
	}
	s.logger.Info("account opened",
		zap.String(pkg.TraceId, traceID),
		zap.String("accountId", accountID),
		zap.String("initialBalance", initialBalance.String()),
	)
	return accountID, nil
}

func (s *AccountServiceImpl) UpdateKYC(ctx context.Context, traceID string, accountID string, req views.UpdateKYCRequest) error {
	kyc := bank.KYC{
		DOB:        strings.TrimSpace(req.DOB),
		Email:      strings.TrimSpace(req.Email),
		Mobile:     strings.TrimSpace(req.Mobile),
		NationalID: strings.TrimSpace(req.NationalID),
		TaxID:      strings.TrimSpace(req.TaxID),
	}
	if err := s.registry.UpdateKYC(accountID, kyc); err != nil {
		return toAppError(err)
	}
	s.logger.Info("kyc updated",
		zap.String(pkg.TraceId, traceID),
		zap.String("accountId", accountID),
	)
	return nil
}

func (s *AccountServiceImpl) Deposit(ctx context.Context, traceID string, accountID string, req views.AmountRequest) (string, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return "", err
	}
	balance, err := s.registry.Deposit(accountID, amount)
	if err != nil {
		return "", toAppError(err)
	}
	s.logger.Info("deposit posted",
		zap.String(pkg.TraceId, traceID),
		zap.String("accountId", accountID),
		zap.String("amount", amount.String()),
		zap.String("balance", balance.String()),
	)
	return balance.String(), nil
}

func (s *AccountServiceImpl) Withdraw(ctx context.Context, traceID string, accountID string, req views.AmountRequest) (string, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return "", err
	}
	balance, err := s.registry.Withdraw(accountID, amount)
	if err != nil {
		return "", toAppError(err)
	}
	s.logger.Info("withdrawal posted",
		zap.String(pkg.TraceId, traceID),
		zap.String("accountId", accountID),
		zap.String("amount", amount.String()),
		zap.String("balance", balance.String()),
	)
	return balance.String(), nil
}

func (s *AccountServiceImpl) Transfer(ctx context.Context, traceID string, req views.TransferRequest) error {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return err
	}
	if err := s.registry.Transfer(req.FromAccountID, req.ToAccountID, amount); err != nil {
		return toAppError(err)
	}
	s.logger.Info("transfer completed",
		zap.String(pkg.TraceId, traceID),
		zap.String("fromAccountId", req.FromAccountID),
		zap.String("toAccountId", req.ToAccountID),
		zap.String("amount", amount.String()),
	)
	return nil
}

func (s *AccountServiceImpl) Receive(ctx context.Context, traceID string, req views.ReceiveRequest) error {
	// Same operation as Transfer with the sides named from the receiver's
	// point of view; normalized here, executed once.
	return s.Transfer(ctx, traceID, views.TransferRequest{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount,
	})
}

func (s *AccountServiceImpl) Statement(ctx context.Context, traceID string, accountID string) (views.StatementResponse, error) {
	statement, err := s.registry.Statement(accountID)
	if err != nil {
		return views.StatementResponse{}, toAppError(err)
	}
	s.logger.Info("statement produced",
		zap.String(pkg.TraceId, traceID),
		zap.String("accountId", accountID),
		zap.Int("entries", len(statement.Entries)),
	)
	return renderStatement(statement), nil
}

func (s *AccountServiceImpl) Close(ctx context.Context, traceID string, accountID string) error {
	if err := s.registry.Close(accountID); err != nil {
		return toAppError(err)
	}
	s.logger.Info("account closed",
		zap.String(pkg.TraceId, traceID),
		zap.String("accountId", accountID),
	)
	return nil
}

// parseAmount converts a wire amount into a decimal; parse failures surface
// as invalid-input rather than reaching the ledger.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, pkg.NewAppError(pkg.ErrInvalidInputCode, "amount is not a valid number", err)
	}
	return amount, nil
}

// toAppError maps ledger domain errors to AppErrors with proper codes/status.
func toAppError(err error) error {
	switch {
	case errors.Is(err, bank.ErrDuplicateAccount):
		return pkg.NewAppError(pkg.ErrDuplicateAccountCode, "account already exists", err)
	case errors.Is(err, bank.ErrAccountNotFound):
		return pkg.NewAppError(pkg.ErrAccountNotFoundCode, "account not found", err)
	case errors.Is(err, bank.ErrAccountClosed):
		return pkg.NewAppError(pkg.ErrAccountClosedCode, "account is closed", err)
	case errors.Is(err, bank.ErrAlreadyClosed):
		return pkg.NewAppError(pkg.ErrAlreadyClosedCode, "account is already closed", err)
	case errors.Is(err, bank.ErrInvalidAmount):
		return pkg.NewAppError(pkg.ErrInvalidAmountCode, "amount must be positive", err)
	case errors.Is(err, bank.ErrInsufficientFunds):
		return pkg.NewAppError(pkg.ErrInsufficientFundsCode, "insufficient balance", err)
	case errors.Is(err, bank.ErrSameAccount):
		return pkg.NewAppError(pkg.ErrSameAccountCode, "debit and credit accounts are the same", err)
	}
	return err
}
