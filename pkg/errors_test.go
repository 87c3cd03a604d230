package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestToErrorResponse_AppErrorKeepsCodeAndStatus(t *testing.T) {
	err := NewAppError(ErrInsufficientFundsCode, "insufficient balance", errors.New("balance 0, debit 100"))

	resp := ToErrorResponse(zap.NewNop(), "trace-1", err)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Status)
	assert.Equal(t, ErrInsufficientFundsCode.Code, resp.Code)
	assert.Equal(t, "insufficient balance", resp.Message)
}

func TestToErrorResponse_WrappedAppErrorUnwraps(t *testing.T) {
	cause := NewAppError(ErrAccountNotFoundCode, "account not found", nil)
	wrapped := errors.Join(errors.New("service layer"), cause)

	resp := ToErrorResponse(zap.NewNop(), "trace-1", wrapped)

	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, ErrAccountNotFoundCode.Code, resp.Code)
}

func TestToErrorResponse_UnknownErrorBecomesInternal(t *testing.T) {
	resp := ToErrorResponse(zap.NewNop(), "trace-1", errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, resp.Status)
	assert.Equal(t, ErrServerCode.Code, resp.Code)
	assert.Equal(t, ErrServerCode.Message, resp.Message)
}
