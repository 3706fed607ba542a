package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"lengolf/internal/domain"
	"lengolf/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrMissingFields, http.StatusBadRequest, "MISSING_FIELDS"},
		{domain.ErrEmptyInvoice, http.StatusBadRequest, "EMPTY_INVOICE"},
		{domain.ErrInvalidRate, http.StatusBadRequest, "INVALID_RATE"},
		{domain.ErrInvalidDate, http.StatusBadRequest, "INVALID_DATE"},
		{domain.ErrDuplicateTaxID, http.StatusConflict, "DUPLICATE_TAX_ID"},
		{domain.ErrArtifactNotFound, http.StatusNotFound, "ARTIFACT_NOT_FOUND"},
		{errors.New("pq: connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			status, code, msg := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestMapDomainError_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("loading supplier: %w", domain.ErrNotFound)

	status, code, _ := handler.MapDomainError(wrapped)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", code)
}
