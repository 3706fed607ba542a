package mocks

import (
	"github.com/stretchr/testify/mock"

	"lengolf/internal/port"
)

// MockInvoiceRenderer is a mock implementation of port.InvoiceRenderer.
type MockInvoiceRenderer struct {
	mock.Mock
}

func (m *MockInvoiceRenderer) Render(input port.RenderInput) ([]byte, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
