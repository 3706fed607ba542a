package port

import (
	"context"

	"github.com/google/uuid"

	"lengolf/internal/domain"
)

// SupplierRepository defines the contract for supplier persistence.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *domain.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
	List(ctx context.Context, offset, limit int) ([]domain.Supplier, int, error)
	Update(ctx context.Context, supplier *domain.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SettingRepository defines the contract for key/value settings persistence.
type SettingRepository interface {
	Get(ctx context.Context, key string) (string, error)
	GetAll(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
}
