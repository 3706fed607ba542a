package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lengolf/internal/domain"
	"lengolf/internal/port"
)

type supplierRepo struct {
	db *sqlx.DB
}

// NewSupplierRepo creates a new PostgreSQL-backed SupplierRepository.
func NewSupplierRepo(db *sqlx.DB) port.SupplierRepository {
	return &supplierRepo{db: db}
}

func (r *supplierRepo) Create(ctx context.Context, supplier *domain.Supplier) error {
	supplier.ID = uuid.New()
	now := time.Now().UTC()
	supplier.CreatedAt = now
	supplier.UpdatedAt = now

	query := `INSERT INTO suppliers
		(id, name, address_line1, address_line2, tax_id, default_description, default_unit_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		supplier.ID, supplier.Name, supplier.AddressLine1, supplier.AddressLine2,
		supplier.TaxID, supplier.DefaultDescription, supplier.DefaultUnitPrice,
		supplier.CreatedAt, supplier.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "tax_id") {
			return domain.ErrDuplicateTaxID
		}
		return fmt.Errorf("supplierRepo.Create: %w", err)
	}
	return nil
}

func (r *supplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	var supplier domain.Supplier
	err := r.db.GetContext(ctx, &supplier, "SELECT * FROM suppliers WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("supplierRepo.GetByID: %w", err)
	}
	return &supplier, nil
}

func (r *supplierRepo) List(ctx context.Context, offset, limit int) ([]domain.Supplier, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM suppliers")
	if err != nil {
		return nil, 0, fmt.Errorf("supplierRepo.List count: %w", err)
	}

	var suppliers []domain.Supplier
	err = r.db.SelectContext(ctx, &suppliers,
		"SELECT * FROM suppliers ORDER BY name LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("supplierRepo.List: %w", err)
	}
	return suppliers, total, nil
}

func (r *supplierRepo) Update(ctx context.Context, supplier *domain.Supplier) error {
	supplier.UpdatedAt = time.Now().UTC()
	query := `UPDATE suppliers SET
		name = $1, address_line1 = $2, address_line2 = $3, tax_id = $4,
		default_description = $5, default_unit_price = $6, updated_at = $7
		WHERE id = $8`
	result, err := r.db.ExecContext(ctx, query,
		supplier.Name, supplier.AddressLine1, supplier.AddressLine2, supplier.TaxID,
		supplier.DefaultDescription, supplier.DefaultUnitPrice, supplier.UpdatedAt, supplier.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "tax_id") {
			return domain.ErrDuplicateTaxID
		}
		return fmt.Errorf("supplierRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *supplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM suppliers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("supplierRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
