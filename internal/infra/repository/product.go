package repository

import (
	"context"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"
	"hotel-frontdesk/internal/usecase/commands"

	"github.com/google/uuid"
)

// ProductRepository reads current catalog prices for consumption recording.
// The catalog itself is maintained elsewhere; this core never writes it.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const findProductByIDSQL = `
SELECT id, name, price_cents
FROM products
WHERE id = $1`

func (r *ProductRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.ProductSnapshot, error) {
	var snapshot commands.ProductSnapshot

	err := dbtx.QueryRow(ctx, findProductByIDSQL, id).Scan(
		&snapshot.ID, &snapshot.Name, &snapshot.PriceCents,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}

	return &snapshot, nil
}
