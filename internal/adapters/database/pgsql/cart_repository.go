package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	portsrepo "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/repositories"
)

type CartRepository struct {
	db *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{db: db}
}

// Ensure CartRepository implements portsrepo.CartRepository
var _ portsrepo.CartRepository = (*CartRepository)(nil)

func (r *CartRepository) FindCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	query := `
        SELECT product_id, quantity
        FROM cart_items
        WHERE owner_id = $1;
    `
	cart := domain.Cart{OwnerID: ownerID, Items: map[string]int64{}}

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return cart, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID string
		var quantity int64
		if err := rows.Scan(&productID, &quantity); err != nil {
			return cart, fmt.Errorf("failed to scan cart item: %w", err)
		}
		if quantity > 0 {
			cart.Items[productID] = quantity
		}
	}
	if err := rows.Err(); err != nil {
		return cart, fmt.Errorf("failed iterating cart items: %w", err)
	}
	return cart, nil
}

func (r *CartRepository) ReplaceCart(ctx context.Context, cart domain.Cart) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE owner_id = $1;`, cart.OwnerID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	now := time.Now()
	for productID, quantity := range cart.Items {
		if quantity < 1 {
			continue
		}
		_, err := tx.Exec(ctx, `
            INSERT INTO cart_items (owner_id, product_id, quantity, updated_at)
            VALUES ($1, $2, $3, $4);
        `, cart.OwnerID, productID, quantity, now)
		if err != nil {
			return fmt.Errorf("failed to insert cart item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit cart replacement: %w", err)
	}
	return nil
}

func (r *CartRepository) SetItemQuantity(ctx context.Context, ownerID, productID string, quantity int64) error {
	if quantity < 1 {
		_, err := r.DeleteItem(ctx, ownerID, productID)
		return err
	}
	query := `
        INSERT INTO cart_items (owner_id, product_id, quantity, updated_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (owner_id, product_id) DO UPDATE SET
            quantity = EXCLUDED.quantity,
            updated_at = EXCLUDED.updated_at;
    `
	_, err := r.db.Exec(ctx, query, ownerID, productID, quantity, time.Now())
	if err != nil {
		return fmt.Errorf("failed to upsert cart item: %w", err)
	}
	return nil
}

func (r *CartRepository) DeleteItem(ctx context.Context, ownerID, productID string) (bool, error) {
	query := `
        DELETE FROM cart_items
        WHERE owner_id = $1 AND product_id = $2;
    `
	tag, err := r.db.Exec(ctx, query, ownerID, productID)
	if err != nil {
		return false, fmt.Errorf("failed to delete cart item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
