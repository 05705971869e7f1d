package order

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tailorshop/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const orderColumns = `id::text, customer_id::text, customer_name, COALESCE(customer_email, ''), garment_type,
       COALESCE(fabric, ''), COALESCE(color, ''), quantity, price, advance_payment, delivery_date, status,
       COALESCE(special_instructions, ''), created_at, updated_at`

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	const q = `
INSERT INTO orders (customer_id, customer_name, customer_email, garment_type, fabric, color,
                    quantity, price, advance_payment, delivery_date, status, special_instructions)
VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, $10, $11, NULLIF($12, ''))
RETURNING ` + orderColumns
	return r.scanOrder(r.pool.QueryRow(ctx, q,
		o.CustomerID,
		o.CustomerName,
		o.CustomerEmail,
		o.GarmentType,
		o.Fabric,
		o.Color,
		o.Quantity,
		o.Price,
		o.AdvancePayment,
		o.DeliveryDate,
		o.Status,
		o.SpecialInstructions,
	))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 LIMIT 1`
	return r.scanOrder(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("order repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("order repo: list count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) Update(ctx context.Context, o domain.Order) (*domain.Order, error) {
	const q = `
UPDATE orders
SET customer_id = $2, customer_name = $3, customer_email = NULLIF($4, ''), garment_type = $5,
    fabric = NULLIF($6, ''), color = NULLIF($7, ''), quantity = $8, price = $9, advance_payment = $10,
    delivery_date = $11, status = $12, special_instructions = NULLIF($13, ''), updated_at = now()
WHERE id = $1
RETURNING ` + orderColumns
	return r.scanOrder(r.pool.QueryRow(ctx, q,
		o.ID,
		o.CustomerID,
		o.CustomerName,
		o.CustomerEmail,
		o.GarmentType,
		o.Fabric,
		o.Color,
		o.Quantity,
		o.Price,
		o.AdvancePayment,
		o.DeliveryDate,
		o.Status,
		o.SpecialInstructions,
	))
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("order repo: delete id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM orders`).Scan(&n); err != nil {
		r.logger.Printf("order repo: count error=%v", err)
		return 0, err
	}
	return n, nil
}

func (r *postgresRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM orders WHERE status = $1`, status).Scan(&n); err != nil {
		r.logger.Printf("order repo: count status=%s error=%v", status, err)
		return 0, err
	}
	return n, nil
}

func (r *postgresRepo) SumPrices(ctx context.Context) (float64, error) {
	var total float64
	if err := r.pool.QueryRow(ctx, `SELECT COALESCE(sum(price), 0) FROM orders`).Scan(&total); err != nil {
		r.logger.Printf("order repo: sum prices error=%v", err)
		return 0, err
	}
	return total, nil
}

func (r *postgresRepo) scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID,
		&o.CustomerID,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.GarmentType,
		&o.Fabric,
		&o.Color,
		&o.Quantity,
		&o.Price,
		&o.AdvancePayment,
		&o.DeliveryDate,
		&o.Status,
		&o.SpecialInstructions,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: scan error=%v", err)
		return nil, err
	}
	return &o, nil
}
