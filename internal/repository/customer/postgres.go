package customer

import (
	"context"
	"encoding/json"
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

// NewPostgres returns a Repository backed by Postgres. Measurements are stored
// as a JSONB document, already normalized by the service layer.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	measJSON, err := json.Marshal(c.Measurements)
	if err != nil {
		return nil, err
	}

	const q = `
INSERT INTO customers (name, phone, email, address, measurements)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5)
RETURNING id::text, name, phone, COALESCE(email, ''), COALESCE(address, ''), measurements, created_at, updated_at
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, c.Name, c.Phone, c.Email, c.Address, measJSON))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	const q = `
SELECT id::text, name, phone, COALESCE(email, ''), COALESCE(address, ''), measurements, created_at, updated_at
FROM customers
WHERE id = $1
LIMIT 1
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Customer, error) {
	const q = `
SELECT id::text, name, phone, COALESCE(email, ''), COALESCE(address, ''), measurements, created_at, updated_at
FROM customers
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("customer repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Customer
	for rows.Next() {
		c, err := r.scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("customer repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("customer repo: list count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) Update(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	measJSON, err := json.Marshal(c.Measurements)
	if err != nil {
		return nil, err
	}

	const q = `
UPDATE customers
SET name = $2, phone = $3, email = NULLIF($4, ''), address = NULLIF($5, ''), measurements = $6, updated_at = now()
WHERE id = $1
RETURNING id::text, name, phone, COALESCE(email, ''), COALESCE(address, ''), measurements, created_at, updated_at
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, c.ID, c.Name, c.Phone, c.Email, c.Address, measJSON))
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("customer repo: delete id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM customers`).Scan(&n); err != nil {
		r.logger.Printf("customer repo: count error=%v", err)
		return 0, err
	}
	return n, nil
}

func (r *postgresRepo) scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	var measJSON []byte
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &measJSON, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("customer repo: scan error=%v", err)
		return nil, err
	}
	if len(measJSON) > 0 {
		if err := json.Unmarshal(measJSON, &c.Measurements); err != nil {
			r.logger.Printf("customer repo: decode measurements id=%s err=%v", c.ID, err)
			return nil, err
		}
	}
	return &c, nil
}
