package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Apply inserts basic seed data for manual testing. It is idempotent.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensureUser(ctx, pool, "Shop Owner", "admin@tailorshop.local", "Admin@123", "admin"); err != nil {
		return fmt.Errorf("ensure admin user: %w", err)
	}
	if err := ensureUser(ctx, pool, "Demo Customer", "demo@tailorshop.local", "Demo@123", "customer"); err != nil {
		return fmt.Errorf("ensure demo user: %w", err)
	}

	customerID, err := ensureCustomer(ctx, pool)
	if err != nil {
		return fmt.Errorf("ensure demo customer: %w", err)
	}

	if err := ensureOrder(ctx, pool, customerID); err != nil {
		return fmt.Errorf("ensure demo order: %w", err)
	}
	return nil
}

func ensureUser(ctx context.Context, pool *pgxpool.Pool, name, email, password, role string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (name, email, password_hash, role)
SELECT $1, $2, $3, $4
WHERE NOT EXISTS (SELECT 1 FROM users WHERE lower(email) = lower($2))
`
	_, err = pool.Exec(ctx, q, name, email, string(hashed), role)
	return err
}

func ensureCustomer(ctx context.Context, pool *pgxpool.Pool) (string, error) {
	const insert = `
INSERT INTO customers (name, phone, email, measurements)
SELECT 'Demo Customer', '9999999999', 'demo@tailorshop.local',
       '{"chest": 38, "pantWaist": 32, "shirtDescription": "Regular fit"}'::jsonb
WHERE NOT EXISTS (SELECT 1 FROM customers WHERE phone = '9999999999')
`
	if _, err := pool.Exec(ctx, insert); err != nil {
		return "", err
	}
	var id string
	err := pool.QueryRow(ctx, `SELECT id::text FROM customers WHERE phone = '9999999999'`).Scan(&id)
	return id, err
}

func ensureOrder(ctx context.Context, pool *pgxpool.Pool, customerID string) error {
	const q = `
INSERT INTO orders (customer_id, customer_name, customer_email, garment_type, fabric, quantity,
                    price, advance_payment, delivery_date, status)
SELECT $1, 'Demo Customer', 'demo@tailorshop.local', 'Shirt', 'Cotton', 1, 1200, 200,
       now() + interval '7 days', 'pending'
WHERE NOT EXISTS (SELECT 1 FROM orders WHERE customer_id = $1)
`
	_, err := pool.Exec(ctx, q, customerID)
	return err
}
