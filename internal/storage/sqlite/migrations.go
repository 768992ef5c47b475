package sqlite

import "database/sql"

// schema sets up the database. It runs on every startup, so every statement
// must be idempotent. Prices are stored as TEXT to keep decimals exact.
const schema = `
CREATE TABLE IF NOT EXISTS food_items (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    full_price TEXT,
    half_price TEXT,
    image_url TEXT
);

CREATE TABLE IF NOT EXISTS orders (
    id TEXT PRIMARY KEY,
    bill_no INTEGER NOT NULL,
    customer_name TEXT NOT NULL,
    total_amount TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS order_items (
    order_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    item_id TEXT NOT NULL,
    portion TEXT NOT NULL CHECK (portion IN ('full', 'half')),
    quantity INTEGER NOT NULL CHECK (quantity > 0),
    PRIMARY KEY (order_id, position),
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS profile (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    name TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    notes TEXT NOT NULL DEFAULT '',
    bill_number INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_orders_bill_no ON orders(bill_no);
CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
