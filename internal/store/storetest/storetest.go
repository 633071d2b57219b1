// Package storetest builds isolated SQLite fixture stores for tests.
package storetest

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/MikeMC777/parana-browser/internal/store"
)

const paranaSchema = `
CREATE TABLE shoppers (
	shopper_id            INTEGER PRIMARY KEY,
	shopper_account_ref   TEXT,
	shopper_first_name    TEXT NOT NULL,
	shopper_surname       TEXT NOT NULL,
	shopper_email_address TEXT NOT NULL,
	date_of_birth         DATE,
	gender                TEXT,
	date_joined           DATE NOT NULL
);
CREATE TABLE shopper_orders (
	order_id     INTEGER PRIMARY KEY,
	shopper_id   INTEGER NOT NULL REFERENCES shoppers (shopper_id),
	order_date   DATE NOT NULL,
	order_status TEXT NOT NULL DEFAULT 'Placed'
);
CREATE TABLE products (
	product_id           INTEGER PRIMARY KEY,
	product_code         TEXT NOT NULL,
	product_description  TEXT NOT NULL,
	product_manufacturer TEXT,
	product_model        TEXT
);
CREATE TABLE sellers (
	seller_id            INTEGER PRIMARY KEY,
	seller_name          TEXT NOT NULL,
	seller_email_address TEXT
);
CREATE TABLE ordered_products (
	order_id               INTEGER NOT NULL,
	product_id             INTEGER NOT NULL,
	seller_id              INTEGER NOT NULL,
	quantity               INTEGER NOT NULL,
	price                  NUMERIC NOT NULL,
	ordered_product_status TEXT,
	PRIMARY KEY (order_id, product_id, seller_id)
);
CREATE INDEX idx_ordered_products_order ON ordered_products (order_id);
`

// Line items are inserted out of description order on purpose.
const paranaSeed = `
INSERT INTO shoppers VALUES
	(1, 'AC001', 'Alice', 'Smith',    'alice@example.com',   '1990-05-01', 'F', '2021-03-10'),
	(2, 'AC002', 'Bob',   'Jones',    'bob.jones@mail.com',  '1985-11-23', 'M', '2022-07-01'),
	(3, 'AC003', 'Carol', 'Bobbins',  'carol@example.org',   '1979-02-14', 'F', '2020-01-15'),
	(4, 'AC004', 'Dave',  'Tester',   'DAVE_T@EXAMPLE.COM',  NULL,         'M', '2023-02-02'),
	(5, 'AC005', 'Erin',  '100%Real', 'erin@example.com',    '2001-07-30', 'F', '2019-09-09'),
	(7, 'AC007', 'Grace', 'Hopper',   'grace@navy.mil',      '1906-12-09', 'F', '2018-12-09');

INSERT INTO products VALUES
	(10, 'P-010', 'Widget',    'Acme',     'W1'),
	(11, 'P-011', 'Anvil',     'Acme',     'A9'),
	(12, 'P-012', 'Zebra pen', 'Pens Ltd', 'Z2');

INSERT INTO sellers VALUES
	(1, 'Main Seller',  'main@sellers.com'),
	(2, 'Other Seller', 'other@sellers.com');

INSERT INTO shopper_orders VALUES
	(101, 1, '2023-05-05', 'Delivered'),
	(701, 7, '2024-01-05', 'Delivered'),
	(702, 7, '2024-02-10', 'Placed');

INSERT INTO ordered_products VALUES
	(701, 10,  1, 2, 5.00, 'Dispatched'),
	(701, 11,  2, 1, 3.00, 'Dispatched'),
	(702, 999, 1, 4, 9.99, 'Placed'),
	(101, 12,  1, 3, 0.10, 'Delivered'),
	(101, 10, 99, 1, 5.00, 'Delivered'),
	(101, 11,  1, 1, 2.50, 'Delivered');
`

const olistSchema = `
CREATE TABLE olist_customers (
	customer_id              TEXT PRIMARY KEY,
	customer_unique_id       TEXT NOT NULL,
	customer_zip_code_prefix TEXT,
	customer_city            TEXT,
	customer_state           TEXT
);
CREATE TABLE olist_orders (
	order_id                 TEXT PRIMARY KEY,
	customer_id              TEXT NOT NULL,
	order_status             TEXT,
	order_purchase_timestamp TEXT
);
CREATE TABLE olist_products (
	product_id            TEXT PRIMARY KEY,
	product_category_name TEXT,
	product_photos_qty    INTEGER
);
CREATE TABLE olist_order_items (
	order_id            TEXT NOT NULL,
	order_item_id       INTEGER NOT NULL,
	product_id          TEXT NOT NULL,
	seller_id           TEXT,
	shipping_limit_date TEXT,
	price               REAL,
	freight_value       REAL
);
`

const olistSeed = `
INSERT INTO olist_customers VALUES
	('c1', 'u1', '01001', 'sao paulo',      'SP'),
	('c2', 'u1', '01002', 'sao paulo',      'SP'),
	('c3', 'u2', '20000', 'rio de janeiro', 'RJ'),
	('c4', 'u3', '13000', 'campinas',       'sp'),
	('c5', 'u4', '30000', 'belo horizonte', 'MG');

INSERT INTO olist_orders VALUES
	('o1', 'c1', 'delivered', '2017-10-02 10:56:33'),
	('o2', 'c2', 'delivered', '2018-07-24 20:41:37'),
	('o3', 'c3', 'shipped',   '2018-08-08 08:38:49'),
	('o4', 'c1', 'canceled',  '2016-09-04 21:15:19');

INSERT INTO olist_products VALUES
	('p1', 'perfumaria', 4),
	('p2', 'automotivo', 1),
	('p3', NULL,         NULL);

INSERT INTO olist_order_items VALUES
	('o1', 1, 'p1', 's1', '2017-10-06 11:07:15', 29.99,  8.72),
	('o1', 2, 'p2', 's1', '2017-10-06 11:07:15', 118.70, 22.76),
	('o1', 3, 'pX', 's2', '2017-10-06 11:07:15', 10.00,  1.00),
	('o2', 1, 'p1', 's1', '2018-07-30 03:24:27', 29.99,  8.72),
	('o3', 1, 'p3', 's3', '2018-08-13 08:55:23', 159.90, 19.22);
`

// NewParana writes the shopper dataset fixture and returns its target.
func NewParana(t testing.TB) store.Target {
	t.Helper()
	return build(t, "parana", paranaSchema+paranaSeed)
}

// NewOlist writes the Olist dataset fixture and returns its target.
func NewOlist(t testing.TB) store.Target {
	t.Helper()
	return build(t, "olist", olistSchema+olistSeed)
}

// Missing returns a target whose file does not exist.
func Missing(t testing.TB, name string) store.Target {
	t.Helper()
	return store.Target{
		Name:   name,
		Driver: store.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), name+".db"),
	}
}

// Exec runs script against an existing fixture, for tests that need rows
// the shared seed does not carry.
func Exec(t testing.TB, target store.Target, script string) {
	t.Helper()
	db, err := sql.Open(store.DriverSQLite, target.DSN)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(script)
	require.NoError(t, err, "exec on %s fixture", target.Name)
}

func build(t testing.TB, name, script string) store.Target {
	t.Helper()
	path := filepath.Join(t.TempDir(), name+".db")
	db, err := sql.Open(store.DriverSQLite, path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(script)
	require.NoError(t, err, "seed %s fixture", name)

	return store.Target{Name: name, Driver: store.DriverSQLite, DSN: path}
}
