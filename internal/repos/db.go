package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

// OpenDB opens the shared process-wide handle. Callers own the returned DB
// for the lifetime of the process and close it once on shutdown; repos never
// open or close connections themselves.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	// Seed demo catalog and users (idempotent; safe to run every start)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

// EnsureSchema is exported so tests can bootstrap in-memory databases with
// the exact production shape.
func EnsureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Gadget listings
CREATE TABLE IF NOT EXISTS gadgets(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL CHECK (price >= 0),
  category TEXT NOT NULL,
  category_label TEXT NOT NULL DEFAULT '',
  lender_email TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_gadgets_title      ON gadgets(LOWER(title));
CREATE INDEX IF NOT EXISTS idx_gadgets_category   ON gadgets(category);
CREATE INDEX IF NOT EXISTS idx_gadgets_lender     ON gadgets(lender_email);
CREATE INDEX IF NOT EXISTS idx_gadgets_created_at ON gadgets(created_at);

-- Cart line items. gadget_id is a weak reference on purpose: listings may
-- be deleted by their lender while still sitting in someone's cart.
CREATE TABLE IF NOT EXISTS cart_items(
  id TEXT PRIMARY KEY,
  user_email TEXT NOT NULL,
  gadget_id TEXT NOT NULL,
  title TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL DEFAULT 0,
  days INTEGER NOT NULL DEFAULT 1 CHECK (days >= 1),
  note TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_cart_items_user ON cart_items(user_email);

-- Orders
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  user_email TEXT NOT NULL,
  user_name TEXT NOT NULL DEFAULT '',
  total NUMERIC NOT NULL DEFAULT 0,
  status TEXT NOT NULL DEFAULT 'PAID',
  transaction_id TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_user       ON orders(user_email);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);

-- Which cart items a payment-originated order settled.
CREATE TABLE IF NOT EXISTS order_cart_items(
  order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  cart_item_id TEXT NOT NULL,
  PRIMARY KEY (order_id, cart_item_id)
);

-- Users (created by the external signup flow; listed and counted here)
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  phone TEXT NOT NULL DEFAULT '',
  password_hash TEXT NOT NULL DEFAULT '',
  role TEXT NOT NULL CHECK (role IN ('borrower','lender','admin')),
  status TEXT NOT NULL CHECK (status IN ('pending','approved','blocked')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));
CREATE INDEX IF NOT EXISTS idx_users_role   ON users(role);
CREATE INDEX IF NOT EXISTS idx_users_status ON users(status);

-- Coupons. Code lookup is case-sensitive (default BINARY collation).
CREATE TABLE IF NOT EXISTS coupons(
  id TEXT PRIMARY KEY,
  code TEXT NOT NULL UNIQUE,
  discount NUMERIC NOT NULL DEFAULT 0,
  description TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM gadgets`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo gadgets/coupons")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO gadgets(id,title,description,price,category,category_label,lender_email) VALUES
	  ('gdt-camera-001','Canon EOS R6','Full-frame mirrorless body with 24-105 kit lens',45.00,'camera','Cameras','lender@grentify.test'),
	  ('gdt-drone-001','DJI Mini 3 Pro','Sub-250g drone, three batteries included',38.50,'drone','Drones','lender@grentify.test'),
	  ('gdt-console-001','PlayStation 5','Disc edition, two controllers',22.00,'console','Gaming Consoles','lender@grentify.test'),
	  ('gdt-lens-001','Sigma 35mm f/1.4','Art series prime, EF mount',15.00,'camera','Cameras','lender@grentify.test')`)

	tx.MustExec(`INSERT INTO coupons(id,code,discount,description) VALUES
	  ('cpn-001','SAVE10',10,'10 percent off first rental'),
	  ('cpn-002','NEWYEAR24',15,'Seasonal promotion')`)

	return tx.Commit()
}

// seedUsers ensures one user per role exists (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Name, Email, Phone, Role, Status, Hash string
	}
	mk := func(id, name, email, role, status, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Name: name, Email: email, Phone: "+10000000000", Role: role, Status: status, Hash: string(h)}
	}

	users := []u{
		mk("u-borrower", "Demo Borrower", "borrower@grentify.test", "borrower", "approved", "Passw0rd!"),
		mk("u-lender", "Demo Lender", "lender@grentify.test", "lender", "approved", "Passw0rd!"),
		mk("u-admin", "Demo Admin", "admin@grentify.test", "admin", "approved", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,name,email,phone,password_hash,role,status)
			VALUES(?,?,?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Name, x.Email, x.Phone, x.Hash, x.Role, x.Status); err != nil {
			return err
		}
	}

	return tx.Commit()
}
