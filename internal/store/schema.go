package store

// SchemaVersion is the target schema version. Bump it whenever a table or
// column is added, together with a new entry in the migrations list.
const SchemaVersion = 1

// createAssetsTable stores both listed (stocks, crypto, gold) and custom assets.
const createAssetsTable = `
CREATE TABLE IF NOT EXISTS assets (
    id TEXT PRIMARY KEY NOT NULL,
    type TEXT NOT NULL CHECK (type IN ('listed', 'custom')),
    ticker TEXT,
    name TEXT NOT NULL,
    quantity REAL NOT NULL DEFAULT 0,
    purchase_price REAL,
    current_price REAL NOT NULL DEFAULT 0,
    asset_category TEXT NOT NULL,
    maturity_date TEXT,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);`

// createPriceCacheTable caches fetched prices so the dashboard can render
// without waiting on a price source.
const createPriceCacheTable = `
CREATE TABLE IF NOT EXISTS price_cache (
    ticker TEXT PRIMARY KEY NOT NULL,
    price REAL NOT NULL,
    change_amount REAL,
    change_percentage REAL,
    fetched_at DATETIME NOT NULL
);`

// createUserPreferencesTable holds app settings and user choices as key/value pairs.
const createUserPreferencesTable = `
CREATE TABLE IF NOT EXISTS user_preferences (
    key TEXT PRIMARY KEY NOT NULL,
    value TEXT NOT NULL
);`

// createMigrationsTable tracks applied migrations. Append-only; rows are never
// updated or deleted.
const createMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    version INTEGER PRIMARY KEY NOT NULL,
    applied_at DATETIME NOT NULL DEFAULT (datetime('now'))
);`

// allTables lists every table-creation statement in creation order.
var allTables = []string{
	createMigrationsTable,
	createAssetsTable,
	createPriceCacheTable,
	createUserPreferencesTable,
}

// dataTables lists the tables cleared by Reset. Migration history survives a reset.
var dataTables = []string{"assets", "price_cache", "user_preferences"}
