package iocache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/huangsam/tracktides/internal/contract"
	"github.com/huangsam/tracktides/schema"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// entryColumns is the insert column order, without the generated id.
var entryColumns = []string{
	"entry_date", "weight", "calories", "protein", "side_effects", "notes",
	"has_shot", "shot_date", "shot_medication", "shot_dosage", "shot_site", "shot_pain", "shot_notes",
}

// EntryStoreImpl handles durable storage of day entries using various database backends.
type EntryStoreImpl struct {
	db         *sql.DB
	tableName  string
	backend    schema.DatabaseBackend
	driverName string
	connStr    string
}

var _ contract.EntryStore = &EntryStoreImpl{} // Compile-time check

// NewEntryStore initializes and returns a new EntryStore based on the backend type.
func NewEntryStore(tableName string, backend schema.DatabaseBackend, connStr string) (*EntryStoreImpl, error) {
	if err := validateTableName(tableName); err != nil {
		return nil, err
	}

	driverName, err := driverFor(backend)
	if err != nil {
		return nil, err
	}

	dsn := connStr
	if backend == schema.SQLiteBackend && dsn == "" {
		dsn = contract.GetDBFilePath()
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		switch backend {
		case schema.MySQLBackend:
			return nil, fmt.Errorf("failed to connect to MySQL store: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		case schema.PostgreSQLBackend:
			return nil, fmt.Errorf("failed to connect to PostgreSQL store: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		default:
			return nil, fmt.Errorf("failed to initialize SQLite store at %q: %w. Ensure the directory is writable", dsn, err)
		}
	}
	if backend == schema.SQLiteBackend {
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	query := getCreateTableQuery(tableName, backend)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &EntryStoreImpl{
		db:         db,
		tableName:  tableName,
		backend:    backend,
		driverName: driverName,
		connStr:    dsn,
	}, nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
// Dates are unix seconds so every backend compares them the same way.
// They read back as schema.StoredTime values.
func getCreateTableQuery(tableName string, backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(tableName, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				entry_date BIGINT NOT NULL,
				weight DOUBLE NULL,
				calories INT NULL,
				protein INT NULL,
				side_effects TEXT NOT NULL,
				notes TEXT NOT NULL,
				has_shot TINYINT NOT NULL DEFAULT 0,
				shot_date BIGINT NULL,
				shot_medication VARCHAR(255) NOT NULL DEFAULT '',
				shot_dosage VARCHAR(64) NOT NULL DEFAULT '',
				shot_site VARCHAR(64) NOT NULL DEFAULT '',
				shot_pain INT NOT NULL DEFAULT 0,
				shot_notes TEXT NOT NULL
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGSERIAL PRIMARY KEY,
				entry_date BIGINT NOT NULL,
				weight DOUBLE PRECISION NULL,
				calories INTEGER NULL,
				protein INTEGER NULL,
				side_effects TEXT NOT NULL DEFAULT '[]',
				notes TEXT NOT NULL DEFAULT '',
				has_shot SMALLINT NOT NULL DEFAULT 0,
				shot_date BIGINT NULL,
				shot_medication TEXT NOT NULL DEFAULT '',
				shot_dosage TEXT NOT NULL DEFAULT '',
				shot_site TEXT NOT NULL DEFAULT '',
				shot_pain INTEGER NOT NULL DEFAULT 0,
				shot_notes TEXT NOT NULL DEFAULT ''
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				entry_date INTEGER NOT NULL,
				weight REAL NULL,
				calories INTEGER NULL,
				protein INTEGER NULL,
				side_effects TEXT NOT NULL DEFAULT '[]',
				notes TEXT NOT NULL DEFAULT '',
				has_shot INTEGER NOT NULL DEFAULT 0,
				shot_date INTEGER NULL,
				shot_medication TEXT NOT NULL DEFAULT '',
				shot_dosage TEXT NOT NULL DEFAULT '',
				shot_site TEXT NOT NULL DEFAULT '',
				shot_pain INTEGER NOT NULL DEFAULT 0,
				shot_notes TEXT NOT NULL DEFAULT ''
			);
		`, quotedTableName)
	}
}

// List returns every entry, oldest first.
func (es *EntryStoreImpl) List(ctx context.Context) ([]schema.DayEntry, error) {
	query := fmt.Sprintf(`SELECT id, %s FROM %s ORDER BY entry_date ASC, id ASC`,
		strings.Join(entryColumns, ", "), quoteTableName(es.tableName, es.backend))
	rows, err := es.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []schema.DayEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	return entries, nil
}

// Add appends one entry and returns its assigned ID.
func (es *EntryStoreImpl) Add(ctx context.Context, entry schema.DayEntry) (int64, error) {
	return es.insert(ctx, es.db, entry)
}

// AddMany appends entries in a single transaction.
func (es *EntryStoreImpl) AddMany(ctx context.Context, entries []schema.DayEntry) error {
	tx, err := es.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	for _, entry := range entries {
		if _, err := es.insert(ctx, tx, entry); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit entries: %w", err)
	}
	return nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (es *EntryStoreImpl) insert(ctx context.Context, ex execer, entry schema.DayEntry) (int64, error) {
	args, err := entryArgs(entry)
	if err != nil {
		return 0, err
	}
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		quoteTableName(es.tableName, es.backend),
		strings.Join(entryColumns, ", "),
		placeholders(es.backend, 1, len(entryColumns)))

	if es.backend == schema.PostgreSQLBackend {
		var id int64
		if err := ex.QueryRowContext(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to insert entry: %w", err)
		}
		return id, nil
	}

	res, err := ex.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert entry: %w", err)
	}
	return res.LastInsertId()
}

// Clear removes every entry.
func (es *EntryStoreImpl) Clear(ctx context.Context) error {
	query := fmt.Sprintf("DELETE FROM %s", quoteTableName(es.tableName, es.backend))
	if _, err := es.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}
	return nil
}

// Close closes the underlying DB connection.
func (es *EntryStoreImpl) Close() error {
	if es.db != nil {
		return es.db.Close()
	}
	return nil
}

// GetStatus returns status information about the entry store.
func (es *EntryStoreImpl) GetStatus(ctx context.Context) (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(es.backend),
		Connected: es.db != nil,
	}
	if es.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(es.tableName, es.backend)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName)
	if err := es.db.QueryRowContext(ctx, countQuery).Scan(&status.TotalEntries); err != nil {
		return status, fmt.Errorf("failed to get total entries: %w", err)
	}
	if status.TotalEntries == 0 {
		return status, nil
	}

	var oldestTs, newestTs int64
	rangeQuery := fmt.Sprintf("SELECT MIN(entry_date), MAX(entry_date) FROM %s", quotedTableName)
	if err := es.db.QueryRowContext(ctx, rangeQuery).Scan(&oldestTs, &newestTs); err != nil {
		return status, fmt.Errorf("failed to get entry date range: %w", err)
	}
	status.OldestEntry = time.Unix(oldestTs, 0).UTC()
	status.NewestEntry = time.Unix(newestTs, 0).UTC()

	// Rough estimate used whenever the backend size query fails
	fallbackSize := int64(status.TotalEntries) * 256

	switch es.backend {
	case schema.SQLiteBackend:
		sizeQuery := "SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()"
		if err := es.db.QueryRowContext(ctx, sizeQuery).Scan(&status.TableSizeBytes); err != nil {
			status.TableSizeBytes = 0
		}
	case schema.MySQLBackend:
		status.TableSizeBytes = fallbackSize
		cfg, err := mysql.ParseDSN(es.connStr)
		if err != nil || cfg.DBName == "" {
			break
		}
		sizeQuery := "SELECT data_length + index_length FROM information_schema.tables WHERE table_schema = ? AND table_name = ?"
		if err := es.db.QueryRowContext(ctx, sizeQuery, cfg.DBName, es.tableName).Scan(&status.TableSizeBytes); err != nil {
			status.TableSizeBytes = fallbackSize
		}
	case schema.PostgreSQLBackend:
		sizeQuery := "SELECT pg_total_relation_size($1)"
		if err := es.db.QueryRowContext(ctx, sizeQuery, es.tableName).Scan(&status.TableSizeBytes); err != nil {
			status.TableSizeBytes = fallbackSize
		}
	}

	return status, nil
}

// entryArgs flattens an entry into column values in entryColumns order.
func entryArgs(entry schema.DayEntry) ([]any, error) {
	sideEffects := entry.SideEffects
	if sideEffects == nil {
		sideEffects = []string{}
	}
	effectsJSON, err := json.Marshal(sideEffects)
	if err != nil {
		return nil, fmt.Errorf("failed to encode side effects: %w", err)
	}

	var weight, calories, protein, shotDate any
	if entry.Weight != nil {
		weight = *entry.Weight
	}
	if entry.Calories != nil {
		calories = int64(*entry.Calories)
	}
	if entry.Protein != nil {
		protein = int64(*entry.Protein)
	}

	hasShot := 0
	var medication, dosage, site, shotNotes string
	var pain int64
	if s := entry.Shot; s != nil {
		hasShot = 1
		if !s.Date.IsZero() {
			shotDate = s.Date.Unix()
		}
		medication, dosage, site, shotNotes = s.Medication, s.Dosage, s.InjectionSite, s.Notes
		pain = int64(s.PainLevel)
	}

	return []any{
		entry.Date.Unix(), weight, calories, protein, string(effectsJSON), entry.Notes,
		hasShot, shotDate, medication, dosage, site, pain, shotNotes,
	}, nil
}

// scanEntry reads one row produced by List.
func scanEntry(rows *sql.Rows) (schema.DayEntry, error) {
	var (
		entry                          schema.DayEntry
		dateTs                         int64
		weight                         sql.NullFloat64
		calories, protein, shotDate    sql.NullInt64
		effectsJSON, notes             string
		hasShot, pain                  int64
		medication, dosage, site, memo string
	)
	err := rows.Scan(&entry.ID, &dateTs, &weight, &calories, &protein, &effectsJSON, &notes,
		&hasShot, &shotDate, &medication, &dosage, &site, &pain, &memo)
	if err != nil {
		return entry, fmt.Errorf("failed to scan entry: %w", err)
	}

	entry.Date = time.Unix(dateTs, 0).UTC()
	entry.Notes = notes
	if weight.Valid {
		entry.Weight = schema.Float(weight.Float64)
	}
	if calories.Valid {
		entry.Calories = schema.Int(int(calories.Int64))
	}
	if protein.Valid {
		entry.Protein = schema.Int(int(protein.Int64))
	}
	if effectsJSON != "" {
		if err := json.Unmarshal([]byte(effectsJSON), &entry.SideEffects); err != nil {
			return entry, fmt.Errorf("failed to decode side effects for entry %d: %w", entry.ID, err)
		}
		if len(entry.SideEffects) == 0 {
			entry.SideEffects = nil
		}
	}
	if hasShot != 0 {
		shot := &schema.Shot{
			Date:          entry.Date,
			Medication:    medication,
			Dosage:        dosage,
			InjectionSite: site,
			PainLevel:     int(pain),
			Notes:         memo,
		}
		if shotDate.Valid {
			shot.Date = time.Unix(shotDate.Int64, 0).UTC()
		}
		entry.Shot = shot
	}
	return entry, nil
}
