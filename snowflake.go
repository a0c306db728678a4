package snowbase

import (
	"context"
	"database/sql"
	"time"

	sf "github.com/snowflakedb/gosnowflake"
)

// ConnectionParams are the caller-supplied Snowflake credentials.
// Role and Warehouse are optional; when empty the account defaults
// apply.
type ConnectionParams struct {
	Account   string
	Username  string
	Password  string
	Role      string
	Warehouse string
}

// openFunc opens a database handle for a DSN. Replaced in tests.
type openFunc func(dsn string) (*sql.DB, error)

// Connector builds and opens Snowflake connections.
type Connector struct {
	loginTimeout time.Duration
	open         openFunc
}

// NewConnector constructs a Connector backed by the gosnowflake driver.
func NewConnector(loginTimeout time.Duration) *Connector {
	return &Connector{
		loginTimeout: loginTimeout,
		open: func(dsn string) (*sql.DB, error) {
			return sql.Open("snowflake", dsn)
		},
	}
}

// BuildConfig assembles the driver config. The three required fields
// are always present; Role and Warehouse are set only when non-empty,
// so an empty override falls back to the account default rather than
// being passed through as "".
func (c *Connector) BuildConfig(p ConnectionParams) *sf.Config {
	cfg := &sf.Config{
		Account:  p.Account,
		User:     p.Username,
		Password: p.Password,
	}
	if p.Role != "" {
		cfg.Role = p.Role
	}
	if p.Warehouse != "" {
		cfg.Warehouse = p.Warehouse
	}
	if c.loginTimeout > 0 {
		cfg.LoginTimeout = c.loginTimeout
	}
	return cfg
}

// Connect opens a handle for the given credentials and verifies it
// with a ping. The pool is capped at one connection so sequential
// statements within a request share a single Snowflake session.
func (c *Connector) Connect(ctx context.Context, p ConnectionParams) (*Conn, error) {
	dsn, err := sf.DSN(c.BuildConfig(p))
	if err != nil {
		return nil, err
	}
	db, err := c.open(dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Conn{db: db}, nil
}

// Conn is one authenticated Snowflake session. It is owned by the
// request that created it and must be closed when the request ends.
type Conn struct {
	db *sql.DB
}

// ColumnInfo describes one result-set column.
type ColumnInfo struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// StatementInfo is the statement metadata returned alongside a result
// set.
type StatementInfo struct {
	SQLText string       `json:"sqlText"`
	Columns []ColumnInfo `json:"columns"`
}

// QueryResult bundles statement metadata with the materialized rows.
type QueryResult struct {
	Statement StatementInfo    `json:"statement"`
	Rows      []map[string]any `json:"rows"`
}

// Execute runs sqlText and materializes the full result set into
// JSON-friendly maps. No row cap is applied here; a LIMIT clause, when
// wanted, is part of the SQL text.
func (c *Conn) Execute(ctx context.Context, sqlText string) (*QueryResult, error) {
	rows, err := c.db.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	info := StatementInfo{SQLText: sqlText, Columns: make([]ColumnInfo, 0, len(cols))}
	if types, typesErr := rows.ColumnTypes(); typesErr == nil {
		for _, t := range types {
			info.Columns = append(info.Columns, ColumnInfo{Name: t.Name(), Type: t.DatabaseTypeName()})
		}
	} else {
		for _, name := range cols {
			info.Columns = append(info.Columns, ColumnInfo{Name: name})
		}
	}

	out := make([]map[string]any, 0, 32)
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		m := make(map[string]any, len(cols))
		for i, col := range cols {
			m[col] = normalizeValue(vals[i])
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &QueryResult{Statement: info, Rows: out}, nil
}

// SessionID returns the driver-assigned identifier for this session.
func (c *Conn) SessionID(ctx context.Context) (string, error) {
	var id string
	if err := c.db.QueryRowContext(ctx, "SELECT CURRENT_SESSION()").Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

// Close releases the session.
func (c *Conn) Close() error {
	return c.db.Close()
}

// normalizeValue converts driver byte slices to strings so row maps
// encode as text rather than base64.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
