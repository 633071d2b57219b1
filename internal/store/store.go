// Package store opens short-lived, read-only connections to the dataset
// stores. Every unit of work runs inside Source.With, which acquires a
// connection and releases it before returning.
package store

import (
	"context"
	"database/sql"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite = "sqlite"
	DriverPgx    = "pgx"
)

// ErrNotFound is returned when the backing database file does not exist.
var ErrNotFound = errors.New("database not found")

// Dialect selects placeholder style and catalog queries.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// Target names one dataset store. For sqlite, DSN is a file path.
type Target struct {
	Name   string
	Driver string
	DSN    string
}

func (t Target) dialect() Dialect {
	if t.Driver == DriverPgx {
		return Postgres
	}
	return SQLite
}

type Source struct {
	target Target
}

func New(t Target) *Source {
	if t.Driver == "" {
		t.Driver = DriverSQLite
	}
	return &Source{target: t}
}

func (s *Source) Target() Target { return s.target }

// Check reports whether the store can be opened at all. File-backed targets
// must exist; a pgx target must carry a DSN, which is validated on first use.
func (s *Source) Check() error {
	if s.target.dialect() != SQLite {
		if strings.TrimSpace(s.target.DSN) == "" {
			return errors.WithHintf(
				errors.Wrapf(ErrNotFound, "%s database DSN is empty", s.target.Name),
				"set %s_DB_DSN when using the %s driver", strings.ToUpper(s.target.Name), DriverPgx)
		}
		return nil
	}
	path := s.target.DSN
	abs, absErr := filepath.Abs(path)
	if absErr != nil {
		abs = path
	}
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.WithHintf(
				errors.Wrapf(ErrNotFound, "%s database at %s", s.target.Name, abs),
				"set %s_DB_PATH to the %s database file", strings.ToUpper(s.target.Name), s.target.Name)
		}
		return errors.Wrapf(err, "stat %s database", s.target.Name)
	}
	if fi.IsDir() {
		return errors.WithHintf(
			errors.Wrapf(ErrNotFound, "%s database at %s is a directory", s.target.Name, abs),
			"point the %s dataset at a database file", s.target.Name)
	}
	return nil
}

// With opens a connection, hands it to fn and closes it on every exit path.
func (s *Source) With(ctx context.Context, fn func(*Conn) error) (err error) {
	if err := s.Check(); err != nil {
		return err
	}
	db, err := sql.Open(s.target.Driver, s.dsn())
	if err != nil {
		return errors.Wrapf(err, "open %s database", s.target.Name)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s database", s.target.Name)
		}
	}()
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		return errors.Wrapf(err, "connect %s database", s.target.Name)
	}
	return fn(&Conn{db: db, dialect: s.target.dialect()})
}

// dsn renders a sqlite path as a file: URI so that ? and # in the path
// are not read as a query or fragment.
func (s *Source) dsn() string {
	if s.target.dialect() != SQLite {
		return s.target.DSN
	}
	segs := strings.Split(filepath.ToSlash(s.target.DSN), "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return "file:" + strings.Join(segs, "/") + "?_pragma=query_only(1)"
}

// Conn is a connection scoped to a single Source.With call.
type Conn struct {
	db      *sql.DB
	dialect Dialect
}

func (c *Conn) Dialect() Dialect { return c.dialect }

func (c *Conn) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.db.QueryContext(ctx, c.rebind(query), args...)
}

func (c *Conn) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return c.db.QueryRowContext(ctx, c.rebind(query), args...)
}

// rebind rewrites ? placeholders to $n for postgres.
func (c *Conn) rebind(query string) string {
	if c.dialect != Postgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE wildcards so the value matches literally when
// used with ESCAPE '\'.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
