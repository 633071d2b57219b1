package shopper

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"

	"github.com/MikeMC777/parana-browser/internal/store"
)

const (
	sqliteTablesQuery = `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite\_%' ESCAPE '\'
		ORDER BY name`

	sqliteColumnsQuery = `
		SELECT cid, name, type, "notnull", dflt_value, pk
		FROM pragma_table_info(?)
		ORDER BY cid`

	pgTablesQuery = `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
		ORDER BY table_name`

	pgColumnsQuery = `
		SELECT
			c.ordinal_position - 1,
			c.column_name,
			c.data_type,
			CASE WHEN c.is_nullable = 'NO' THEN 1 ELSE 0 END,
			c.column_default,
			CASE WHEN EXISTS (
				SELECT 1
				FROM information_schema.table_constraints tc
				JOIN information_schema.key_column_usage k
					ON k.constraint_name = tc.constraint_name
					AND k.table_schema = tc.table_schema
				WHERE tc.constraint_type = 'PRIMARY KEY'
					AND tc.table_schema = c.table_schema
					AND tc.table_name = c.table_name
					AND k.column_name = c.column_name
			) THEN 1 ELSE 0 END
		FROM information_schema.columns c
		WHERE c.table_schema = current_schema() AND c.table_name = ?
		ORDER BY c.ordinal_position`
)

// ListTables returns user tables sorted by name, without engine-internal ones.
func (r *SQLRepo) ListTables(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	out := []string{}
	err := r.src.With(ctx, func(c *store.Conn) error {
		q := sqliteTablesQuery
		if c.Dialect() == store.Postgres {
			q = pgTablesQuery
		}
		rows, err := c.Query(ctx, q)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return err
			}
			out = append(out, name)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, errors.Wrap(err, "list tables")
	}
	return out, nil
}

// DescribeTable returns the columns of name. An unknown table yields an
// empty slice, not an error.
func (r *SQLRepo) DescribeTable(ctx context.Context, name string) ([]Column, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	out := []Column{}
	err := r.src.With(ctx, func(c *store.Conn) error {
		q := sqliteColumnsQuery
		if c.Dialect() == store.Postgres {
			q = pgColumnsQuery
		}
		rows, err := c.Query(ctx, q, name)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var (
				col     Column
				notNull int
				pk      int
				dflt    sql.NullString
			)
			if err := rows.Scan(&col.Position, &col.Name, &col.Type, &notNull, &dflt, &pk); err != nil {
				return err
			}
			col.NotNull = notNull != 0
			col.PrimaryKey = pk > 0
			if dflt.Valid {
				v := dflt.String
				col.Default = &v
			}
			out = append(out, col)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, errors.Wrapf(err, "describe table %q", name)
	}
	return out, nil
}
