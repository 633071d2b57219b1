package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRebind(t *testing.T) {
	cases := []struct {
		dialect Dialect
		in      string
		want    string
	}{
		{Postgres, `SELECT 1`, `SELECT 1`},
		{Postgres, `SELECT * FROM t WHERE id = ?`, `SELECT * FROM t WHERE id = $1`},
		{Postgres, `WHERE a = ? OR b = ? LIMIT ?`, `WHERE a = $1 OR b = $2 LIMIT $3`},
		{Postgres, `LIKE '%' || LOWER(?) || '%' ESCAPE '\'`, `LIKE '%' || LOWER($1) || '%' ESCAPE '\'`},
		{SQLite, `WHERE a = ? OR b = ?`, `WHERE a = ? OR b = ?`},
	}
	for _, tc := range cases {
		c := &Conn{dialect: tc.dialect}
		require.Equal(t, tc.want, c.rebind(tc.in), tc.in)
	}

	many := `?,?,?,?,?,?,?,?,?,?,?`
	require.Equal(t, `$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11`, (&Conn{dialect: Postgres}).rebind(many))
}

func TestSourceDSN(t *testing.T) {
	cases := []struct {
		target Target
		want   string
	}{
		{Target{DSN: "/data/parana.db"}, "file:/data/parana.db?_pragma=query_only(1)"},
		{Target{DSN: "data/olist.db"}, "file:data/olist.db?_pragma=query_only(1)"},
		{Target{DSN: "/tmp/we?ird#dir/a b%.db"}, "file:/tmp/we%3Fird%23dir/a%20b%25.db?_pragma=query_only(1)"},
		{Target{Driver: DriverPgx, DSN: "postgres://u@h/db?sslmode=disable"}, "postgres://u@h/db?sslmode=disable"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, New(tc.target).dsn(), tc.target.DSN)
	}
}
