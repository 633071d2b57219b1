package shopper_test

import (
	"context"
	"os"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/parana-browser/internal/shopper"
	"github.com/MikeMC777/parana-browser/internal/store"
)

// pgRepo targets a PostgreSQL copy of the Parana dataset named by
// PARANA_DB_DSN.
func pgRepo(t *testing.T) *shopper.SQLRepo {
	t.Helper()
	dsn := os.Getenv("PARANA_DB_DSN")
	if dsn == "" {
		t.Skip("PARANA_DB_DSN not set")
	}
	return shopper.NewSQLRepo(store.New(store.Target{Name: "parana", Driver: store.DriverPgx, DSN: dsn}))
}

func TestPostgres_Catalog(t *testing.T) {
	repo := pgRepo(t)
	ctx := context.Background()

	tables, err := repo.ListTables(ctx)
	require.NoError(t, err)
	require.Contains(t, tables, "shoppers")
	require.True(t, sort.StringsAreSorted(tables))

	cols, err := repo.DescribeTable(ctx, "shoppers")
	require.NoError(t, err)
	require.NotEmpty(t, cols)
	require.Equal(t, 0, cols[0].Position)
	require.Equal(t, "shopper_id", cols[0].Name)
	require.True(t, cols[0].PrimaryKey)

	cols, err = repo.DescribeTable(ctx, "no_such_table")
	require.NoError(t, err)
	require.NotNil(t, cols)
	require.Empty(t, cols)
}

func TestPostgres_Queries(t *testing.T) {
	repo := pgRepo(t)
	ctx := context.Background()

	list, err := repo.List(ctx, 5)
	require.NoError(t, err)
	require.LessOrEqual(t, len(list), 5)

	if len(list) > 0 {
		got, found, err := repo.GetByID(ctx, list[0].ID)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, list[0].ID, got.ID)
	}

	// three repeated placeholders plus the limit
	hits, err := repo.Search(ctx, "a", 5)
	require.NoError(t, err)
	for _, sh := range hits {
		require.True(t, containsFold(sh.FirstName, "a") || containsFold(sh.Surname, "a") || containsFold(sh.Email, "a"))
	}
}
