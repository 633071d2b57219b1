// Package shopper reads shoppers and schema metadata from the Parana store.
package shopper

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/MikeMC777/parana-browser/internal/store"
)

const (
	DefaultLimit = 20
	queryTimeout = 5 * time.Second
)

type Repository interface {
	List(ctx context.Context, limit int) ([]Shopper, error)
	GetByID(ctx context.Context, id int64) (Shopper, bool, error)
	Search(ctx context.Context, keyword string, limit int) ([]Shopper, error)
	ListTables(ctx context.Context) ([]string, error)
	DescribeTable(ctx context.Context, name string) ([]Column, error)
}

type SQLRepo struct{ src *store.Source }

func NewSQLRepo(src *store.Source) *SQLRepo { return &SQLRepo{src: src} }

const shopperColumns = `
	shopper_id,
	COALESCE(shopper_account_ref, ''),
	shopper_first_name,
	shopper_surname,
	shopper_email_address,
	date_of_birth,
	COALESCE(gender, ''),
	date_joined`

func normLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

func (r *SQLRepo) List(ctx context.Context, limit int) ([]Shopper, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var out []Shopper
	err := r.src.With(ctx, func(c *store.Conn) error {
		rows, err := c.Query(ctx, `
		SELECT`+shopperColumns+`
		FROM shoppers
		ORDER BY date_joined DESC
		LIMIT ?
	`, normLimit(limit))
		if err != nil {
			return err
		}
		out, err = scanShoppers(rows)
		return err
	})
	return out, errors.Wrap(err, "list shoppers")
}

// GetByID reports found=false when no shopper has the id.
func (r *SQLRepo) GetByID(ctx context.Context, id int64) (Shopper, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var (
		s     Shopper
		found bool
	)
	err := r.src.With(ctx, func(c *store.Conn) error {
		row := c.QueryRow(ctx, `
		SELECT`+shopperColumns+`
		FROM shoppers
		WHERE shopper_id = ?
	`, id)
		err := row.Scan(&s.ID, &s.AccountRef, &s.FirstName, &s.Surname, &s.Email, &s.DateOfBirth, &s.Gender, &s.DateJoined)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return Shopper{}, false, errors.Wrapf(err, "get shopper %d", id)
	}
	return s, found, nil
}

// Search matches keyword case-insensitively as a substring of the first
// name, surname or email address.
func (r *SQLRepo) Search(ctx context.Context, keyword string, limit int) ([]Shopper, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	pattern := store.EscapeLike(keyword)
	var out []Shopper
	err := r.src.With(ctx, func(c *store.Conn) error {
		rows, err := c.Query(ctx, `
		SELECT`+shopperColumns+`
		FROM shoppers
		WHERE
			LOWER(shopper_first_name) LIKE '%' || LOWER(?) || '%' ESCAPE '\'
			OR LOWER(shopper_surname) LIKE '%' || LOWER(?) || '%' ESCAPE '\'
			OR LOWER(shopper_email_address) LIKE '%' || LOWER(?) || '%' ESCAPE '\'
		ORDER BY date_joined DESC
		LIMIT ?
	`, pattern, pattern, pattern, normLimit(limit))
		if err != nil {
			return err
		}
		out, err = scanShoppers(rows)
		return err
	})
	return out, errors.Wrapf(err, "search shoppers %q", keyword)
}

func scanShoppers(rows *sql.Rows) ([]Shopper, error) {
	defer rows.Close()
	out := []Shopper{}
	for rows.Next() {
		var s Shopper
		if err := rows.Scan(&s.ID, &s.AccountRef, &s.FirstName, &s.Surname, &s.Email, &s.DateOfBirth, &s.Gender, &s.DateJoined); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
