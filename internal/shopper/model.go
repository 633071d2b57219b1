package shopper

import "github.com/MikeMC777/parana-browser/internal/store"

type Shopper struct {
	ID          int64      `json:"shopper_id"`
	AccountRef  string     `json:"shopper_account_ref,omitempty"`
	FirstName   string     `json:"shopper_first_name"`
	Surname     string     `json:"shopper_surname"`
	Email       string     `json:"shopper_email_address"`
	DateOfBirth store.Date `json:"date_of_birth"`
	Gender      string     `json:"gender,omitempty"`
	DateJoined  store.Date `json:"date_joined"`
}

// FullName joins first name and surname.
func (s Shopper) FullName() string {
	switch {
	case s.FirstName == "":
		return s.Surname
	case s.Surname == "":
		return s.FirstName
	}
	return s.FirstName + " " + s.Surname
}

// Column describes one column of a table in definition order.
type Column struct {
	Position   int     `json:"cid"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	NotNull    bool    `json:"notnull"`
	Default    *string `json:"dflt_value"`
	PrimaryKey bool    `json:"pk"`
}
