package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Order is an immutable purchase receipt. Accounts are stored as a single
// serialized column, see EncodeAccounts.
type Order struct {
	ID          int       `db:"id"`
	UserID      int       `db:"user_id"`
	ProductName string    `db:"product_name"`
	Accounts    []Account `db:"accounts_data"`
	CreatedAt   time.Time `db:"created_at"`
}

// Account is a generated credential pair delivered with an order.
type Account struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
