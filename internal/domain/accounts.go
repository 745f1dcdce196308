package domain

import (
	"encoding/json"
	"fmt"
)

// EncodeAccounts serializes accounts for the accounts_data column.
// A nil list is stored as an empty array so the column always holds a list.
func EncodeAccounts(accounts []Account) (string, error) {
	if accounts == nil {
		accounts = []Account{}
	}
	data, err := json.Marshal(accounts)
	if err != nil {
		return "", fmt.Errorf("encode accounts: %w", err)
	}
	return string(data), nil
}

// DecodeAccounts is the inverse of EncodeAccounts.
func DecodeAccounts(data string) ([]Account, error) {
	accounts := []Account{}
	if err := json.Unmarshal([]byte(data), &accounts); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}
	if accounts == nil {
		return nil, fmt.Errorf("decode accounts: %q is not a list", data)
	}
	return accounts, nil
}
