// Package accountgen fabricates mock game accounts for purchases.
package accountgen

import (
	"github.com/GlebRadaev/g4market/internal/domain"
	"github.com/samber/lo"
)

const (
	UsernamePrefix = "val_"
	UsernameLength = 8
	PasswordLength = 12
)

var (
	UsernameCharset = append(append([]rune{}, lo.LowerCaseLettersCharset...), lo.NumbersCharset...)
	PasswordCharset = append(append(append([]rune{}, lo.LettersCharset...), lo.NumbersCharset...), '!', '@', '#')
)

type Generator struct {
	randomString func(size int, charset []rune) string
}

func New() *Generator {
	return &Generator{randomString: lo.RandomString}
}

// Account returns one account; every character is drawn independently
// and uniformly from its charset.
func (g *Generator) Account() domain.Account {
	return domain.Account{
		Username: UsernamePrefix + g.randomString(UsernameLength, UsernameCharset),
		Password: g.randomString(PasswordLength, PasswordCharset),
	}
}

func (g *Generator) Generate(count int) []domain.Account {
	if count <= 0 {
		return []domain.Account{}
	}
	return lo.Times(count, func(int) domain.Account {
		return g.Account()
	})
}
