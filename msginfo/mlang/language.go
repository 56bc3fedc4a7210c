package mlang

import (
	"github.com/samber/lo"
)

// Parse never fails: unknown names become an "other" language carrying s as is.
func Parse(s string) Language {
	return Language(s)
}

// Official lists the fixed languages in their canonical order.
func Official() []Language {
	return lo.Map(official, func(l Language, _ int) Language { return l })
}

func (l Language) IsOfficial() bool {
	return lo.Contains(official, l)
}

func (l Language) String() string {
	return string(l)
}

func (l Language) MarshalText() ([]byte, error) {
	return []byte(l), nil
}

func (l *Language) UnmarshalText(text []byte) error {
	*l = Parse(string(text))
	return nil
}
