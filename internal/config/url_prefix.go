package config

import (
	"fmt"
	"strings"
)

// URLPrefix представляет публичный базовый URL сервиса.
// Хранится без завершающего слеша.
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

func (p *URLPrefix) Set(value string) error {
	if !strings.HasPrefix(value, "http") {
		return fmt.Errorf("invalid URL prefix format: %s", value)
	}

	*p = URLPrefix(strings.TrimSuffix(value, "/"))

	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}

// JoinPath возвращает базовый URL, дополненный одним сегментом пути.
func (p URLPrefix) JoinPath(segment string) string {
	return string(p) + "/" + segment
}
