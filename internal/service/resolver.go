package service

import (
	"net/url"
	"strings"
)

// CodeResolver выбирает итоговый код для новой ссылки.
// Приоритет: custom_name (с отрезанным префиксом вида "host/"),
// затем code, иначе сгенерированный случайный код.
type CodeResolver struct {
	hostPrefix string
}

// NewCodeResolver создает резолвер для заданного публичного базового URL.
// Из baseURL берётся host: пользователи часто присылают custom_name
// в виде "sho.rt/name", скопированного из адресной строки.
func NewCodeResolver(baseURL string) *CodeResolver {
	hostPrefix := ""
	if parsed, err := url.Parse(baseURL); err == nil && parsed.Host != "" {
		hostPrefix = parsed.Host + "/"
	}

	return &CodeResolver{hostPrefix: hostPrefix}
}

// Resolve возвращает код, который будет отправлен в хранилище.
// Проверка длины выполняется на уровне usecase.
func (r *CodeResolver) Resolve(code, customName string) string {
	if customName != "" {
		return strings.TrimPrefix(customName, r.hostPrefix)
	}

	if code != "" {
		return code
	}

	return GenerateCode()
}
