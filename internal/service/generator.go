package service

import (
	"math/rand"
)

const (
	// CodeLength — длина автоматически генерируемого кода
	CodeLength = 6

	AllowedChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateCode возвращает случайный алфавитно-цифровой код длины CodeLength.
// Уникальность не проверяется: вставка опирается на unique constraint
// хранилища, конфликт отдаётся вызывающему без повторной генерации.
func GenerateCode() string {
	result := make([]byte, CodeLength)

	for i := range result {
		result[i] = AllowedChars[rand.Intn(len(AllowedChars))]
	}

	return string(result)
}
