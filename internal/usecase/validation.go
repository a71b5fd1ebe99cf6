package usecase

import (
	"net/url"
	"strconv"
)

const (
	MinCodeLength = 3
	MaxCodeLength = 10

	DefaultPage     = 1
	DefaultPageSize = 10
	MinPageSize     = 10
	MaxPageSize     = 100
)

// validateCreateLink проверяет входные данные создания ссылки.
// codeField указывает, какое поле дало итоговый код ("code" или
// "custom_name"), чтобы ошибка длины была привязана к нему.
func validateCreateLink(originalURL, code, codeField string) *ValidationError {
	var fields []FieldError

	if fieldErr := validateOriginalURL(originalURL); fieldErr != nil {
		fields = append(fields, *fieldErr)
	}

	if len(code) < MinCodeLength {
		fields = append(fields, FieldError{
			Field:   codeField,
			Message: "must be at least 3 characters",
		})
	} else if len(code) > MaxCodeLength {
		fields = append(fields, FieldError{
			Field:   codeField,
			Message: "must be at most 10 characters",
		})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	return nil
}

func validateOriginalURL(raw string) *FieldError {
	if raw == "" {
		return &FieldError{Field: "original_url", Message: "is required"}
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return &FieldError{Field: "original_url", Message: "must be a valid absolute URL"}
	}

	return nil
}

// parseListParams приводит строковые query-параметры пагинации к числам.
// Пустые значения заменяются значениями по умолчанию.
func parseListParams(pageRaw, pageSizeRaw string) (int, int, *ValidationError) {
	var fields []FieldError

	page := DefaultPage
	if pageRaw != "" {
		parsed, err := strconv.Atoi(pageRaw)
		if err != nil || parsed < 1 {
			fields = append(fields, FieldError{
				Field:   "page",
				Message: "must be an integer >= 1",
			})
		} else {
			page = parsed
		}
	}

	pageSize := DefaultPageSize
	if pageSizeRaw != "" {
		parsed, err := strconv.Atoi(pageSizeRaw)
		if err != nil || parsed < MinPageSize || parsed > MaxPageSize {
			fields = append(fields, FieldError{
				Field:   "pageSize",
				Message: "must be an integer between 10 and 100",
			})
		} else {
			pageSize = parsed
		}
	}

	if len(fields) > 0 {
		return 0, 0, &ValidationError{Fields: fields}
	}

	return page, pageSize, nil
}
