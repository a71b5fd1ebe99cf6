package model

import "time"

// Link представляет одну запись реестра ссылок.
// Поля id, code, original_url и created_at неизменяемы после создания;
// AccessCount растёт только через атомарный инкремент на стороне хранилища.
type Link struct {
	ID          int64     `json:"id"`
	Code        string    `json:"code"`
	OriginalURL string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
	AccessCount int64     `json:"access_count"`
}

// LinkView расширяет Link вычисленным коротким URL для ответов API.
type LinkView struct {
	Link
	ShortURL string `json:"short_url"`
}
