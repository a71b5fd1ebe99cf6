package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const csvContentType = "text/csv"

// ExportCSV выгружает полный снимок реестра в объектное хранилище
// и возвращает публичный URL файла.
// Пустой реестр — ошибка клиента, пустой файл не создаётся.
func (u *LinkUsecase) ExportCSV(ctx context.Context) (string, error) {
	if u.uploader == nil {
		return "", fmt.Errorf("%w: object storage is not configured", ErrServiceUnavailable)
	}

	links, err := u.repo.AllLinks(ctx)
	if err != nil {
		u.logger.Error("failed to read links for export", zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	if len(links) == 0 {
		return "", ErrNothingToExport
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	records := make([][]string, 0, len(links)+1)
	records = append(records, []string{"original url", "short url", "access count", "creation date"})

	for _, link := range links {
		records = append(records, []string{
			link.OriginalURL,
			u.cfg.BaseURL.JoinPath(link.Code),
			strconv.FormatInt(link.AccessCount, 10),
			link.CreatedAt.Format(time.RFC3339),
		})
	}

	if err := writer.WriteAll(records); err != nil {
		return "", fmt.Errorf("%w: failed to build csv: %w", ErrServiceUnavailable, err)
	}

	// Случайный ключ никогда не выводится из кода ссылки,
	// чтобы исключить пересечения имён файлов
	key := uuid.NewString() + ".csv"

	if err := u.uploader.Upload(ctx, key, buf.Bytes(), csvContentType); err != nil {
		u.logger.Error("failed to upload csv export",
			zap.String("key", key),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	u.logger.Info("csv export uploaded",
		zap.String("key", key),
		zap.Int("links", len(links)),
	)

	return u.cfg.BaseURL.JoinPath(key), nil
}
