// Package service содержит бизнес-логику сокращения и раскрытия ссылок.
package service

import (
	"context"

	"go.uber.org/zap"
)

// StoreURLSetter описывает хранилище, которое выдаёт короткий идентификатор для ссылки.
type StoreURLSetter interface {
	Shorten(ctx context.Context, originalURL string) string
}

// URLShortener сокращает ссылки.
type URLShortener interface {
	ShortenURL(ctx context.Context, input string) string
}

// URLService сокращает ссылки через StoreURLSetter.
type URLService struct {
	store  StoreURLSetter
	logger *zap.SugaredLogger
}

func NewURLService(store StoreURLSetter, logger *zap.SugaredLogger) *URLService {
	return &URLService{store: store, logger: logger}
}

// ShortenURL возвращает короткий идентификатор для input. Формат ссылки не
// проверяется: любая строка считается ссылкой.
func (s *URLService) ShortenURL(ctx context.Context, input string) string {
	shortURL := s.store.Shorten(ctx, input)
	s.logger.Debugw("URL shortened", "originalURL", input, "shortURL", shortURL)
	return shortURL
}
