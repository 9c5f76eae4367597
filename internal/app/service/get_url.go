package service

import (
	"context"

	"go.uber.org/zap"
)

// StoreURLGetter описывает методы получения URL из хранилища.
type StoreURLGetter interface {
	Expand(ctx context.Context, shortURL string) (string, bool)
}

// URLGetter раскрывает короткие идентификаторы.
type URLGetter interface {
	GetOriginalURL(ctx context.Context, input string) string
}

// GetURLService реализует URLGetter через StoreURLGetter.
type GetURLService struct {
	store  StoreURLGetter
	logger *zap.SugaredLogger
}

// NewGetURLService создаёт новый GetURLService на основе переданного хранилища.
func NewGetURLService(store StoreURLGetter, logger *zap.SugaredLogger) *GetURLService {
	return &GetURLService{store: store, logger: logger}
}

// GetOriginalURL возвращает оригинальный URL или InvalidShortURL, если
// идентификатор неизвестен. Промах не считается ошибкой.
func (s *GetURLService) GetOriginalURL(ctx context.Context, input string) string {
	originalURL, ok := s.store.Expand(ctx, input)
	if !ok {
		s.logger.Debugw("Short URL not found", "shortURL", input)
		return InvalidShortURL
	}
	return originalURL
}
