// Package shell собирает хранилище, сервисы и меню в один интерактивный сеанс.
package shell

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/aseptimu/link-shortener/internal/app/handlers/cli"
	"github.com/aseptimu/link-shortener/internal/app/service"
	"github.com/aseptimu/link-shortener/internal/app/store"
)

// Run загружает ссылки из storagePath и обслуживает меню на in/out до выхода.
func Run(ctx context.Context, storagePath string, in io.Reader, out io.Writer, logger *zap.SugaredLogger) error {
	logger.Debugw("File storage mode enabled", "storagePath", storagePath)
	linkStore := store.NewFileStore(storagePath, logger)

	urlService := service.NewURLService(linkStore, logger)
	urlGetService := service.NewGetURLService(linkStore, logger)

	menu := cli.NewMenuHandler(urlService, urlGetService, in, out, logger)

	logger.Infow("Session started", "links", linkStore.Len())
	err := menu.Run(ctx)
	if err != nil {
		logger.Errorw("Session failed", "error", err)
		return err
	}
	logger.Infow("Session finished", "links", linkStore.Len())
	return nil
}
