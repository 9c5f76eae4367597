package store

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/aseptimu/link-shortener/internal/app/utils"
)

const fieldSeparator = ","

// FileStore хранит соответствия в памяти и после каждой вставки целиком
// перезаписывает файл строками вида `<short>,<long>`.
//
// Ошибки чтения и записи файла не возвращаются вызывающему: они логируются,
// а состояние в памяти остаётся изменённым.
type FileStore struct {
	filePath string
	tables   Store
	logger   *zap.SugaredLogger
}

// NewFileStore создаёт хранилище и загружает в него filePath.
// Отсутствующий или нечитаемый файл даёт пустое хранилище.
func NewFileStore(filePath string, logger *zap.SugaredLogger) *FileStore {
	fs := &FileStore{
		filePath: filePath,
		tables:   NewStore(),
		logger:   logger,
	}
	fs.loadFromFile()
	return fs
}

func (fs *FileStore) loadFromFile() {
	loaded, err := readLinks(fs.filePath, fs.tables.Set)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fs.logger.Infow("Links file not found, starting with empty store", "path", fs.filePath)
			return
		}
		fs.logger.Errorw("Error loading links from file",
			"path", fs.filePath,
			"loaded", loaded,
			"error", err,
		)
		return
	}
	fs.logger.Debugw("Links loaded", "path", fs.filePath, "lines", loaded, "size", fs.tables.Len())
}

func (fs *FileStore) rewriteFile() error {
	return writeLinks(fs.filePath, fs.tables)
}

// Shorten возвращает короткий идентификатор для originalURL. Для уже
// известной ссылки возвращается прежний идентификатор без записи в файл.
func (fs *FileStore) Shorten(_ context.Context, originalURL string) string {
	if shortURL, ok := fs.tables.GetShort(originalURL); ok {
		return shortURL
	}

	shortURL := utils.ShortID(fs.tables.Len())
	fs.tables.Set(shortURL, originalURL)

	if err := fs.rewriteFile(); err != nil {
		fs.logger.Errorw("Error saving links to file",
			"path", fs.filePath,
			"shortURL", shortURL,
			"error", err,
		)
	}
	return shortURL
}

// Expand возвращает длинную ссылку по короткому идентификатору.
func (fs *FileStore) Expand(_ context.Context, shortURL string) (string, bool) {
	return fs.tables.Get(shortURL)
}

// Len возвращает количество соответствий в хранилище.
func (fs *FileStore) Len() int {
	return fs.tables.Len()
}

// readLinks читает файл построчно и передаёт в set каждую корректную пару.
// Возвращает число принятых строк, даже если чтение прервалось ошибкой.
func readLinks(filePath string, set func(shortURL, originalURL string)) (int, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, errors.Wrapf(err, "open links file `%s`", filePath)
	}
	defer file.Close()

	lines := utils.NewLineReader(file)

	var accepted int
	for {
		line, err := lines.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return accepted, nil
			}
			return accepted, errors.Wrapf(err, "read links file `%s`", filePath)
		}

		shortURL, originalURL, ok := parseLine(line)
		if !ok {
			continue
		}
		set(shortURL, originalURL)
		accepted++
	}
}

// parseLine делит строку по каждой запятой. Хвостовые пустые поля
// отбрасываются, строка принимается только при ровно двух полях.
func parseLine(line string) (shortURL, originalURL string, ok bool) {
	fields := strings.Split(line, fieldSeparator)
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	if len(fields) != 2 {
		return "", "", false
	}
	return fields[0], fields[1], true
}

func writeLinks(filePath string, tables Store) (err error) {
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrapf(err, "open links file `%s` for writing", filePath)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = errors.Wrapf(closeErr, "close links file `%s`", filePath)
		}
	}()

	writer := bufio.NewWriter(file)
	var writeErr error
	tables.Range(func(shortURL, originalURL string) {
		if writeErr != nil {
			return
		}
		_, writeErr = writer.WriteString(shortURL + fieldSeparator + originalURL + "\n")
	})
	if writeErr != nil {
		return errors.Wrap(writeErr, "write link")
	}
	return errors.Wrap(writer.Flush(), "flush links file")
}
