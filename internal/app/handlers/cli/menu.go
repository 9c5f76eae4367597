// Package cli реализует интерактивное меню поверх сервисов сокращения ссылок.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aseptimu/link-shortener/internal/app/service"
	"github.com/aseptimu/link-shortener/internal/app/utils"
)

const (
	choiceShorten = 1
	choiceExpand  = 2
	choiceExit    = 3
)

const (
	menuText      = "1. Shorten URL\n2. Expand URL\n3. Exit\nChoose an option: "
	shortenPrompt = "Enter the long URL to shorten: "
	expandPrompt  = "Enter the short URL to expand: "
	goodbyeText   = "Exiting the program. Goodbye!"
	invalidChoice = "Invalid choice. Please choose a valid option."
)

// MenuHandler читает команды из in и пишет ответы в out.
type MenuHandler struct {
	shortener service.URLShortener
	getter    service.URLGetter
	logger    *zap.SugaredLogger

	in      *utils.LineReader
	out     io.Writer
	err     error
	readErr error
}

func NewMenuHandler(
	shortener service.URLShortener,
	getter service.URLGetter,
	in io.Reader,
	out io.Writer,
	logger *zap.SugaredLogger,
) *MenuHandler {
	return &MenuHandler{
		shortener: shortener,
		getter:    getter,
		logger:    logger,
		in:        utils.NewLineReader(in),
		out:       out,
	}
}

// Run показывает меню до выбора пункта выхода или конца ввода.
// Ошибку возвращает только при сбое чтения или записи.
func (h *MenuHandler) Run(ctx context.Context) error {
	for {
		h.print(menuText)
		if h.err != nil {
			return h.err
		}

		token, ok := h.readChoice()
		if !ok {
			return h.inputErr()
		}

		start := time.Now()
		choice, err := strconv.Atoi(token)
		if err != nil {
			h.logger.Debugw("Menu choice is not a number", "input", token)
		}

		switch choice {
		case choiceShorten:
			ok = h.shorten(ctx)
		case choiceExpand:
			ok = h.expand(ctx)
		case choiceExit:
			h.println(goodbyeText)
			return h.err
		default:
			h.println(invalidChoice)
		}

		h.logger.Debugw("Command",
			"choice", token,
			"duration", time.Since(start),
		)

		if !ok {
			return h.inputErr()
		}
		if h.err != nil {
			return h.err
		}
	}
}

func (h *MenuHandler) shorten(ctx context.Context) bool {
	h.print(shortenPrompt)
	longURL, ok := h.readLine()
	if !ok {
		return false
	}
	h.println("Shortened URL: " + h.shortener.ShortenURL(ctx, longURL))
	return true
}

func (h *MenuHandler) expand(ctx context.Context) bool {
	h.print(expandPrompt)
	shortURL, ok := h.readLine()
	if !ok {
		return false
	}
	h.println("Expanded URL: " + h.getter.GetOriginalURL(ctx, shortURL))
	return true
}

// readChoice пропускает пустые строки и возвращает первое слово строки.
// Остаток строки отбрасывается.
func (h *MenuHandler) readChoice() (string, bool) {
	for {
		line, ok := h.readLine()
		if !ok {
			return "", false
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields[0], true
		}
	}
}

func (h *MenuHandler) readLine() (string, bool) {
	line, err := h.in.ReadLine()
	if err != nil {
		h.readErr = err
		return "", false
	}
	return line, true
}

// inputErr вызывается, когда ввод закончился: io.EOF не ошибка.
func (h *MenuHandler) inputErr() error {
	if h.readErr != nil && !errors.Is(h.readErr, io.EOF) {
		return fmt.Errorf("read input: %w", h.readErr)
	}
	h.logger.Debugw("Input closed, leaving menu")
	return h.err
}

func (h *MenuHandler) print(s string) {
	if h.err != nil {
		return
	}
	if _, err := io.WriteString(h.out, s); err != nil {
		h.err = fmt.Errorf("write output: %w", err)
	}
}

func (h *MenuHandler) println(s string) {
	h.print(s + "\n")
}
