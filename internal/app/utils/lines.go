package utils

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineReader читает строки без ограничения длины. Конец строки: "\n", "\r"
// или "\r\n". Терминатор в результат не входит.
type LineReader struct {
	r      *bufio.Reader
	skipLF bool
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine возвращает следующую строку. Последняя строка без терминатора
// тоже возвращается; io.EOF означает, что строк больше нет.
func (lr *LineReader) ReadLine() (string, error) {
	var sb strings.Builder
	for {
		b, err := lr.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}

		// "\n" сразу после "\r" относится к предыдущей строке. Следующий байт
		// после "\r" не подсматриваем, чтобы не блокироваться на интерактивном вводе.
		if lr.skipLF {
			lr.skipLF = false
			if b == '\n' {
				continue
			}
		}

		switch b {
		case '\n':
			return sb.String(), nil
		case '\r':
			lr.skipLF = true
			return sb.String(), nil
		}
		sb.WriteByte(b)
	}
}
