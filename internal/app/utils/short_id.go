// Package utils содержит вспомогательные функции,
// в том числе для генерации коротких идентификаторов.
package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// ShortIDLength длина короткого идентификатора.
const ShortIDLength = 6

// ShortID возвращает короткий идентификатор для хранилища, в котором уже
// лежит count записей: первые ShortIDLength символов hex-представления
// SHA-256 от десятичной строки count.
//
// Идентификатор зависит только от счётчика, а не от содержимого ссылки,
// поэтому одинаковый размер хранилища всегда даёт одинаковый результат.
// Проверки коллизий нет.
func ShortID(count int) string {
	sum := sha256.Sum256([]byte(strconv.Itoa(count)))
	return hex.EncodeToString(sum[:])[:ShortIDLength]
}
