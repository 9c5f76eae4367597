// Package store хранит соответствия коротких идентификаторов и длинных ссылок
// в памяти и синхронизирует их с текстовым файлом.
package store

// Store описывает таблицы соответствий в обе стороны.
type Store interface {
	Get(shortURL string) (string, bool)
	GetShort(originalURL string) (string, bool)
	Set(shortURL, originalURL string)
	Len() int
	Range(fn func(shortURL, originalURL string))
}
