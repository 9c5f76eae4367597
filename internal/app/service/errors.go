package service

// InvalidShortURL возвращается вместо ссылки, если короткий идентификатор неизвестен.
const InvalidShortURL = "Invalid short URL"
