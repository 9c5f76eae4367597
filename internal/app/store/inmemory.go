package store

// InMemoryStore держит две взаимно обратные таблицы: short -> long и long -> short.
// Блокировок нет, хранилище рассчитано на одного вызывающего.
type InMemoryStore struct {
	data map[string]string
	rev  map[string]string
}

func NewStore() *InMemoryStore {
	return &InMemoryStore{
		data: make(map[string]string),
		rev:  make(map[string]string),
	}
}

func (m *InMemoryStore) Get(shortURL string) (string, bool) {
	value, exists := m.data[shortURL]
	return value, exists
}

func (m *InMemoryStore) GetShort(originalURL string) (string, bool) {
	value, exists := m.rev[originalURL]
	return value, exists
}

// Set записывает пару в обе таблицы.
func (m *InMemoryStore) Set(shortURL, originalURL string) {
	m.data[shortURL] = originalURL
	m.rev[originalURL] = shortURL
}

func (m *InMemoryStore) Len() int {
	return len(m.data)
}

// Range обходит пары в порядке итерации map, то есть в произвольном.
func (m *InMemoryStore) Range(fn func(shortURL, originalURL string)) {
	for shortURL, originalURL := range m.data {
		fn(shortURL, originalURL)
	}
}
