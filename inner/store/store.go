package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"staffdir/inner/common"

	"go.uber.org/zap"
)

// Ключи, под которыми хранятся коллекции.
// Совпадают с ключами исходного браузерного хранилища.
const (
	EmployeesKey   = "staffDirectory_employees"
	GradeLevelsKey = "staffDirectory_gradeLevels"
)

// Store файловое key-value хранилище: каждое значение
// сериализуется в JSON и лежит в отдельном файле <key>.json
type Store struct {
	dir    string
	logger *common.Logger
}

// NewStore функция-конструктор хранилища.
// Каталог создаётся заранее; ошибка создания не фатальна -
// чтение вернёт значения по умолчанию, запись будет пропущена.
func NewStore(dir string, logger *common.Logger) *Store {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("failed to create data directory",
			zap.String("dir", dir),
			zap.Error(err))
	}
	return &Store{dir: dir, logger: logger}
}

// Dir возвращает каталог хранилища
func (s *Store) Dir() string {
	return s.dir
}

// Available проверяет, что каталог хранилища доступен для записи
func (s *Store) Available() bool {
	probe := filepath.Join(s.dir, ".probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return false
	}
	_ = os.Remove(probe)
	return true
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Read читает значение по ключу. Если файла нет, он нечитаем
// или содержит некорректный JSON - возвращается значение по умолчанию,
// ошибка наружу не поднимается.
func Read[T any](s *Store, key string, defaultValue T) T {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read stored value, using default",
				zap.String("key", key),
				zap.Error(err))
		}
		return defaultValue
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		s.logger.Warn("stored value is corrupted, using default",
			zap.String("key", key),
			zap.Error(err))
		return defaultValue
	}
	return value
}

// Write сериализует значение и сохраняет его под ключом.
// Запись идёт через временный файл с последующим переименованием,
// чтобы при сбое не остался наполовину записанный файл.
// Любая ошибка записи логируется и проглатывается.
func Write[T any](s *Store, key string, value T) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("failed to serialize value, skipping persistence",
			zap.String("key", key),
			zap.Error(err))
		return
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		s.logger.Warn("failed to write value, skipping persistence",
			zap.String("key", key),
			zap.Error(err))
		return
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		s.logger.Warn("failed to replace stored value, skipping persistence",
			zap.String("key", key),
			zap.Error(err))
		_ = os.Remove(tmp)
	}
}
