package grade

import (
	"strings"
	"sync"
	"time"

	"staffdir/inner/store"

	"github.com/google/uuid"
)

// Repository хранит упорядоченную последовательность грейдов в памяти
// и сквозным образом записывает каждую мутацию в файловое хранилище
type Repository struct {
	mu    sync.RWMutex
	store *store.Store
	items []Entity
}

// NewRepository загружает коллекцию из хранилища;
// пустая коллекция засеивается пятью грейдами по умолчанию
func NewRepository(s *store.Store) *Repository {
	items := store.Read(s, store.GradeLevelsKey, []Entity{})
	repo := &Repository{store: s, items: items}
	if len(items) == 0 {
		repo.items = defaultGradeLevels()
		repo.persist()
	}
	return repo
}

// defaultGradeLevels пять стандартных грейдов LVL1..LVL5
func defaultGradeLevels() []Entity {
	now := time.Now()
	defaults := []struct {
		name string
		desc string
	}{
		{"LVL1", "Entry Level"},
		{"LVL2", "Junior Level"},
		{"LVL3", "Senior Level"},
		{"LVL4", "Lead Level"},
		{"LVL5", "Executive Level"},
	}
	entities := make([]Entity, len(defaults))
	for i, d := range defaults {
		entities[i] = Entity{
			Id:          uuid.NewString(),
			Name:        d.name,
			Description: d.desc,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	return entities
}

// persist вызывается под блокировкой
func (r *Repository) persist() {
	store.Write(r.store, store.GradeLevelsKey, r.items)
}

func (r *Repository) FindAll() []Entity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Entity, len(r.items))
	copy(result, r.items)
	return result
}

func (r *Repository) FindById(id string) (Entity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.Id == id {
			return item, true
		}
	}
	return Entity{}, false
}

// FindByName поиск по имени без учёта регистра
func (r *Repository) FindByName(name string) (Entity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if strings.EqualFold(item.Name, name) {
			return item, true
		}
	}
	return Entity{}, false
}

// Add присваивает новый id и отметки времени, добавляет запись в конец
func (r *Repository) Add(gradeLevel *Entity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	gradeLevel.Id = uuid.NewString()
	gradeLevel.CreatedAt = now
	gradeLevel.UpdatedAt = now
	r.items = append(r.items, *gradeLevel)
	r.persist()
}

// Update применяет apply к найденной записи и обновляет UpdatedAt.
// Возвращает false, если записи с таким id нет.
func (r *Repository) Update(id string, apply func(*Entity)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].Id == id {
			apply(&r.items[i])
			r.items[i].UpdatedAt = time.Now()
			r.persist()
			return true
		}
	}
	return false
}

func (r *Repository) DeleteById(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].Id == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.persist()
			return true
		}
	}
	return false
}
