package employee

import (
	"sync"
	"time"

	"staffdir/inner/store"

	"github.com/google/uuid"
)

// Repository хранит упорядоченную последовательность сотрудников в памяти
// и сквозным образом записывает каждую мутацию в файловое хранилище.
// Коллекция изначально пуста.
type Repository struct {
	mu    sync.RWMutex
	store *store.Store
	items []Entity
}

func NewRepository(s *store.Store) *Repository {
	return &Repository{
		store: s,
		items: store.Read(s, store.EmployeesKey, []Entity{}),
	}
}

// persist вызывается под блокировкой
func (r *Repository) persist() {
	store.Write(r.store, store.EmployeesKey, r.items)
}

// FindAll отдаёт коллекцию целиком; фильтрацией и сортировкой
// занимается слой запросов
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

// Add присваивает новый случайный id, выставляет createdAt == updatedAt
// и добавляет запись в конец коллекции
func (r *Repository) Add(employee *Entity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	employee.Id = uuid.NewString()
	employee.CreatedAt = now
	employee.UpdatedAt = now
	r.items = append(r.items, *employee)
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

// DeleteById удаляет запись безусловно: на грейды удаление не влияет
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

// CountByGradeLevel количество сотрудников с данным грейдом,
// сравнение строгое по регистру
func (r *Repository) CountByGradeLevel(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, item := range r.items {
		if item.GradeLevel == name {
			count++
		}
	}
	return count
}
