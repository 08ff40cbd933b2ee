package query

import (
	"sort"
	"strings"
	"sync"
	"time"

	"staffdir/inner/common"
	"staffdir/inner/employee"
)

// SearchDebounce пауза после последнего изменения поисковой строки,
// по истечении которой фильтр вступает в силу
const SearchDebounce = 300 * time.Millisecond

// Filters текущее состояние фильтров производного представления
type Filters struct {
	SearchTerm string   `json:"searchTerm,omitempty"`
	GradeLevel string   `json:"gradeLevel,omitempty"`
	Country    string   `json:"country,omitempty"`
	MinSalary  *float64 `json:"minSalary,omitempty"`
	MaxSalary  *float64 `json:"maxSalary,omitempty"`
	SortBy     string   `json:"sortBy,omitempty"`
	Order      string   `json:"order,omitempty"`
} // @name EmployeeFilters

// Apply вычисляет производное представление коллекции:
// все активные предикаты объединяются по "И", затем применяется
// устойчивая сортировка. Полный пересчёт при каждом вызове.
func Apply(employees []employee.Entity, filters Filters) []employee.Entity {
	term := strings.ToLower(strings.TrimSpace(filters.SearchTerm))

	result := make([]employee.Entity, 0, len(employees))
	for _, emp := range employees {
		if term != "" && !matchesTerm(emp, term) {
			continue
		}
		// фильтр по грейду: строгое сравнение, пустой фильтр пропускает всех
		if filters.GradeLevel != "" && emp.GradeLevel != filters.GradeLevel {
			continue
		}
		if filters.Country != "" && emp.Country != filters.Country {
			continue
		}
		if filters.MinSalary != nil && emp.Salary < *filters.MinSalary {
			continue
		}
		if filters.MaxSalary != nil && emp.Salary > *filters.MaxSalary {
			continue
		}
		result = append(result, emp)
	}

	sortEmployees(result, filters.SortBy, filters.Order)
	return result
}

// matchesTerm поиск подстроки без учёта регистра
// по имени, должности, департаменту и почте
func matchesTerm(emp employee.Entity, term string) bool {
	return strings.Contains(strings.ToLower(emp.Name), term) ||
		strings.Contains(strings.ToLower(emp.Role), term) ||
		strings.Contains(strings.ToLower(emp.Department), term) ||
		strings.Contains(strings.ToLower(emp.Email), term)
}

// sortEmployees устойчивая сортировка по выбранному полю;
// без sortBy и при нераспознанном ключе исходный порядок сохраняется
func sortEmployees(employees []employee.Entity, sortBy, order string) {
	if sortBy == "" {
		return
	}
	desc := order == "desc"
	sort.SliceStable(employees, func(i, j int) bool {
		less := lessBy(employees[i], employees[j], sortBy)
		if desc {
			return lessBy(employees[j], employees[i], sortBy)
		}
		return less
	})
}

func lessBy(a, b employee.Entity, sortBy string) bool {
	switch sortBy {
	case "salary":
		return a.Salary < b.Salary
	case "joinDate":
		return a.JoinDate < b.JoinDate
	case "createdAt":
		return a.CreatedAt.Before(b.CreatedAt)
	case "role":
		return strings.ToLower(a.Role) < strings.ToLower(b.Role)
	case "department":
		return strings.ToLower(a.Department) < strings.ToLower(b.Department)
	case "country":
		return strings.ToLower(a.Country) < strings.ToLower(b.Country)
	case "name":
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	default:
		return false
	}
}

// Engine держит текущее состояние фильтров.
// Повторяет поведение исходного интерфейса: изменения поисковой строки
// коалесцируются за период debounce, а выбор страны сбрасывает
// остальные фильтры (страна и прочие фильтры взаимоисключающие).
type Engine struct {
	mu       sync.Mutex
	filters  Filters
	debounce time.Duration
	timer    *time.Timer
}

// NewEngine функция-конструктор с debounce по умолчанию
func NewEngine() *Engine {
	return NewEngineWithDebounce(SearchDebounce)
}

// NewEngineWithDebounce нулевой debounce применяет поиск немедленно
func NewEngineWithDebounce(debounce time.Duration) *Engine {
	return &Engine{debounce: debounce}
}

// SetSearchTerm откладывает применение поисковой строки:
// быстрые последовательные вызовы схлопываются в один
func (e *Engine) SetSearchTerm(term string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.debounce <= 0 {
		e.filters.SearchTerm = term
		return
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(e.debounce, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.filters.SearchTerm = term
	})
}

func (e *Engine) SetGradeLevel(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filters.GradeLevel = name
}

// SetCountry выбор непустой страны сбрасывает поиск, грейд и границы
// зарплаты - так ведёт себя исходный интерфейс
func (e *Engine) SetCountry(country string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filters.Country = country
	if country != "" {
		e.clearNonCountryLocked()
	}
}

func (e *Engine) clearNonCountryLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.filters.SearchTerm = ""
	e.filters.GradeLevel = ""
	e.filters.MinSalary = nil
	e.filters.MaxSalary = nil
}

// SetSalaryBounds границы включительные; отрицательные значения
// и min > max отклоняются
func (e *Engine) SetSalaryBounds(minSalary, maxSalary *float64) error {
	if (minSalary != nil && *minSalary < 0) || (maxSalary != nil && *maxSalary < 0) {
		return common.RequestValidationError{Message: "Salary cannot be negative"}
	}
	if minSalary != nil && maxSalary != nil && *minSalary > *maxSalary {
		return common.RequestValidationError{Message: "Minimum salary cannot exceed maximum salary"}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filters.MinSalary = minSalary
	e.filters.MaxSalary = maxSalary
	return nil
}

func (e *Engine) SetSort(sortBy, order string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filters.SortBy = sortBy
	e.filters.Order = order
}

// ClearAll сбрасывает все фильтры, включая страну
func (e *Engine) ClearAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filters = Filters{}
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// Current снимок текущего состояния фильтров
func (e *Engine) Current() Filters {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filters
}

// View производное представление коллекции при текущих фильтрах
func (e *Engine) View(employees []employee.Entity) []employee.Entity {
	return Apply(employees, e.Current())
}
