package query

import (
	"testing"
	"time"

	"staffdir/inner/employee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

// фиксированная коллекция для тестов фильтрации
func testEmployees() []employee.Entity {
	return []employee.Entity{
		{
			Id:         "emp-1",
			Name:       "Ada Lovelace",
			Email:      "ada@example.com",
			Role:       "Engineer",
			Department: "R&D",
			Country:    "United Kingdom",
			GradeLevel: "LVL3",
			Salary:     80000,
			JoinDate:   "2024-06-01",
		},
		{
			Id:         "emp-2",
			Name:       "Grace Hopper",
			Email:      "grace@example.com",
			Role:       "Rear Admiral",
			Department: "Navy",
			Country:    "United States",
			GradeLevel: "LVL5",
			Salary:     95000,
			JoinDate:   "2023-01-15",
		},
		{
			Id:         "emp-3",
			Name:       "Blaise Pascal",
			Email:      "blaise@example.com",
			Role:       "Mathematician",
			Department: "R&D",
			Country:    "France",
			GradeLevel: "LVL3",
			Salary:     72000,
			JoinDate:   "2022-09-10",
		},
	}
}

func ids(employees []employee.Entity) []string {
	result := make([]string, len(employees))
	for i, emp := range employees {
		result[i] = emp.Id
	}
	return result
}

func TestApply_NoFilters_ReturnsAllInOrder(t *testing.T) {
	got := Apply(testEmployees(), Filters{})
	assert.Equal(t, []string{"emp-1", "emp-2", "emp-3"}, ids(got))
}

func TestApply_SearchTerm(t *testing.T) {
	employees := testEmployees()

	t.Run("Matches name case-insensitively", func(t *testing.T) {
		got := Apply(employees, Filters{SearchTerm: "ada"})
		assert.Equal(t, []string{"emp-1"}, ids(got))
	})

	t.Run("Matches role", func(t *testing.T) {
		got := Apply(employees, Filters{SearchTerm: "admiral"})
		assert.Equal(t, []string{"emp-2"}, ids(got))
	})

	t.Run("Matches department", func(t *testing.T) {
		got := Apply(employees, Filters{SearchTerm: "r&d"})
		assert.Equal(t, []string{"emp-1", "emp-3"}, ids(got))
	})

	t.Run("Matches email", func(t *testing.T) {
		got := Apply(employees, Filters{SearchTerm: "blaise@"})
		assert.Equal(t, []string{"emp-3"}, ids(got))
	})

	t.Run("Term is trimmed before matching", func(t *testing.T) {
		got := Apply(employees, Filters{SearchTerm: "  ada  "})
		assert.Equal(t, []string{"emp-1"}, ids(got))
	})

	t.Run("No match returns empty slice", func(t *testing.T) {
		got := Apply(employees, Filters{SearchTerm: "turing"})
		assert.Empty(t, got)
	})
}

func TestApply_GradeAndCountry(t *testing.T) {
	employees := testEmployees()

	got := Apply(employees, Filters{GradeLevel: "LVL3"})
	assert.Equal(t, []string{"emp-1", "emp-3"}, ids(got))

	got = Apply(employees, Filters{Country: "United Kingdom"})
	assert.Equal(t, []string{"emp-1"}, ids(got))

	// сравнение страны строгое
	got = Apply(employees, Filters{Country: "united kingdom"})
	assert.Empty(t, got)
}

func TestApply_SalaryBoundsAreInclusive(t *testing.T) {
	employees := testEmployees()

	got := Apply(employees, Filters{MinSalary: floatPtr(80000)})
	assert.Equal(t, []string{"emp-1", "emp-2"}, ids(got))

	got = Apply(employees, Filters{MaxSalary: floatPtr(80000)})
	assert.Equal(t, []string{"emp-1", "emp-3"}, ids(got))

	got = Apply(employees, Filters{MinSalary: floatPtr(100000)})
	assert.Empty(t, got)
}

func TestApply_FiltersCombineWithAnd(t *testing.T) {
	got := Apply(testEmployees(), Filters{
		SearchTerm: "a",
		GradeLevel: "LVL3",
		MinSalary:  floatPtr(75000),
	})
	assert.Equal(t, []string{"emp-1"}, ids(got))
}

func TestApply_Sorting(t *testing.T) {
	employees := testEmployees()

	t.Run("By salary ascending", func(t *testing.T) {
		got := Apply(employees, Filters{SortBy: "salary", Order: "asc"})
		assert.Equal(t, []string{"emp-3", "emp-1", "emp-2"}, ids(got))
	})

	t.Run("By salary descending", func(t *testing.T) {
		got := Apply(employees, Filters{SortBy: "salary", Order: "desc"})
		assert.Equal(t, []string{"emp-2", "emp-1", "emp-3"}, ids(got))
	})

	t.Run("By name", func(t *testing.T) {
		got := Apply(employees, Filters{SortBy: "name"})
		assert.Equal(t, []string{"emp-1", "emp-3", "emp-2"}, ids(got))
	})

	t.Run("By join date", func(t *testing.T) {
		got := Apply(employees, Filters{SortBy: "joinDate", Order: "desc"})
		assert.Equal(t, []string{"emp-1", "emp-2", "emp-3"}, ids(got))
	})

	t.Run("Unrecognized sort key keeps collection order", func(t *testing.T) {
		got := Apply(employees, Filters{SortBy: "email", Order: "desc"})
		assert.Equal(t, []string{"emp-1", "emp-2", "emp-3"}, ids(got))
	})

	t.Run("Stable for equal keys", func(t *testing.T) {
		got := Apply(employees, Filters{SortBy: "department"})
		// "Navy" < "r&d"; внутри R&D исходный порядок сохраняется
		assert.Equal(t, []string{"emp-2", "emp-1", "emp-3"}, ids(got))
	})
}

func TestApply_IsIdempotent(t *testing.T) {
	employees := testEmployees()
	filters := Filters{GradeLevel: "LVL3", SortBy: "salary"}

	first := Apply(employees, filters)
	second := Apply(employees, filters)
	assert.Equal(t, first, second)

	// исходная коллекция не изменяется
	assert.Equal(t, []string{"emp-1", "emp-2", "emp-3"}, ids(employees))
}

func TestEngine_SearchDebounce(t *testing.T) {
	t.Run("Zero debounce applies immediately", func(t *testing.T) {
		engine := NewEngineWithDebounce(0)
		engine.SetSearchTerm("ada")
		assert.Equal(t, "ada", engine.Current().SearchTerm)
	})

	t.Run("Rapid changes coalesce into the last value", func(t *testing.T) {
		engine := NewEngineWithDebounce(30 * time.Millisecond)

		engine.SetSearchTerm("a")
		engine.SetSearchTerm("ad")
		engine.SetSearchTerm("ada")

		// до истечения паузы значение ещё не применено
		assert.Equal(t, "", engine.Current().SearchTerm)

		assert.Eventually(t, func() bool {
			return engine.Current().SearchTerm == "ada"
		}, time.Second, 5*time.Millisecond)
	})
}

func TestEngine_SetCountryClearsOtherFilters(t *testing.T) {
	engine := NewEngineWithDebounce(0)
	engine.SetSearchTerm("ada")
	engine.SetGradeLevel("LVL3")
	require.NoError(t, engine.SetSalaryBounds(floatPtr(70000), floatPtr(90000)))
	engine.SetSort("salary", "desc")

	engine.SetCountry("France")

	current := engine.Current()
	assert.Equal(t, "France", current.Country)
	assert.Empty(t, current.SearchTerm)
	assert.Empty(t, current.GradeLevel)
	assert.Nil(t, current.MinSalary)
	assert.Nil(t, current.MaxSalary)
	// сортировка не фильтр и не сбрасывается
	assert.Equal(t, "salary", current.SortBy)
}

func TestEngine_SetCountryCancelsPendingSearch(t *testing.T) {
	engine := NewEngineWithDebounce(20 * time.Millisecond)

	engine.SetSearchTerm("ada")
	engine.SetCountry("France")

	time.Sleep(60 * time.Millisecond)
	current := engine.Current()
	assert.Empty(t, current.SearchTerm)
	assert.Equal(t, "France", current.Country)
}

func TestEngine_ClearingCountryKeepsItEmpty(t *testing.T) {
	engine := NewEngineWithDebounce(0)
	engine.SetCountry("France")
	engine.SetCountry("")

	// сброс страны не восстанавливает прежние фильтры
	assert.Equal(t, Filters{}, engine.Current())
}

func TestEngine_SetSalaryBounds(t *testing.T) {
	engine := NewEngineWithDebounce(0)

	t.Run("Negative bound rejected", func(t *testing.T) {
		err := engine.SetSalaryBounds(floatPtr(-1), nil)
		require.Error(t, err)
		assert.Equal(t, "Salary cannot be negative", err.Error())
	})

	t.Run("Min above max rejected", func(t *testing.T) {
		err := engine.SetSalaryBounds(floatPtr(90000), floatPtr(70000))
		require.Error(t, err)
		assert.Equal(t, "Minimum salary cannot exceed maximum salary", err.Error())
	})

	t.Run("Valid bounds applied", func(t *testing.T) {
		require.NoError(t, engine.SetSalaryBounds(floatPtr(70000), floatPtr(90000)))
		current := engine.Current()
		assert.Equal(t, 70000.0, *current.MinSalary)
		assert.Equal(t, 90000.0, *current.MaxSalary)
	})
}

func TestEngine_ClearAll(t *testing.T) {
	engine := NewEngineWithDebounce(0)
	engine.SetSearchTerm("ada")
	engine.SetCountry("France")
	engine.SetSort("name", "asc")

	engine.ClearAll()

	assert.Equal(t, Filters{}, engine.Current())
}

func TestEngine_View(t *testing.T) {
	employees := testEmployees()
	engine := NewEngineWithDebounce(0)

	t.Run("Country filter narrows the view", func(t *testing.T) {
		engine.SetCountry("United Kingdom")
		got := engine.View(employees)
		require.Len(t, got, 1)
		assert.Equal(t, "Ada Lovelace", got[0].Name)
	})

	t.Run("Different country yields empty view", func(t *testing.T) {
		engine.SetCountry("Germany")
		assert.Empty(t, engine.View(employees))
	})

	t.Run("Salary bound after clearing country", func(t *testing.T) {
		engine.ClearAll()
		require.NoError(t, engine.SetSalaryBounds(floatPtr(100000), nil))
		assert.Empty(t, engine.View(employees))
	})
}
