package employee

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Tenure возвращает стаж сотрудника в виде строки
// "N years, M months" / "M months" / "D days"
func Tenure(joinDate string) string {
	if joinDate == "" {
		return "N/A"
	}
	start, err := time.Parse(JoinDateLayout, joinDate)
	if err != nil {
		return "N/A"
	}

	diffDays := int(math.Ceil(math.Abs(time.Since(start).Hours()) / 24))
	years := diffDays / 365
	months := (diffDays % 365) / 30

	switch {
	case years > 0:
		result := fmt.Sprintf("%d year%s", years, plural(years))
		if months > 0 {
			result += fmt.Sprintf(", %d month%s", months, plural(months))
		}
		return result
	case months > 0:
		return fmt.Sprintf("%d month%s", months, plural(months))
	default:
		return fmt.Sprintf("%d day%s", diffDays, plural(diffDays))
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

// FormatMoney форматирует сумму с разделителями тысяч: 70000 -> "70,000"
func FormatMoney(amount float64) string {
	formatted := strconv.FormatFloat(amount, 'f', -1, 64)
	intPart := formatted
	fracPart := ""
	if dot := strings.IndexByte(formatted, '.'); dot >= 0 {
		intPart, fracPart = formatted[:dot], formatted[dot:]
	}

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	return sign + strings.Join(groups, ",") + fracPart
}

// BuildStats агрегирует статистику по коллекции:
// распределение по департаментам, странам и грейдам,
// а также количество принятых за последний месяц
func BuildStats(employees []Entity) StatsResponse {
	stats := StatsResponse{
		Total:       len(employees),
		Departments: map[string]int{},
		Countries:   map[string]int{},
		GradeLevels: map[string]int{},
	}

	oneMonthAgo := time.Now().AddDate(0, -1, 0)

	for _, emp := range employees {
		stats.Departments[emp.Department]++
		stats.Countries[emp.Country]++
		if emp.GradeLevel != "" {
			stats.GradeLevels[emp.GradeLevel]++
		}
		if joined, err := time.Parse(JoinDateLayout, emp.JoinDate); err == nil && joined.After(oneMonthAgo) {
			stats.RecentJoins++
		}
	}
	return stats
}

// csvHeader порядок колонок выгрузки
var csvHeader = []string{
	"Name", "Email", "Role", "Department", "Country", "State",
	"Address", "Grade Level", "Phone", "Join Date", "Salary",
	"Emergency Contact", "Emergency Phone", "Skills", "Bio",
}

// ExportCSV сериализует коллекцию в CSV.
// Каждое значение заключается в двойные кавычки,
// кавычки внутри значения удваиваются.
func ExportCSV(employees []Entity) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(csvHeader, ","))

	for _, emp := range employees {
		fields := []string{
			emp.Name,
			emp.Email,
			emp.Role,
			emp.Department,
			emp.Country,
			emp.State,
			emp.Address,
			emp.GradeLevel,
			emp.Phone,
			emp.JoinDate,
			strconv.FormatFloat(emp.Salary, 'f', -1, 64),
			emp.EmergencyContact,
			emp.EmergencyPhone,
			emp.Skills,
			emp.Bio,
		}
		quoted := make([]string, len(fields))
		for i, field := range fields {
			quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
		}
		sb.WriteString("\n")
		sb.WriteString(strings.Join(quoted, ","))
	}
	return sb.String()
}
