package countries

// DefaultCountries встроенный список стран, который используется,
// когда внешний справочник недоступен
func DefaultCountries() []string {
	return []string{
		"Afghanistan", "Albania", "Algeria", "Argentina", "Australia",
		"Austria", "Bangladesh", "Belgium", "Brazil", "Canada",
		"Chile", "China", "Colombia", "Denmark", "Egypt",
		"Finland", "France", "Germany", "Ghana", "Greece",
		"India", "Indonesia", "Iran", "Iraq", "Ireland",
		"Israel", "Italy", "Japan", "Jordan", "Kenya",
		"Malaysia", "Mexico", "Morocco", "Netherlands", "New Zealand",
		"Nigeria", "Norway", "Pakistan", "Philippines", "Poland",
		"Portugal", "Russia", "Saudi Arabia", "Singapore", "South Africa",
		"South Korea", "Spain", "Sweden", "Switzerland", "Thailand",
		"Turkey", "Ukraine", "United Arab Emirates", "United Kingdom", "United States",
		"Venezuela", "Vietnam",
	}
}
