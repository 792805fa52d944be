// pkg/validate/agecategory.go
package validate

// ageBracket maps an inclusive upper bound in years to a category label.
type ageBracket struct {
	maxYears float64
	label    string
}

// Brackets in ascending order; the first satisfied upper bound wins.
var ageBrackets = []ageBracket{
	{1.5, "Newborn to 18 months"},
	{3, "18 months to 3 years"},
	{5, "2 to 5 years"},
	{6, "3 to 6 years"},
	{7, "4 to 7 years"},
	{8, "5 to 8 years"},
	{9, "6 to 9 years"},
	{10, "7 to 10 years"},
	{11, "8 to 11 years"},
	{12, "9 to 12 years"},
	{13, "10 to Early Teens"},
}

// ResolveAgeCategory classifies an age range by its upper bound in months.
// Both bounds must be present for inference; otherwise the result is blank.
// Upper bounds are inclusive, so 18 months still lands in the first bracket.
func ResolveAgeCategory(minMonths, maxMonths *int64) string {
	if minMonths == nil || maxMonths == nil {
		return ""
	}

	endYears := float64(*maxMonths) / 12.0
	for _, b := range ageBrackets {
		if endYears <= b.maxYears {
			return b.label
		}
	}
	return "Preteens to Older Teens"
}
