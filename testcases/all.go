package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference mask filenames.
var All = map[string][]TestCase{
	"polygon":   polygonCases,
	"rectangle": rectangleCases,
	"regular":   regularCases,
	"star":      starCases,
	"clip":      clipCases,
}
