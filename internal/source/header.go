package source

import (
	"regexp"
	"strings"

	"github.com/theirongolddev/bizlens/internal/model"
)

// field is a dataset column a header can map to.
type field int

const (
	fieldIgnored field = iota
	fieldMonth
	fieldSales
	fieldExpenses
	fieldCustomers
	fieldOptional
)

type binding struct {
	field  field
	column model.Column
}

// Header names after unit stripping and normalization.
var headerAliases = map[string]binding{
	"month":              {field: fieldMonth},
	"period":             {field: fieldMonth},
	"sales":              {field: fieldSales},
	"revenue":            {field: fieldSales},
	"expenses":           {field: fieldExpenses},
	"expense":            {field: fieldExpenses},
	"customers":          {field: fieldCustomers},
	"quarter":            {fieldOptional, model.ColQuarter},
	"new customers":      {fieldOptional, model.ColNewCustomers},
	"inventory cost":     {fieldOptional, model.ColInventoryCost},
	"marketing spend":    {fieldOptional, model.ColMarketingSpend},
	"marketing":          {fieldOptional, model.ColMarketingSpend},
	"employee cost":      {fieldOptional, model.ColEmployeeCost},
	"operational cost":   {fieldOptional, model.ColOperationalCost},
	"revenue growth":     {fieldOptional, model.ColRevenueGrowth},
	"customer retention": {fieldOptional, model.ColRetention},
	"retention":          {fieldOptional, model.ColRetention},
}

var unitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(.*?)\s*\(([^)]+)\)\s*$`),  // Sales (INR)
	regexp.MustCompile(`^(.*?)\s*\[([^\]]+)\]\s*$`), // Sales [USD]
	regexp.MustCompile(`(?i)^(.*?)[_\s-]+(%|pct|inr|usd|eur)$`),
}

// splitUnits separates a trailing unit from a header name:
// "Sales (INR)" gives ("Sales", "INR").
func splitUnits(name string) (clean, unit string) {
	s := strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	for _, re := range unitPatterns {
		if m := re.FindStringSubmatch(s); len(m) == 3 {
			base, u := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
			if base != "" && u != "" {
				return base, u
			}
		}
	}
	return s, ""
}

// normalizeHeader lowercases a header, drops its unit and folds
// underscores, dashes and repeated spaces into single spaces.
func normalizeHeader(name string) string {
	clean, _ := splitUnits(name)
	clean = strings.ToLower(clean)
	clean = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(clean)
	return strings.Join(strings.Fields(clean), " ")
}

func bindHeader(name string) binding {
	return headerAliases[normalizeHeader(name)]
}

// salesUnit returns the unit attached to the sales column header.
func salesUnit(header []string) string {
	for _, h := range header {
		if bindHeader(h).field == fieldSales {
			_, unit := splitUnits(h)
			return unit
		}
	}
	return ""
}
