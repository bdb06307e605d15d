package data

import "lcoe-plot/internal/model"

// PrepareOptions controls which estimates reach the plot and how they are
// grouped.
type PrepareOptions struct {
	// ExcludedTypes lists technology types outside the scope of the
	// plot (depreciated plants, immature technologies, CCS variants...).
	ExcludedTypes []string
	// CategoryRenames maps a Type to the category it should be plotted
	// under when the plot's categories differ from the dataset's (e.g.
	// splitting Solar into "Solar PV" and "Solar,\nNon-PV"). Types not
	// listed keep their dataset category.
	CategoryRenames map[string]string
}

// Prepare filters, renames, imputes, and groups estimates for plotting.
// Group order follows first appearance in the input.
func Prepare(estimates []model.Estimate, opts PrepareOptions) []model.Group {
	excluded := map[string]bool{}
	for _, t := range opts.ExcludedTypes {
		excluded[t] = true
	}

	var order []string
	values := map[string][]float64{}
	for _, est := range estimates {
		if excluded[est.Type] {
			continue
		}
		cat := est.Category
		if renamed, ok := opts.CategoryRenames[est.Type]; ok {
			cat = renamed
		}
		if _, seen := values[cat]; !seen {
			order = append(order, cat)
		}
		vals := est.Imputed().Values()
		values[cat] = append(values[cat], vals[:]...)
	}

	groups := make([]model.Group, 0, len(order))
	for _, cat := range order {
		groups = append(groups, model.Group{Name: cat, Values: values[cat]})
	}
	return groups
}
