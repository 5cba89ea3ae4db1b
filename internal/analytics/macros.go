package analytics

import "fittrack/fitness-tracker/internal/domain"

// Standard Atwater factors, kcal per gram.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// MacroPercentages is the share each macronutrient contributes to the
// macro-derived calorie total, in percent.
type MacroPercentages struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// MacroBreakdown computes the calorie contribution of each macronutrient
// using fixed per-gram factors. A meal with no macros yields all zeros.
func MacroBreakdown(n domain.Nutrition) MacroPercentages {
	proteinCal := n.Protein * kcalPerGramProtein
	carbsCal := n.Carbs * kcalPerGramCarbs
	fatCal := n.Fat * kcalPerGramFat

	total := proteinCal + carbsCal + fatCal
	if total == 0 {
		return MacroPercentages{}
	}
	return MacroPercentages{
		Protein: proteinCal / total * 100,
		Carbs:   carbsCal / total * 100,
		Fat:     fatCal / total * 100,
	}
}
