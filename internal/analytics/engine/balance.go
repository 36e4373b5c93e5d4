package engine

import "github.com/2beens/fitstats/internal/nutrition"

var balanceColors = struct {
	protein, fat, carbs string
}{
	protein: "#3F83F8",
	fat:     "#F59E0B",
	carbs:   "#10B981",
}

// BalanceSlice is one macro's share of energy intake.
type BalanceSlice struct {
	Name  string  `json:"name"`
	Macro string  `json:"macro"`
	Value float64 `json:"value"`
	Ratio int     `json:"ratio"`
	Color string  `json:"color"`
}

// PFCBalanceChart is a pie of energy from protein, fat and carbs.
// Macros contributing no energy get no slice.
func PFCBalanceChart(protein, fat, carbs float64) *ChartProps[BalanceSlice] {
	pKcal, fKcal, cKcal := nutrition.Energy(protein, fat, carbs)
	ratio := nutrition.PFCRatio(protein, fat, carbs)

	candidates := []BalanceSlice{
		{Name: "P", Macro: "protein", Value: Round1(pKcal), Ratio: ratio.Protein, Color: balanceColors.protein},
		{Name: "F", Macro: "fat", Value: Round1(fKcal), Ratio: ratio.Fat, Color: balanceColors.fat},
		{Name: "C", Macro: "carbs", Value: Round1(cKcal), Ratio: ratio.Carbs, Color: balanceColors.carbs},
	}
	data := make([]BalanceSlice, 0, len(candidates))
	for _, s := range candidates {
		if s.Value > 0 {
			data = append(data, s)
		}
	}

	return &ChartProps[BalanceSlice]{
		Data: data,
		XAxis: XAxis{
			DataKey: "name",
		},
		YAxis: YAxis{
			Domain: [2]Bound{Fixed(0), Auto},
			Label:  "Calories",
		},
		Series: []Series{{
			Type:    ChartTypePie,
			DataKey: "value",
			Name:    "PFC Balance",
			Color:   balanceColors.protein,
		}},
	}
}
