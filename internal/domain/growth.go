package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// GrowthRate é a variação mês a mês (current - previous) / previous.
// É uma razão, não um percentual. Valid == false representa "sem base de
// comparação" e nunca deve ser exibido como 0%.
type GrowthRate struct {
	Ratio float64
	Valid bool
}

// NoGrowthRate é o valor nulo de GrowthRate
var NoGrowthRate = GrowthRate{}

// NewGrowthRate calcula a variação entre current e previous. Sem período
// anterior, ou com período anterior zerado, o resultado é nulo.
func NewGrowthRate(current, previous decimal.Decimal, hasPrevious bool) GrowthRate {
	if !hasPrevious || previous.IsZero() {
		return NoGrowthRate
	}

	ratio := current.Sub(previous).Div(previous)
	return GrowthRate{Ratio: ratio.InexactFloat64(), Valid: true}
}

// Ptr retorna o valor como ponteiro, nil quando não há base de comparação
func (g GrowthRate) Ptr() *float64 {
	if !g.Valid {
		return nil
	}
	ratio := g.Ratio
	return &ratio
}

func (g GrowthRate) MarshalJSON() ([]byte, error) {
	if !g.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(g.Ratio, 'f', -1, 64)), nil
}

func (g *GrowthRate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*g = NoGrowthRate
		return nil
	}

	ratio, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}

	*g = GrowthRate{Ratio: ratio, Valid: true}
	return nil
}
