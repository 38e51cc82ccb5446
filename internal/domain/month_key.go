package domain

import (
	"fmt"
	"strconv"
	"time"
)

// MonthKeyLayout é o formato textual de um MonthKey (yyyy-mm)
const MonthKeyLayout = "2006-01"

// MonthKey identifica um mês do calendário. Toda a aritmética de meses
// (próximo, anterior, comparação e intervalos) passa por este tipo.
type MonthKey struct {
	Year  int
	Month time.Month
}

// NewMonthKey cria um MonthKey normalizando meses fora de 1..12
func NewMonthKey(year int, month time.Month) MonthKey {
	return monthKeyFromIndex(year*12 + int(month) - 1)
}

// ParseMonthKey converte uma string yyyy-mm em MonthKey
func ParseMonthKey(value string) (MonthKey, error) {
	if len(value) != 7 || value[4] != '-' || !isDigits(value[:4]) || !isDigits(value[5:]) {
		return MonthKey{}, fmt.Errorf("mês inválido %q: use o formato yyyy-mm", value)
	}

	year, err := strconv.Atoi(value[:4])
	if err != nil {
		return MonthKey{}, fmt.Errorf("ano inválido em %q: %w", value, err)
	}

	month, err := strconv.Atoi(value[5:])
	if err != nil || month < 1 || month > 12 {
		return MonthKey{}, fmt.Errorf("mês inválido em %q", value)
	}

	return MonthKey{Year: year, Month: time.Month(month)}, nil
}

// isDigits rejeita sinais e espaços que strconv.Atoi aceitaria
func isDigits(value string) bool {
	for _, c := range value {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// MonthKeyFromDate extrai o MonthKey do prefixo yyyy-mm de uma data.
// Retorna false quando a data está vazia ou não pode ser agrupada.
func MonthKeyFromDate(date string) (MonthKey, bool) {
	if len(date) < 7 {
		return MonthKey{}, false
	}

	key, err := ParseMonthKey(date[:7])
	if err != nil {
		return MonthKey{}, false
	}

	return key, true
}

func monthKeyFromIndex(index int) MonthKey {
	year := index / 12
	month := index % 12
	if month < 0 {
		month += 12
		year--
	}

	return MonthKey{Year: year, Month: time.Month(month + 1)}
}

func (m MonthKey) index() int {
	return m.Year*12 + int(m.Month) - 1
}

// Next retorna o mês seguinte, virando o ano em dezembro
func (m MonthKey) Next() MonthKey {
	return monthKeyFromIndex(m.index() + 1)
}

// Prev retorna o mês anterior, voltando o ano em janeiro
func (m MonthKey) Prev() MonthKey {
	return monthKeyFromIndex(m.index() - 1)
}

// Compare retorna -1, 0 ou 1 conforme m é anterior, igual ou posterior a other
func (m MonthKey) Compare(other MonthKey) int {
	switch a, b := m.index(), other.index(); {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (m MonthKey) Before(other MonthKey) bool {
	return m.Compare(other) < 0
}

func (m MonthKey) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

func (m MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// FirstDay retorna o primeiro dia do mês em formato yyyy-mm-dd
func (m MonthKey) FirstDay() string {
	return m.String() + "-01"
}

// LastDay retorna o último dia do mês em formato yyyy-mm-dd
func (m MonthKey) LastDay() string {
	last := time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC)
	return last.Format(time.DateOnly)
}

// MarshalText permite usar MonthKey diretamente em JSON como "yyyy-mm"
func (m MonthKey) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *MonthKey) UnmarshalText(text []byte) error {
	key, err := ParseMonthKey(string(text))
	if err != nil {
		return err
	}

	*m = key
	return nil
}

// MonthRange gera a sequência de meses de start até end, inclusive.
// Um intervalo invertido resulta em uma sequência vazia.
func MonthRange(start, end MonthKey) []MonthKey {
	if end.Before(start) {
		return []MonthKey{}
	}

	months := make([]MonthKey, 0, end.index()-start.index()+1)
	for current := start; !end.Before(current); current = current.Next() {
		months = append(months, current)
	}

	return months
}
