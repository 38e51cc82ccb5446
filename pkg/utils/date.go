package utils

import "time"

// ParseDate valida uma data yyyy-mm-dd vinda da query string. Valor vazio é aceito.
func ParseDate(dateStr string) (string, error) {
	if dateStr == "" {
		return "", nil
	}

	if _, err := time.Parse(time.DateOnly, dateStr); err != nil {
		return "", err
	}

	return dateStr, nil
}
