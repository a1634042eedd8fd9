package utils

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPeriod indica un período fuera del formato YYYY-MM
var ErrInvalidPeriod = errors.New("período inválido: se espera formato YYYY-MM")

// ParsePeriod valida y descompone un período en formato YYYY-MM
func ParsePeriod(period string) (year int, month int, err error) {
	if _, parseErr := time.Parse("2006-01", period); parseErr != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}

	fmt.Sscanf(period, "%d-%d", &year, &month)
	return year, month, nil
}

// PreviousMonth devuelve el mes anterior al par (year, month) dado
func PreviousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}
