package utils

import (
	"errors"
	"regexp"
	"strconv"
	"time"
)

var dateTimeRegex = regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})\s+(\d{2}):(\d{2})`)

// FormatDateTime formata data e hora no padrão brasileiro, sem segundos
func FormatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// ParseDateTime lê "DD/MM/YYYY HH:MM" com espaço em branco flexível
func ParseDateTime(dateTimeStr string) (time.Time, error) {
	parts := dateTimeRegex.FindStringSubmatch(dateTimeStr)
	if parts == nil {
		return time.Time{}, errors.New("formato de data inválido")
	}
	day, _ := strconv.Atoi(parts[1])
	month, _ := strconv.Atoi(parts[2])
	year, _ := strconv.Atoi(parts[3])
	hour, _ := strconv.Atoi(parts[4])
	minute, _ := strconv.Atoi(parts[5])

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, errors.New("formato de data inválido")
	}
	return t, nil
}
