package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var priceRegex = regexp.MustCompile(`R\$([\d,.]+)`)

// FormatPrice formata no padrão brasileiro: R$ com duas casas e vírgula
func FormatPrice(price float64) string {
	return "R$" + strings.Replace(fmt.Sprintf("%.2f", price), ".", ",", 1)
}

// ParsePrice lê um valor no formato "R$12,50" (pontos de milhar aceitos)
func ParsePrice(priceStr string) (float64, error) {
	match := priceRegex.FindStringSubmatch(priceStr)
	if match == nil {
		return 0, errors.New("formato de preço inválido")
	}
	normalized := strings.ReplaceAll(match[1], ".", "")
	normalized = strings.Replace(normalized, ",", ".", 1)
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, errors.New("formato de preço inválido")
	}
	return value, nil
}
