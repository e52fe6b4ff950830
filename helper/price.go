package helper

import (
	"comanda_manager/model"
)

// CalculateLineItemTotal calcula o total da linha:
// (preço base + soma dos adicionais) * quantidade.
// Quantidade de adicional <= 0 não contribui, nunca subtrai.
func CalculateLineItemTotal(item model.OrderItem) float64 {
	addonsTotal := 0.0
	for _, addon := range item.SelectedAddons {
		if addon.Quantity <= 0 {
			continue
		}
		addonsTotal += addon.AddonItem.Price * float64(addon.Quantity)
	}
	return (item.Price + addonsTotal) * float64(item.Quantity)
}

// CalculateItemsTotal soma o total de uma lista de itens
func CalculateItemsTotal(items []model.OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		total += CalculateLineItemTotal(item)
	}
	return total
}

// CalculateComandaGrandTotal soma os totais de todas as sessões da comanda
func CalculateComandaGrandTotal(sessions []model.ComandaSession) float64 {
	total := 0.0
	for _, session := range sessions {
		total += CalculateItemsTotal(session.Items)
	}
	return total
}
