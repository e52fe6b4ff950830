package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"comanda_manager/helper"
	"comanda_manager/model"
)

// ExportComandasToText gera o relatório textual das comandas, na ordem
// recebida (o chamador passa a coleção já ordenada). O formato é o mesmo
// aceito por ImportComandasFromText.
func ExportComandasToText(comandas []model.Comanda) string {
	var b strings.Builder
	b.WriteString("*** Relatório de Comandas - Restaurante ***\n")
	b.WriteString(fmt.Sprintf("Data da Exportação: %s\n\n", FormatDateTime(time.Now())))

	for _, comanda := range comandas {
		number := comandaNumberLabel(comanda)
		b.WriteString(fmt.Sprintf("--- Comanda Nº %s ---\n", number))
		b.WriteString(fmt.Sprintf("ID: %s\n", comanda.ID))
		if comanda.CustomerName != "" {
			b.WriteString(fmt.Sprintf("Cliente: %s\n", comanda.CustomerName))
		}
		b.WriteString(fmt.Sprintf("Criada em: %s\n", FormatDateTime(comanda.Timestamp)))
		if !comanda.LastUpdatedTimestamp.IsZero() && !comanda.LastUpdatedTimestamp.Equal(comanda.Timestamp) {
			b.WriteString(fmt.Sprintf("Última Atualização: %s\n", FormatDateTime(comanda.LastUpdatedTimestamp)))
		}
		b.WriteString(fmt.Sprintf("Status: %s\n", comanda.Status))
		b.WriteString(fmt.Sprintf("Total Geral: %s\n\n", FormatPrice(comanda.TotalAmount)))
		b.WriteString("Sessões de Pedidos:\n")

		for i, session := range comanda.Sessions {
			b.WriteString(fmt.Sprintf("  -- Sessão %d (Adicionada em: %s) --\n", i+1, FormatDateTime(session.Timestamp)))
			b.WriteString("    Itens:\n")
			for _, item := range session.Items {
				lineTotal := helper.CalculateLineItemTotal(item)
				b.WriteString(fmt.Sprintf("      - %s (Qtd: %d) | Unit: %s | Line Total: %s\n",
					item.Name, item.Quantity, FormatPrice(item.Price), FormatPrice(lineTotal)))
				for _, addon := range item.SelectedAddons {
					addonLineTotal := addon.AddonItem.Price * float64(addon.Quantity)
					b.WriteString(fmt.Sprintf("        + %s (Qtd: %d) | Unit: %s | Addon Line Total: %s\n",
						addon.AddonItem.Name, addon.Quantity, FormatPrice(addon.AddonItem.Price), FormatPrice(addonLineTotal)))
				}
				if item.Observation != "" {
					b.WriteString(fmt.Sprintf("        Observação: %s\n", item.Observation))
				}
			}
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("--- Fim da Comanda Nº %s ---\n\n", number))
	}

	b.WriteString("*** Fim do Relatório ***\n")
	return b.String()
}

func comandaNumberLabel(c model.Comanda) string {
	if c.ComandaNumber <= 0 {
		return "N/A"
	}
	return strconv.Itoa(c.ComandaNumber)
}
