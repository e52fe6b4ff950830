package helper

import (
	"fmt"
	"time"

	"comanda_manager/model"

	"github.com/google/uuid"
)

// NewComandaID gera o id único da comanda: instante de criação em
// milissegundos + sufixo aleatório. Nunca é reutilizado.
func NewComandaID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:9])
}

// NewInstanceID gera o id da linha do pedido, distinto do id de catálogo
func NewInstanceID(catalogID string) string {
	if catalogID == "" {
		catalogID = "item"
	}
	return fmt.Sprintf("%s_%d_%s", catalogID, time.Now().UnixMilli(), uuid.NewString()[:8])
}

// MigrateLegacyComanda converte comandas gravadas no formato antigo
// (lista única de itens, sem sessões) para o formato de sessões e
// recalcula o total. Retorna false quando a comanda não tem nem sessões
// nem itens e deve ser descartada no carregamento.
func MigrateLegacyComanda(c *model.Comanda) bool {
	if len(c.Sessions) == 0 && len(c.LegacyItems) > 0 {
		ts := c.Timestamp
		if ts.IsZero() {
			ts = time.Now()
		}
		c.Sessions = []model.ComandaSession{{Timestamp: ts, Items: c.LegacyItems}}
		c.LegacyItems = nil
	}
	if len(c.Sessions) == 0 {
		return false
	}
	c.TotalAmount = CalculateComandaGrandTotal(c.Sessions)
	return true
}
