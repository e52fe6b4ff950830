package model

import "time"

// Status possíveis de uma comanda. Qualquer transição é permitida,
// não existe ordem obrigatória entre eles.
const (
	StatusPendente           = "Pendente"
	StatusEmPreparo          = "Em Preparo"
	StatusProntoParaRetirada = "Pronto para Retirada"
	StatusConcluido          = "Concluído"
	StatusCancelado          = "Cancelado"
)

var AllComandaStatuses = []string{
	StatusPendente,
	StatusEmPreparo,
	StatusProntoParaRetirada,
	StatusConcluido,
	StatusCancelado,
}

// IsValidStatus verifica se o valor pertence ao conjunto fixo de status
func IsValidStatus(status string) bool {
	for _, s := range AllComandaStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ComandaSession é um lote imutável de itens adicionados de uma vez à
// comanda (a finalização inicial ou cada adição posterior)
type ComandaSession struct {
	Timestamp time.Time   `json:"timestamp"`
	Items     []OrderItem `json:"items"`
}

// Comanda é um pedido finalizado e persistido.
// TotalAmount é derivado: sempre recalculado a partir das sessões.
type Comanda struct {
	ID                   string           `json:"id"`
	ComandaNumber        int              `json:"comandaNumber,omitempty"`
	Timestamp            time.Time        `json:"timestamp"`
	LastUpdatedTimestamp time.Time        `json:"lastUpdatedTimestamp,omitempty"`
	Sessions             []ComandaSession `json:"sessions"`
	TotalAmount          float64          `json:"totalAmount"`
	Status               string           `json:"status"`
	CustomerName         string           `json:"customerName,omitempty"`

	// Formato legado: comandas antigas gravadas com lista única de itens,
	// antes de existirem sessões. Migrado no carregamento.
	LegacyItems []OrderItem `json:"items,omitempty"`
}

type FinalizeComandaInput struct {
	CustomerName string `json:"customerName"`
}

type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

type ImportResult struct {
	SuccessCount   int      `json:"successCount"`
	DuplicateCount int      `json:"duplicateCount"`
	Errors         []string `json:"errors,omitempty"`
}
