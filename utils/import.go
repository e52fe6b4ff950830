package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"comanda_manager/database"
	"comanda_manager/helper"
	"comanda_manager/model"

	"github.com/gosimple/slug"
)

var (
	comandaOpenRegex = regexp.MustCompile(`--- Comanda Nº (\d+|N/A) ---`)
	sessionTimeRegex = regexp.MustCompile(`\(Adicionada em: (.*?)\) --`)
	itemLineRegex    = regexp.MustCompile(`- (.*?) \(Qtd: (\d+)\) \| Unit: (R\$[\d,.]+) \| Line Total: (R\$[\d,.]+)`)
	addonLineRegex   = regexp.MustCompile(`\+ (.*?) \(Qtd: (\d+)\) \| Unit: (R\$[\d,.]+) \| Addon Line Total: (R\$[\d,.]+)`)
)

// comandaImporter acumula o estado da máquina de parsing linha a linha:
// fora de bloco, dentro de bloco de comanda, dentro de bloco de sessão e
// item em acumulação.
type comandaImporter struct {
	comandas []model.Comanda
	errors   []string

	current        model.Comanda
	inComandaBlock bool
	inSessionBlock bool

	session     model.ComandaSession
	sessionOpen bool

	item     model.OrderItem
	itemOpen bool
}

// ImportComandasFromText interpreta o relatório textual e devolve as
// comandas reconstruídas mais a lista de erros, um por linha problemática.
// Linhas malformadas nunca interrompem o parsing; um bloco só é descartado
// quando faltam campos obrigatórios (id, sessão com itens, status e data
// de criação).
func ImportComandasFromText(text string) ([]model.Comanda, []string) {
	p := &comandaImporter{}

	for i, line := range strings.Split(text, "\n") {
		p.consumeLine(i+1, strings.TrimSpace(line))
	}

	if p.inComandaBlock && p.current.ID != "" {
		p.errors = append(p.errors, "Fim do arquivo: Comanda não finalizada pela marca de fim. Tentando salvar.")
		p.flushSession()
		if !p.accept() {
			p.errors = append(p.errors, "Fim do arquivo: Bloco de comanda (EOF) incompleto, não salvo.")
		}
	}

	return p.comandas, p.errors
}

func (p *comandaImporter) consumeLine(lineNumber int, line string) {
	if strings.HasPrefix(line, "--- Comanda Nº") {
		p.openComanda(lineNumber, line)
		return
	}

	if strings.HasPrefix(line, "--- Fim da Comanda Nº") && p.inComandaBlock {
		p.closeComanda(lineNumber)
		return
	}

	if !p.inComandaBlock {
		return
	}

	switch {
	case strings.HasPrefix(line, "ID:"):
		p.current.ID = strings.TrimSpace(strings.TrimPrefix(line, "ID:"))

	case strings.HasPrefix(line, "Cliente:"):
		p.current.CustomerName = strings.TrimSpace(strings.TrimPrefix(line, "Cliente:"))

	case strings.HasPrefix(line, "Criada em:"):
		ts, err := ParseDateTime(strings.TrimPrefix(line, "Criada em:"))
		if err != nil {
			p.errors = append(p.errors, fmt.Sprintf(`Linha %d: Formato de data inválido para "Criada em".`, lineNumber))
			return
		}
		p.current.Timestamp = ts
		if p.current.LastUpdatedTimestamp.IsZero() {
			p.current.LastUpdatedTimestamp = ts
		}

	case strings.HasPrefix(line, "Última Atualização:"):
		ts, err := ParseDateTime(strings.TrimPrefix(line, "Última Atualização:"))
		if err != nil {
			p.errors = append(p.errors, fmt.Sprintf(`Linha %d: Formato de data inválido para "Última Atualização".`, lineNumber))
			return
		}
		p.current.LastUpdatedTimestamp = ts

	case strings.HasPrefix(line, "Status:"):
		status := strings.TrimSpace(strings.TrimPrefix(line, "Status:"))
		if model.IsValidStatus(status) {
			p.current.Status = status
			return
		}
		p.errors = append(p.errors, fmt.Sprintf(`Linha %d: Status "%s" inválido.`, lineNumber, status))
		p.current.Status = model.StatusPendente

	case strings.HasPrefix(line, "Total Geral:"):
		// O total embutido no relatório é apenas metadado: o valor usado é
		// sempre o recalculado a partir das sessões.
		if _, err := ParsePrice(strings.TrimPrefix(line, "Total Geral:")); err != nil {
			p.errors = append(p.errors, fmt.Sprintf(`Linha %d: Formato de preço inválido para "Total Geral".`, lineNumber))
		}

	case strings.HasPrefix(line, "Sessões de Pedidos:"):
		if p.current.Sessions == nil {
			p.current.Sessions = []model.ComandaSession{}
		}

	case strings.HasPrefix(line, "-- Sessão"):
		p.openSession(lineNumber, line)

	case strings.HasPrefix(line, "Itens:"):
		// cabeçalho da lista de itens, nada a acumular

	case strings.HasPrefix(line, "- ") && p.inSessionBlock:
		p.openItem(lineNumber, line)

	case strings.HasPrefix(line, "+ ") && p.inSessionBlock && p.itemOpen && p.item.Name != "":
		p.appendAddon(lineNumber, line)

	case strings.HasPrefix(line, "Observação:") && p.inSessionBlock && p.itemOpen && p.item.Name != "":
		p.item.Observation = strings.TrimSpace(strings.TrimPrefix(line, "Observação:"))
	}
}

func (p *comandaImporter) openComanda(lineNumber int, line string) {
	if p.inComandaBlock && p.current.ID != "" {
		p.errors = append(p.errors, fmt.Sprintf("Linha %d: Nova comanda iniciada sem finalizar a anterior. Tentando salvar a anterior.", lineNumber))
		p.flushSession()
		if !p.accept() {
			p.errors = append(p.errors, fmt.Sprintf("Linha %d: Bloco de comanda anterior (antes de nova) incompleto, não salvo.", lineNumber))
		}
	}

	p.reset()
	p.inComandaBlock = true

	if match := comandaOpenRegex.FindStringSubmatch(line); match != nil && match[1] != "N/A" {
		number, err := strconv.Atoi(match[1])
		if err == nil {
			p.current.ComandaNumber = number
		}
	}
}

func (p *comandaImporter) closeComanda(lineNumber int) {
	p.flushSession()
	if !p.accept() {
		p.errors = append(p.errors, fmt.Sprintf(
			"Linha %d: Bloco de comanda finalizado, mas dados incompletos: id=%q, sessões=%d, status=%q.",
			lineNumber, p.current.ID, len(p.current.Sessions), p.current.Status))
	}
	p.reset()
}

func (p *comandaImporter) openSession(lineNumber int, line string) {
	if p.inSessionBlock {
		p.flushSession()
	}
	p.inSessionBlock = true

	ts := time.Now()
	if match := sessionTimeRegex.FindStringSubmatch(line); match != nil {
		parsed, err := ParseDateTime(match[1])
		if err == nil {
			ts = parsed
		} else {
			p.errors = append(p.errors, fmt.Sprintf("Linha %d: Formato de data inválido para sessão.", lineNumber))
		}
	} else {
		p.errors = append(p.errors, fmt.Sprintf("Linha %d: Formato de data inválido para sessão.", lineNumber))
	}

	p.session = model.ComandaSession{Timestamp: ts}
	p.sessionOpen = true
}

func (p *comandaImporter) openItem(lineNumber int, line string) {
	p.flushItem()

	match := itemLineRegex.FindStringSubmatch(line)
	if match == nil {
		p.errors = append(p.errors, fmt.Sprintf(`Linha %d: Formato de item inválido: "%s"`, lineNumber, line))
		return
	}

	name := match[1]
	quantity, _ := strconv.Atoi(match[2])
	unitPrice, err := ParsePrice(match[3])
	if err != nil {
		p.errors = append(p.errors, fmt.Sprintf(`Linha %d: Formato de preço unitário inválido para item "%s".`, lineNumber, name))
		return
	}

	base := lookupMenuItem(name, unitPrice, "IMPORTADO")
	p.item = model.OrderItem{
		MenuItem:   base,
		InstanceID: helper.NewInstanceID(base.ID),
		Quantity:   quantity,
	}
	p.itemOpen = true
}

func (p *comandaImporter) appendAddon(lineNumber int, line string) {
	match := addonLineRegex.FindStringSubmatch(line)
	if match == nil {
		p.errors = append(p.errors, fmt.Sprintf(`Linha %d: Formato de adicional inválido: "%s"`, lineNumber, line))
		return
	}

	name := match[1]
	quantity, _ := strconv.Atoi(match[2])
	unitPrice, err := ParsePrice(match[3])
	if err != nil {
		p.errors = append(p.errors, fmt.Sprintf(`Linha %d: Formato de preço unitário inválido para adicional "%s".`, lineNumber, name))
		return
	}

	p.item.SelectedAddons = append(p.item.SelectedAddons, model.AddonSelection{
		AddonItem: lookupMenuItem(name, unitPrice, "ADICIONAIS"),
		Quantity:  quantity,
	})
}

func (p *comandaImporter) flushItem() {
	if p.itemOpen && p.item.Name != "" {
		p.session.Items = append(p.session.Items, p.item)
	}
	p.item = model.OrderItem{}
	p.itemOpen = false
}

func (p *comandaImporter) flushSession() {
	p.flushItem()
	if p.sessionOpen && len(p.session.Items) > 0 {
		p.current.Sessions = append(p.current.Sessions, p.session)
	}
	p.session = model.ComandaSession{}
	p.sessionOpen = false
}

// accept valida os campos obrigatórios e, quando completos, recalcula o
// total e guarda a comanda no resultado
func (p *comandaImporter) accept() bool {
	if p.current.ID == "" || len(p.current.Sessions) == 0 || p.current.Status == "" || p.current.Timestamp.IsZero() {
		return false
	}
	p.current.TotalAmount = helper.CalculateComandaGrandTotal(p.current.Sessions)
	p.comandas = append(p.comandas, p.current)
	return true
}

func (p *comandaImporter) reset() {
	p.current = model.Comanda{}
	p.session = model.ComandaSession{}
	p.item = model.OrderItem{}
	p.inComandaBlock = false
	p.inSessionBlock = false
	p.sessionOpen = false
	p.itemOpen = false
}

// lookupMenuItem tenta enriquecer o item pelo cardápio conhecido (nome e
// preço exatos); sem correspondência, sintetiza um item marcado com a
// categoria indicada.
func lookupMenuItem(name string, price float64, fallbackCategory string) model.MenuItem {
	if found, ok := database.FindMenuItemByNameAndPrice(name, price); ok {
		found.AvailableAddons = nil
		return found
	}
	return model.MenuItem{
		ID:       fmt.Sprintf("imported_%s_%v", slug.Make(name), price),
		Name:     name,
		Price:    price,
		Category: fallbackCategory,
	}
}
