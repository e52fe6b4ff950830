package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"comanda_manager/database"
	"comanda_manager/helper"
	"comanda_manager/model"

	"github.com/jinzhu/copier"
)

var (
	ErrEmptyOrder      = errors.New("comanda atual vazia, adicione itens antes de finalizar")
	ErrEmptyAddition   = errors.New("nenhum item para adicionar à comanda")
	ErrComandaNotFound = errors.New("comanda não encontrada")
)

// ComandaStore é a fonte de verdade das comandas finalizadas. Toda
// mutação atualiza a memória e grava a coleção inteira no slot durável
// na mesma chamada, então uma leitura logo após a escrita já vê o novo
// estado. A coleção fica sempre ordenada por número decrescente.
// O mutex protege a coleção e o contador: os handlers rodam um por
// goroutine e o verificador de totais roda em goroutine própria.
type ComandaStore struct {
	mu       sync.Mutex
	storage  database.Storage
	comandas []model.Comanda
	counter  int
}

func NewComandaStore(storage database.Storage) *ComandaStore {
	s := &ComandaStore{storage: storage}
	s.load()
	return s
}

func (s *ComandaStore) load() {
	raw, err := s.storage.Get(context.Background(), database.SlotComandas)
	if err != nil {
		log.Printf("Erro ao carregar comandas do armazenamento: %v", err)
		return
	}
	if raw == "" {
		return
	}

	var stored []model.Comanda
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		log.Printf("Conteúdo inválido no slot de comandas, começando vazio: %v", err)
		return
	}

	for _, comanda := range stored {
		// MigrateLegacyComanda também recalcula o total derivado, então
		// qualquer valor divergente gravado é corrigido já no carregamento
		if !helper.MigrateLegacyComanda(&comanda) {
			log.Printf("Comanda %q sem sessões nem itens, descartada no carregamento", comanda.ID)
			continue
		}
		s.comandas = append(s.comandas, comanda)
		if comanda.ComandaNumber > s.counter {
			s.counter = comanda.ComandaNumber
		}
	}
	s.sortByNumber()
}

func (s *ComandaStore) persist() {
	raw, err := json.Marshal(s.comandas)
	if err != nil {
		log.Printf("Erro ao serializar comandas: %v", err)
		return
	}
	if err := s.storage.Set(context.Background(), database.SlotComandas, string(raw)); err != nil {
		log.Printf("Erro ao gravar comandas no armazenamento: %v", err)
	}
}

func (s *ComandaStore) sortByNumber() {
	sort.SliceStable(s.comandas, func(i, j int) bool {
		return s.comandas[i].ComandaNumber > s.comandas[j].ComandaNumber
	})
}

// List devolve as comandas ordenadas por número decrescente
func (s *ComandaStore) List() []model.Comanda {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Comanda, len(s.comandas))
	copy(out, s.comandas)
	return out
}

func (s *ComandaStore) Get(id string) (model.Comanda, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, comanda := range s.comandas {
		if comanda.ID == id {
			return comanda, true
		}
	}
	return model.Comanda{}, false
}

// Finalize transforma os itens da comanda atual em uma nova comanda com
// uma única sessão, status Pendente e o próximo número sequencial
func (s *ComandaStore) Finalize(items []model.OrderItem, customerName string) (model.Comanda, error) {
	if len(items) == 0 {
		return model.Comanda{}, ErrEmptyOrder
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	now := time.Now()
	comanda := model.Comanda{
		ID:                   helper.NewComandaID(now),
		ComandaNumber:        s.counter,
		Timestamp:            now,
		LastUpdatedTimestamp: now,
		Sessions:             []model.ComandaSession{{Timestamp: now, Items: deepCopyItems(items)}},
		Status:               model.StatusPendente,
		CustomerName:         strings.TrimSpace(customerName),
	}
	comanda.TotalAmount = helper.CalculateComandaGrandTotal(comanda.Sessions)

	s.comandas = append(s.comandas, comanda)
	s.sortByNumber()
	s.persist()
	return comanda, nil
}

// UpdateStatus aceita qualquer valor do conjunto fixo, sem restrição de
// transição entre status
func (s *ComandaStore) UpdateStatus(id string, status string) (model.Comanda, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.comandas {
		if s.comandas[i].ID == id {
			s.comandas[i].Status = status
			s.comandas[i].LastUpdatedTimestamp = time.Now()
			s.persist()
			return s.comandas[i], nil
		}
	}
	return model.Comanda{}, ErrComandaNotFound
}

// AddItems acrescenta uma nova sessão à comanda e recalcula o total
func (s *ComandaStore) AddItems(id string, items []model.OrderItem) (model.Comanda, error) {
	if len(items) == 0 {
		return model.Comanda{}, ErrEmptyAddition
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.comandas {
		if s.comandas[i].ID == id {
			session := model.ComandaSession{Timestamp: time.Now(), Items: deepCopyItems(items)}
			s.comandas[i].Sessions = append(s.comandas[i].Sessions, session)
			s.comandas[i].TotalAmount = helper.CalculateComandaGrandTotal(s.comandas[i].Sessions)
			s.comandas[i].LastUpdatedTimestamp = session.Timestamp
			s.persist()
			return s.comandas[i], nil
		}
	}
	return model.Comanda{}, ErrComandaNotFound
}

// Delete remove a comanda definitivamente
func (s *ComandaStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.comandas {
		if s.comandas[i].ID == id {
			s.comandas = append(s.comandas[:i], s.comandas[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrComandaNotFound
}

// ImportMerge acrescenta as comandas cujo id ainda não existe na coleção.
// Duplicadas (somente por id, nunca por conteúdo) são contadas e puladas.
// O contador sequencial nunca regride: é ressincronizado para o maior
// número conhecido após a mesclagem.
func (s *ComandaStore) ImportMerge(incoming []model.Comanda) model.ImportResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make(map[string]bool, len(s.comandas))
	for _, comanda := range s.comandas {
		existing[comanda.ID] = true
	}

	result := model.ImportResult{}
	added := false
	for _, comanda := range incoming {
		if existing[comanda.ID] {
			result.DuplicateCount++
			continue
		}
		existing[comanda.ID] = true
		s.comandas = append(s.comandas, comanda)
		result.SuccessCount++
		added = true
	}

	for _, comanda := range s.comandas {
		if comanda.ComandaNumber > s.counter {
			s.counter = comanda.ComandaNumber
		}
	}

	if added {
		s.sortByNumber()
		s.persist()
	}
	return result
}

// HealTotals recalcula o total derivado de todas as comandas e corrige
// divergências. Devolve quantas comandas precisaram de correção.
func (s *ComandaStore) HealTotals() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	healed := 0
	for i := range s.comandas {
		expected := helper.CalculateComandaGrandTotal(s.comandas[i].Sessions)
		if s.comandas[i].TotalAmount != expected {
			s.comandas[i].TotalAmount = expected
			healed++
		}
	}
	if healed > 0 {
		s.persist()
	}
	return healed
}

func deepCopyItems(items []model.OrderItem) []model.OrderItem {
	copied := []model.OrderItem{}
	if err := copier.CopyWithOption(&copied, &items, copier.Option{DeepCopy: true}); err != nil {
		log.Printf("Erro ao copiar itens, usando a lista original: %v", err)
		return append([]model.OrderItem{}, items...)
	}
	return copied
}
