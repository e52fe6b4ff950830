package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"

	"comanda_manager/database"
	"comanda_manager/helper"
	"comanda_manager/model"
)

var (
	ErrOrderItemNotFound = errors.New("item não encontrado na comanda atual")
	ErrNoPendingAddons   = errors.New("nenhum item aguardando seleção de adicionais")
)

// CurrentOrderStore guarda a comanda em montagem antes da finalização.
// O modo é uma variante: ou monta uma comanda nova, ou adiciona itens a
// uma comanda existente (addingToComandaID preenchido) — nunca os dois.
// Os itens são regravados no slot durável a cada mudança; a seleção de
// adicionais pendente é transitória e não persiste. O mutex protege o
// estado inteiro: cada requisição roda em goroutine própria.
type CurrentOrderStore struct {
	mu                sync.Mutex
	storage           database.Storage
	items             []model.OrderItem
	addingToComandaID string
	pendingAddonItem  *model.MenuItem
}

func NewCurrentOrderStore(storage database.Storage) *CurrentOrderStore {
	s := &CurrentOrderStore{storage: storage}
	s.load()
	return s
}

func (s *CurrentOrderStore) load() {
	raw, err := s.storage.Get(context.Background(), database.SlotComandaAtual)
	if err != nil {
		log.Printf("Erro ao carregar a comanda atual do armazenamento: %v", err)
		return
	}
	if raw == "" {
		return
	}
	var stored []model.OrderItem
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		log.Printf("Conteúdo inválido no slot da comanda atual, começando vazia: %v", err)
		return
	}
	s.items = stored
}

func (s *CurrentOrderStore) persist() {
	raw, err := json.Marshal(s.items)
	if err != nil {
		log.Printf("Erro ao serializar a comanda atual: %v", err)
		return
	}
	if err := s.storage.Set(context.Background(), database.SlotComandaAtual, string(raw)); err != nil {
		log.Printf("Erro ao gravar a comanda atual no armazenamento: %v", err)
	}
}

func (s *CurrentOrderStore) Items() []model.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.OrderItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CurrentOrderStore) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return helper.CalculateItemsTotal(s.items)
}

// AddingTo devolve a comanda alvo quando o modo é de adição
func (s *CurrentOrderStore) AddingTo() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addingToComandaID, s.addingToComandaID != ""
}

func (s *CurrentOrderStore) EnterAppendMode(comandaID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addingToComandaID = comandaID
}

func (s *CurrentOrderStore) ExitAppendMode() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addingToComandaID = ""
}

// appendItem insere a linha nova; chamado com o mutex já adquirido
func (s *CurrentOrderStore) appendItem(menuItem model.MenuItem, addons []model.AddonSelection) model.OrderItem {
	item := model.OrderItem{
		MenuItem:       menuItem,
		InstanceID:     helper.NewInstanceID(menuItem.ID),
		Quantity:       1,
		SelectedAddons: addons,
	}
	item.AvailableAddons = nil
	s.items = append(s.items, item)
	s.persist()
	return item
}

// AddItem insere sempre uma linha nova, com id de instância próprio,
// quantidade 1 e os adicionais informados
func (s *CurrentOrderStore) AddItem(menuItem model.MenuItem, addons []model.AddonSelection) model.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendItem(menuItem, addons)
}

// QuickAdd aplica a única regra de deduplicação da comanda atual: item
// sem adicionais configuráveis, com linha idêntica já presente (mesmo id
// de catálogo, sem adicionais, sem observação), só incrementa a
// quantidade. Linhas com adicionais ou observação nunca se fundem.
func (s *CurrentOrderStore) QuickAdd(menuItem model.MenuItem) (model.OrderItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !menuItem.HasAddons() {
		for i := range s.items {
			if s.items[i].MenuItem.ID == menuItem.ID &&
				len(s.items[i].SelectedAddons) == 0 &&
				s.items[i].Observation == "" {
				s.items[i].Quantity++
				s.persist()
				return s.items[i], true
			}
		}
	}
	return s.appendItem(menuItem, nil), false
}

// StartAddonSelection marca o item aguardando a escolha de adicionais
func (s *CurrentOrderStore) StartAddonSelection(menuItem model.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := menuItem
	s.pendingAddonItem = &pending
}

func (s *CurrentOrderStore) PendingAddonItem() (model.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingAddonItem == nil {
		return model.MenuItem{}, false
	}
	return *s.pendingAddonItem, true
}

// ConfirmAddonSelection insere o item pendente com os adicionais escolhidos
func (s *CurrentOrderStore) ConfirmAddonSelection(addons []model.AddonSelection) (model.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingAddonItem == nil {
		return model.OrderItem{}, ErrNoPendingAddons
	}
	item := s.appendItem(*s.pendingAddonItem, addons)
	s.pendingAddonItem = nil
	return item, nil
}

// SkipAddonSelection insere o item pendente sem nenhum adicional
func (s *CurrentOrderStore) SkipAddonSelection() (model.OrderItem, error) {
	return s.ConfirmAddonSelection(nil)
}

func (s *CurrentOrderStore) CancelAddonSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingAddonItem = nil
}

// UpdateQuantity ajusta a quantidade exata da linha; zero ou negativo
// remove a linha da comanda atual
func (s *CurrentOrderStore) UpdateQuantity(instanceID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].InstanceID == instanceID {
			if quantity <= 0 {
				s.items = append(s.items[:i], s.items[i+1:]...)
			} else {
				s.items[i].Quantity = quantity
			}
			s.persist()
			return nil
		}
	}
	return ErrOrderItemNotFound
}

// UpdateObservation grava a observação aparada; texto vazio limpa
func (s *CurrentOrderStore) UpdateObservation(instanceID string, observation string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].InstanceID == instanceID {
			s.items[i].Observation = strings.TrimSpace(observation)
			s.persist()
			return nil
		}
	}
	return ErrOrderItemNotFound
}

func (s *CurrentOrderStore) RemoveItem(instanceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].InstanceID == instanceID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrOrderItemNotFound
}

// Clear esvazia a comanda atual sem mexer no modo
func (s *CurrentOrderStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []model.OrderItem{}
	s.persist()
}

// CancelAddition esvazia a comanda atual e volta ao modo de comanda nova
func (s *CurrentOrderStore) CancelAddition() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []model.OrderItem{}
	s.addingToComandaID = ""
	s.persist()
}
