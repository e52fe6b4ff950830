package store

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"comanda_manager/database"
	"comanda_manager/model"
)

func orderItem(id string, name string, price float64, quantity int) model.OrderItem {
	return model.OrderItem{
		MenuItem:   model.MenuItem{ID: id, Name: name, Price: price, Category: "TESTE"},
		InstanceID: id + "_linha",
		Quantity:   quantity,
	}
}

func TestFinalizeEmptyOrder(t *testing.T) {
	s := NewComandaStore(newMemoryStorage())

	_, err := s.Finalize(nil, "")
	if !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("esperava ErrEmptyOrder, veio %v", err)
	}
	if len(s.List()) != 0 {
		t.Fatalf("finalização vazia não pode criar comanda")
	}
}

func TestFinalizeAssignsSequentialNumbers(t *testing.T) {
	storage := newMemoryStorage()
	s := NewComandaStore(storage)

	first, err := s.Finalize([]model.OrderItem{orderItem("be_agua", "ÁGUA MINERAL", 5.00, 2)}, "  Maria  ")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	second, err := s.Finalize([]model.OrderItem{orderItem("be_cha_gelado", "CHÁ GELADO DA CASA", 8.00, 1)}, "")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if first.ComandaNumber != 1 || second.ComandaNumber != 2 {
		t.Errorf("números esperados 1 e 2, vieram %d e %d", first.ComandaNumber, second.ComandaNumber)
	}
	if first.Status != model.StatusPendente {
		t.Errorf("status inicial deve ser Pendente, veio %s", first.Status)
	}
	if first.CustomerName != "Maria" {
		t.Errorf("nome do cliente deve ser aparado, veio %q", first.CustomerName)
	}
	if first.TotalAmount != 10.00 {
		t.Errorf("total esperado 10.00, veio %.2f", first.TotalAmount)
	}

	list := s.List()
	if list[0].ComandaNumber != 2 {
		t.Errorf("coleção deve ficar ordenada por número decrescente")
	}

	if storage.data[database.SlotComandas] == "" {
		t.Errorf("finalização deve persistir a coleção no slot durável")
	}
}

func TestFinalizeCopiesDraftItems(t *testing.T) {
	s := NewComandaStore(newMemoryStorage())

	items := []model.OrderItem{orderItem("be_agua", "ÁGUA MINERAL", 5.00, 1)}
	comanda, err := s.Finalize(items, "")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	items[0].Quantity = 99
	stored, _ := s.Get(comanda.ID)
	if stored.Sessions[0].Items[0].Quantity != 1 {
		t.Errorf("a sessão deve guardar uma cópia dos itens, não a lista original")
	}
}

func TestUpdateStatus(t *testing.T) {
	s := NewComandaStore(newMemoryStorage())
	comanda, _ := s.Finalize([]model.OrderItem{orderItem("be_agua", "ÁGUA MINERAL", 5.00, 1)}, "")

	if _, err := s.UpdateStatus("inexistente", model.StatusConcluido); !errors.Is(err, ErrComandaNotFound) {
		t.Errorf("esperava ErrComandaNotFound, veio %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	updated, err := s.UpdateStatus(comanda.ID, model.StatusCancelado)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if updated.Status != model.StatusCancelado {
		t.Errorf("status esperado Cancelado, veio %s", updated.Status)
	}
	if !updated.LastUpdatedTimestamp.After(comanda.Timestamp) {
		t.Errorf("mudança de status deve avançar o lastUpdatedTimestamp")
	}

	// Transições são livres: voltar de Cancelado para Pendente é aceito
	if _, err := s.UpdateStatus(comanda.ID, model.StatusPendente); err != nil {
		t.Errorf("transição de volta deveria ser aceita: %v", err)
	}
}

func TestAddItemsAppendsSession(t *testing.T) {
	s := NewComandaStore(newMemoryStorage())
	comanda, _ := s.Finalize([]model.OrderItem{orderItem("sd_caprese", "SALADA CAPRESE", 20.00, 1)}, "")

	if _, err := s.AddItems(comanda.ID, nil); !errors.Is(err, ErrEmptyAddition) {
		t.Errorf("esperava ErrEmptyAddition, veio %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	updated, err := s.AddItems(comanda.ID, []model.OrderItem{orderItem("ac_aneis_cebola", "ANÉIS DE CEBOLA", 15.00, 1)})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(updated.Sessions) != 2 {
		t.Errorf("esperava 2 sessões, vieram %d", len(updated.Sessions))
	}
	if updated.TotalAmount != 35.00 {
		t.Errorf("total esperado 35.00, veio %.2f", updated.TotalAmount)
	}
	if !updated.LastUpdatedTimestamp.After(updated.Timestamp) {
		t.Errorf("adição de sessão deve avançar o lastUpdatedTimestamp")
	}
}

func TestDeleteComanda(t *testing.T) {
	s := NewComandaStore(newMemoryStorage())
	comanda, _ := s.Finalize([]model.OrderItem{orderItem("be_agua", "ÁGUA MINERAL", 5.00, 1)}, "")

	if err := s.Delete(comanda.ID); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if _, ok := s.Get(comanda.ID); ok {
		t.Errorf("comanda excluída não pode continuar na coleção")
	}
	if err := s.Delete(comanda.ID); !errors.Is(err, ErrComandaNotFound) {
		t.Errorf("segunda exclusão deve avisar que não existe, veio %v", err)
	}
}

func TestImportMergeSkipsDuplicates(t *testing.T) {
	s := NewComandaStore(newMemoryStorage())
	existing, _ := s.Finalize([]model.OrderItem{orderItem("be_agua", "ÁGUA MINERAL", 5.00, 1)}, "")

	incoming := []model.Comanda{
		{
			ID:            existing.ID,
			ComandaNumber: existing.ComandaNumber,
			Timestamp:     time.Now(),
			Status:        model.StatusPendente,
			Sessions:      existing.Sessions,
		},
		{
			ID:            "nova-123",
			ComandaNumber: 7,
			Timestamp:     time.Now(),
			Status:        model.StatusConcluido,
			Sessions: []model.ComandaSession{
				{Timestamp: time.Now(), Items: []model.OrderItem{orderItem("x", "X", 1.00, 1)}},
			},
		},
	}

	result := s.ImportMerge(incoming)
	if result.SuccessCount != 1 || result.DuplicateCount != 1 {
		t.Errorf("esperava 1 sucesso e 1 duplicada, veio %+v", result)
	}
	if len(s.List()) != 2 {
		t.Errorf("coleção deveria ganhar exatamente uma comanda")
	}
}

func TestCounterNeverRegressesAfterImport(t *testing.T) {
	s := NewComandaStore(newMemoryStorage())
	for i := 0; i < 5; i++ {
		s.Finalize([]model.OrderItem{orderItem("be_agua", "ÁGUA MINERAL", 5.00, 1)}, "")
	}

	s.ImportMerge([]model.Comanda{{
		ID:            "importada-9",
		ComandaNumber: 9,
		Timestamp:     time.Now(),
		Status:        model.StatusPendente,
		Sessions: []model.ComandaSession{
			{Timestamp: time.Now(), Items: []model.OrderItem{orderItem("x", "X", 1.00, 1)}},
		},
	}})

	next, _ := s.Finalize([]model.OrderItem{orderItem("be_agua", "ÁGUA MINERAL", 5.00, 1)}, "")
	if next.ComandaNumber != 10 {
		t.Errorf("após importar a Nº 9, a próxima deve ser a Nº 10, veio %d", next.ComandaNumber)
	}
}

func TestLoadMigratesLegacyAndHealsTotals(t *testing.T) {
	storage := newMemoryStorage()

	legacy := []map[string]any{
		{
			// Formato antigo: itens soltos, sem sessões
			"id":            "legada-1",
			"comandaNumber": 3,
			"timestamp":     time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local),
			"status":        model.StatusConcluido,
			"totalAmount":   999.0,
			"items": []model.OrderItem{
				orderItem("be_agua", "ÁGUA MINERAL", 5.00, 2),
			},
		},
		{
			// Sem sessões e sem itens: descartada no carregamento
			"id":            "vazia-1",
			"comandaNumber": 4,
			"timestamp":     time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local),
			"status":        model.StatusPendente,
		},
		{
			// Total gravado divergente do derivado: corrigido ao carregar
			"id":            "divergente-1",
			"comandaNumber": 5,
			"timestamp":     time.Date(2026, 8, 30, 13, 0, 0, 0, time.Local),
			"status":        model.StatusPendente,
			"totalAmount":   1.23,
			"sessions": []model.ComandaSession{
				{
					Timestamp: time.Date(2026, 8, 30, 13, 0, 0, 0, time.Local),
					Items:     []model.OrderItem{orderItem("sd_caprese", "SALADA CAPRESE", 24.50, 2)},
				},
			},
		},
	}
	raw, _ := json.Marshal(legacy)
	storage.data[database.SlotComandas] = string(raw)

	s := NewComandaStore(storage)

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("esperava 2 comandas após o carregamento, vieram %d", len(list))
	}

	migrated, ok := s.Get("legada-1")
	if !ok {
		t.Fatalf("comanda legada deveria ser migrada")
	}
	if len(migrated.Sessions) != 1 || len(migrated.Sessions[0].Items) != 1 {
		t.Errorf("itens legados devem virar uma única sessão")
	}
	if migrated.TotalAmount != 10.00 {
		t.Errorf("total da comanda legada deve ser recalculado, veio %.2f", migrated.TotalAmount)
	}

	healed, _ := s.Get("divergente-1")
	if healed.TotalAmount != 49.00 {
		t.Errorf("total divergente deve ser corrigido no carregamento, veio %.2f", healed.TotalAmount)
	}

	// Contador ressincronizado com o maior número carregado
	next, _ := s.Finalize([]model.OrderItem{orderItem("be_agua", "ÁGUA MINERAL", 5.00, 1)}, "")
	if next.ComandaNumber != 6 {
		t.Errorf("contador deveria continuar do 5, próxima veio %d", next.ComandaNumber)
	}
}

func TestLoadCorruptStorageStartsEmpty(t *testing.T) {
	storage := newMemoryStorage()
	storage.data[database.SlotComandas] = "{isso não é um array"

	s := NewComandaStore(storage)
	if len(s.List()) != 0 {
		t.Errorf("conteúdo corrompido deve resultar em coleção vazia")
	}
}

func TestConcurrentFinalizeAssignsUniqueNumbers(t *testing.T) {
	s := NewComandaStore(newMemoryStorage())

	const goroutines = 8
	const perGoroutine = 5

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				if _, err := s.Finalize([]model.OrderItem{orderItem("be_agua", "ÁGUA MINERAL", 5.00, 1)}, ""); err != nil {
					t.Errorf("erro inesperado: %v", err)
				}
				s.HealTotals()
			}
		}()
	}
	wg.Wait()

	list := s.List()
	if len(list) != goroutines*perGoroutine {
		t.Fatalf("esperava %d comandas, vieram %d", goroutines*perGoroutine, len(list))
	}
	seen := map[int]bool{}
	for _, comanda := range list {
		if seen[comanda.ComandaNumber] {
			t.Fatalf("número %d atribuído duas vezes", comanda.ComandaNumber)
		}
		seen[comanda.ComandaNumber] = true
		if comanda.ComandaNumber < 1 || comanda.ComandaNumber > goroutines*perGoroutine {
			t.Fatalf("número %d fora da sequência esperada", comanda.ComandaNumber)
		}
	}
}

func TestHealTotalsIsIdempotent(t *testing.T) {
	s := NewComandaStore(newMemoryStorage())
	s.Finalize([]model.OrderItem{orderItem("be_agua", "ÁGUA MINERAL", 5.00, 3)}, "")

	if healed := s.HealTotals(); healed != 0 {
		t.Errorf("total recém-derivado não deveria precisar de correção")
	}
	if healed := s.HealTotals(); healed != 0 {
		t.Errorf("recalcular duas vezes seguidas não pode oscilar")
	}
}
