package service

import (
	"context"
	"strings"
	"testing"

	"ringkas-aset/internal/ai"
	"ringkas-aset/internal/model"
)

// fakeAssistant records what it was asked and returns a canned answer.
type fakeAssistant struct {
	answer        string
	lastQuery     string
	lastInventory string
}

func (a *fakeAssistant) InventorySummary(_ context.Context, query, inventoryJSON string) string {
	a.lastQuery = query
	a.lastInventory = inventoryJSON
	return a.answer
}

func newAssistantFixture(t *testing.T) (*assetFixture, *fakeAssistant, AssistantService) {
	t.Helper()
	f := newAssetFixture()
	assistant := &fakeAssistant{answer: "Ada 1 aset tetap."}
	return f, assistant, NewAssistantService(f.service, assistant)
}

func TestAskHandsScopedInventoryToAssistant(t *testing.T) {
	f, assistant, svc := newAssistantFixture(t)

	if _, err := f.service.CreateFixed(f.admin, &CreateFixedAssetRequest{
		Name:         "Laptop Kelas",
		Code:         "LP-001",
		LocationID:   f.location.ID,
		PurchaseDate: "2024-03-01",
		Price:        5000000,
		Status:       model.StatusBaik,
	}); err != nil {
		t.Fatalf("CreateFixed: %v", err)
	}
	if _, err := f.service.CreateFixed(f.admin, &CreateFixedAssetRequest{
		Name:         "Proyektor Aula",
		Code:         "PJ-001",
		LocationID:   f.otherLocation.ID,
		PurchaseDate: "2024-03-01",
		Price:        4000000,
		Status:       model.StatusBaik,
	}); err != nil {
		t.Fatalf("CreateFixed: %v", err)
	}

	answer, err := svc.Ask(context.Background(), f.guru, "Berapa aset saya?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if answer != assistant.answer {
		t.Errorf("answer=%q, want the assistant's reply", answer)
	}
	if assistant.lastQuery != "Berapa aset saya?" {
		t.Errorf("query=%q", assistant.lastQuery)
	}
	if !strings.Contains(assistant.lastInventory, "Laptop Kelas") {
		t.Error("snapshot is missing the asset at the caller's location")
	}
	if strings.Contains(assistant.lastInventory, "Proyektor Aula") {
		t.Error("snapshot leaks an asset outside the caller's scope")
	}
}

func TestAskPassesFallbackThrough(t *testing.T) {
	f, assistant, svc := newAssistantFixture(t)
	assistant.answer = ai.Fallback

	answer, err := svc.Ask(context.Background(), f.admin, "Halo")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if answer != ai.Fallback {
		t.Errorf("answer=%q, want the fallback message", answer)
	}
}
