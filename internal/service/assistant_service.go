package service

import (
	"context"
	"encoding/json"

	"ringkas-aset/internal/ai"
	"ringkas-aset/internal/model"
)

// AssistantService answers natural-language questions over the inventory the
// caller is allowed to see. It never returns an error for assistant
// failures: the ai package's Indonesian fallback string is the answer then.
type AssistantService interface {
	Ask(ctx context.Context, user *model.User, query string) (string, error)
}

// inventorySnapshot is the JSON shape handed to the assistant
type inventorySnapshot struct {
	FixedAssets      []model.FixedAsset      `json:"fixed_assets"`
	ConsumableAssets []model.ConsumableAsset `json:"consumable_assets"`
}

type assistantService struct {
	assetService AssetService
	assistant    ai.Assistant
}

func NewAssistantService(assetService AssetService, assistant ai.Assistant) AssistantService {
	return &assistantService{
		assetService: assetService,
		assistant:    assistant,
	}
}

func (s *assistantService) Ask(ctx context.Context, user *model.User, query string) (string, error) {
	fixed, err := s.assetService.ListFixed(user)
	if err != nil {
		return "", err
	}
	consumable, err := s.assetService.ListConsumable(user)
	if err != nil {
		return "", err
	}

	snapshot, err := json.Marshal(inventorySnapshot{
		FixedAssets:      fixed,
		ConsumableAssets: consumable,
	})
	if err != nil {
		return ai.Fallback, nil
	}

	return s.assistant.InventorySummary(ctx, query, string(snapshot)), nil
}
