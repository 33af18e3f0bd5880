package services

import (
	"github.com/KirkDiggler/rpg-arena/internal/dice"
	"github.com/KirkDiggler/rpg-arena/internal/domain/events"
	combatService "github.com/KirkDiggler/rpg-arena/internal/services/combat"
	healingService "github.com/KirkDiggler/rpg-arena/internal/services/healing"
	lootService "github.com/KirkDiggler/rpg-arena/internal/services/loot"
)

// Provider holds all service instances
type Provider struct {
	CombatService  combatService.Service
	LootService    lootService.Service
	HealingService healingService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	DiceRoller dice.Roller
	EventBus   events.Bus
	MaxTurns   int
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use a random roller if none provided
	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	loot := lootService.NewService(&lootService.ServiceConfig{
		EventBus: cfg.EventBus,
	})

	healing := healingService.NewService(&healingService.ServiceConfig{
		DiceRoller: roller,
		EventBus:   cfg.EventBus,
	})

	combat := combatService.NewService(&combatService.ServiceConfig{
		DiceRoller:     roller,
		LootService:    loot,
		HealingService: healing,
		EventBus:       cfg.EventBus,
		MaxTurns:       cfg.MaxTurns,
	})

	return &Provider{
		CombatService:  combat,
		LootService:    loot,
		HealingService: healing,
	}
}
