package healing

//go:generate mockgen -destination=mock/mock_service.go -package=mockhealing -source=service.go

import (
	"context"

	"github.com/KirkDiggler/rpg-arena/internal/dice"
	"github.com/KirkDiggler/rpg-arena/internal/domain/character"
	"github.com/KirkDiggler/rpg-arena/internal/domain/events"
	dnderr "github.com/KirkDiggler/rpg-arena/internal/errors"
)

// Service defines the healing service interface
type Service interface {
	// Heal restores a random percentage of the entity's missing HP and returns the HP gained
	Heal(ctx context.Context, entity *character.Entity) (int64, error)
}

type service struct {
	diceRoller dice.Roller
	eventBus   events.Bus
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	DiceRoller dice.Roller // Required
	EventBus   events.Bus  // Optional
}

// NewService creates a new healing service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.DiceRoller == nil {
		panic("dice roller is required")
	}

	return &service{
		diceRoller: cfg.DiceRoller,
		eventBus:   cfg.EventBus,
	}
}

// Heal is a no-op for entities that cannot heal. Otherwise it draws p in
// [0, 100] and adds floor(missing * p / 100).
func (s *service) Heal(ctx context.Context, entity *character.Entity) (int64, error) {
	if entity == nil {
		return 0, dnderr.InvalidArgument("entity is required")
	}
	if !entity.IsHealable() {
		return 0, nil
	}

	percent, err := dice.Percentile(s.diceRoller)
	if err != nil {
		return 0, dnderr.Wrap(err, "failed to roll healing percentage")
	}

	before := entity.HP()
	missing := entity.MaxHP() - before
	entity.IncreaseHP(missing * int64(percent) / 100)
	healed := entity.HP() - before

	if s.eventBus != nil {
		event := events.NewGameEvent(events.EntityHealed, entity).
			WithContext(events.ContextPercent, percent).
			WithContext(events.ContextHealed, healed).
			WithContext(events.ContextHPBefore, before).
			WithContext(events.ContextHPAfter, entity.HP())
		if err := s.eventBus.Emit(event); err != nil {
			return healed, dnderr.Wrap(err, "failed to emit heal event")
		}
	}

	return healed, nil
}
