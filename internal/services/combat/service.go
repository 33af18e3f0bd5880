package combat

//go:generate mockgen -destination=mock/mock_service.go -package=mockcombat -source=service.go

import (
	"context"

	"github.com/KirkDiggler/rpg-arena/internal/dice"
	"github.com/KirkDiggler/rpg-arena/internal/domain/character"
	"github.com/KirkDiggler/rpg-arena/internal/domain/events"
	dnderr "github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/services/healing"
	"github.com/KirkDiggler/rpg-arena/internal/services/loot"
)

// Service defines the combat service interface
type Service interface {
	// ExecuteHit resolves a single attack from attacker against defender
	ExecuteHit(ctx context.Context, attacker, defender *character.Entity, desired []*character.Item) (*HitResult, error)

	// Combat alternates hits, starting with initiator, until one side is terminated
	Combat(ctx context.Context, attacker, defender *character.Entity, desired []*character.Item, initiator *character.Entity) (*Result, error)
}

// HitResult is the outcome of one attack
type HitResult struct {
	Attacker     *character.Entity
	Defender     *character.Entity
	Turn         int
	Roll         int
	AdjustedRoll int
	Defense      int
	Hit          bool
	Damage       int64
	KillingBlow  bool

	// Set only on a killing blow
	Loot   *loot.Result
	Healed int64
}

// Result is the outcome of a whole combat
type Result struct {
	Winner *character.Entity
	Loser  *character.Entity
	Turns  int
	Hits   []*HitResult
}

type service struct {
	diceRoller     dice.Roller
	lootService    loot.Service
	healingService healing.Service
	eventBus       events.Bus
	maxTurns       int
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	DiceRoller     dice.Roller     // Required
	LootService    loot.Service    // Required
	HealingService healing.Service // Required
	EventBus       events.Bus      // Optional

	// MaxTurns stops a combat that nobody can win. Zero means no limit.
	MaxTurns int
}

// NewService creates a new combat service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("combat config is required")
	}
	if cfg.DiceRoller == nil {
		panic("dice roller is required")
	}
	if cfg.LootService == nil {
		panic("loot service is required")
	}
	if cfg.HealingService == nil {
		panic("healing service is required")
	}

	return &service{
		diceRoller:     cfg.DiceRoller,
		lootService:    cfg.LootService,
		healingService: cfg.HealingService,
		eventBus:       cfg.EventBus,
		maxTurns:       cfg.MaxTurns,
	}
}

// ExecuteHit resolves one attack outside of a combat loop
func (s *service) ExecuteHit(ctx context.Context, attacker, defender *character.Entity, desired []*character.Item) (*HitResult, error) {
	if err := validatePair(attacker, defender); err != nil {
		return nil, err
	}
	return s.executeHit(ctx, 0, attacker, defender, desired)
}

func (s *service) executeHit(ctx context.Context, turn int, attacker, defender *character.Entity, desired []*character.Item) (*HitResult, error) {
	roll, err := dice.Percentile(s.diceRoller)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to roll attack")
	}

	hit := &HitResult{
		Attacker:     attacker,
		Defender:     defender,
		Turn:         turn,
		Roll:         roll,
		AdjustedRoll: attacker.AdjustRoll(roll),
		Defense:      defender.Defense(),
	}
	hit.Hit = hit.AdjustedRoll >= hit.Defense

	if err := s.emit(events.NewGameEvent(events.AttackRolled, attacker).
		WithTarget(defender).
		WithContext(events.ContextTurn, turn).
		WithContext(events.ContextRoll, hit.Roll).
		WithContext(events.ContextAdjustedRoll, hit.AdjustedRoll).
		WithContext(events.ContextDefense, hit.Defense)); err != nil {
		return hit, err
	}

	if !hit.Hit {
		return hit, s.emit(events.NewGameEvent(events.AttackMissed, attacker).
			WithTarget(defender).
			WithContext(events.ContextTurn, turn))
	}

	hit.Damage = attacker.BaseDamage()
	if hit.Damage < 0 {
		hit.Damage = 0
	}

	hpBefore := defender.HP()
	hit.KillingBlow = hit.Damage >= hpBefore
	defender.ReduceHP(hit.Damage)

	if err := s.emit(events.NewGameEvent(events.AttackHit, attacker).
		WithTarget(defender).
		WithContext(events.ContextTurn, turn).
		WithContext(events.ContextDamage, hit.Damage).
		WithContext(events.ContextHPBefore, hpBefore).
		WithContext(events.ContextHPAfter, defender.HP())); err != nil {
		return hit, err
	}

	if !hit.KillingBlow {
		return hit, nil
	}

	return hit, s.resolveKill(ctx, hit, desired)
}

// resolveKill loots the defender, terminates it, then heals the attacker and
// rounds its HP up to a prime
func (s *service) resolveKill(ctx context.Context, hit *HitResult, desired []*character.Item) error {
	attacker, defender := hit.Attacker, hit.Defender

	if err := s.emit(events.NewGameEvent(events.KillingBlow, attacker).
		WithTarget(defender).
		WithContext(events.ContextTurn, hit.Turn).
		WithContext(events.ContextDamage, hit.Damage)); err != nil {
		return err
	}

	lootResult, err := s.lootService.Loot(ctx, defender, attacker, desired)
	hit.Loot = lootResult
	if err != nil {
		return dnderr.Wrapf(err, "failed to loot %s", defender.Name())
	}

	defender.Kill()

	healed, err := s.healingService.Heal(ctx, attacker)
	hit.Healed = healed
	if err != nil {
		return dnderr.Wrapf(err, "failed to heal %s", attacker.Name())
	}

	hpBefore := attacker.HP()
	attacker.NormalizeHP()

	return s.emit(events.NewGameEvent(events.HPNormalized, attacker).
		WithContext(events.ContextHPBefore, hpBefore).
		WithContext(events.ContextHPAfter, attacker.HP()))
}

// Combat runs the turn loop. With MaxTurns set, a combat that outlasts it
// returns a stalemate error together with the partial result.
func (s *service) Combat(ctx context.Context, attacker, defender *character.Entity, desired []*character.Item, initiator *character.Entity) (*Result, error) {
	if err := validatePair(attacker, defender); err != nil {
		return nil, err
	}
	if initiator != attacker && initiator != defender {
		return nil, dnderr.InvalidArgument("initiator must be one of the combatants")
	}

	current, other := attacker, defender
	if initiator == defender {
		current, other = defender, attacker
	}

	result := &Result{}

	if err := s.emit(events.NewGameEvent(events.CombatStarted, current).WithTarget(other)); err != nil {
		return result, err
	}

	for !attacker.IsTerminated() && !defender.IsTerminated() {
		if err := ctx.Err(); err != nil {
			return result, dnderr.Wrap(err, "combat interrupted")
		}
		if s.maxTurns > 0 && result.Turns >= s.maxTurns {
			return result, dnderr.Newf(dnderr.CodeStalemate, "no winner after %d turns", result.Turns).
				WithMeta("turns", result.Turns).
				WithMeta("attacker", attacker.Name()).
				WithMeta("defender", defender.Name())
		}

		result.Turns++
		if err := s.emit(events.NewGameEvent(events.TurnStarted, current).
			WithTarget(other).
			WithContext(events.ContextTurn, result.Turns)); err != nil {
			return result, err
		}

		hit, err := s.executeHit(ctx, result.Turns, current, other, desired)
		if hit != nil {
			result.Hits = append(result.Hits, hit)
		}
		if err != nil {
			return result, dnderr.Wrapf(err, "turn %d failed", result.Turns)
		}

		current, other = other, current
	}

	result.Winner, result.Loser = attacker, defender
	if attacker.IsTerminated() {
		result.Winner, result.Loser = defender, attacker
	}

	if err := s.emit(events.NewGameEvent(events.CombatEnded, result.Winner).
		WithTarget(result.Loser).
		WithContext(events.ContextTurns, result.Turns).
		WithContext(events.ContextWinner, result.Winner.Name())); err != nil {
		return result, err
	}

	return result, nil
}

func validatePair(attacker, defender *character.Entity) error {
	if attacker == nil || defender == nil {
		return dnderr.InvalidArgument("attacker and defender are required")
	}
	if attacker == defender {
		return dnderr.InvalidArgument("an entity cannot fight itself")
	}
	if attacker.IsTerminated() || defender.IsTerminated() {
		return dnderr.InvalidArgument("terminated entities cannot fight")
	}
	return nil
}

func (s *service) emit(event *events.GameEvent) error {
	if s.eventBus == nil {
		return nil
	}
	if err := s.eventBus.Emit(event); err != nil {
		return dnderr.Wrapf(err, "failed to emit %s", event.Type)
	}
	return nil
}
