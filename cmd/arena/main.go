package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/KirkDiggler/rpg-arena/internal/config"
	"github.com/KirkDiggler/rpg-arena/internal/dice"
	"github.com/KirkDiggler/rpg-arena/internal/domain/character"
	"github.com/KirkDiggler/rpg-arena/internal/domain/events"
	dnderr "github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/metrics"
	"github.com/KirkDiggler/rpg-arena/internal/narration"
	"github.com/KirkDiggler/rpg-arena/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var roller dice.Roller
	if cfg.Arena.Seed != 0 {
		log.Printf("Using seed %d", cfg.Arena.Seed)
		roller = dice.NewSeededRoller(cfg.Arena.Seed)
	} else {
		roller = dice.NewRandomRoller()
	}

	bus := events.NewEventBus()
	narration.NewNarrator(log.New(os.Stdout, "", 0), cfg.Arena.Verbose).Register(bus)

	registry := prometheus.NewRegistry()
	metrics.NewCollector(registry).Register(bus)

	provider := services.NewProvider(&services.ProviderConfig{
		DiceRoller: roller,
		EventBus:   bus,
		MaxTurns:   cfg.Arena.MaxTurns,
	})

	ids := character.NewIDGenerator()

	hero, err := character.NewHero(&character.HeroConfig{
		Name:     cfg.Hero.Name,
		MaxHP:    cfg.Hero.MaxHP,
		Strength: cfg.Hero.Strength,
		IDs:      ids,
	})
	if err != nil {
		log.Fatalf("Failed to create hero: %v", err)
	}

	monsterCfg := &character.MonsterConfig{
		Name:        cfg.Monster.Name,
		MaxHP:       cfg.Monster.MaxHP,
		DamageTypes: []character.DamageType{character.DamageClaws},
		SkinType:    character.SkinThick,
		IDs:         ids,
	}
	if cfg.Monster.SpawnLoot {
		monsterCfg.LootRoller = roller
	}
	monster, err := character.NewMonster(monsterCfg)
	if err != nil {
		log.Fatalf("Failed to create monster: %v", err)
	}

	fmt.Println(narration.FormatInventory(hero))
	fmt.Println(narration.FormatInventory(monster))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The hero goes for everything the monster carries
	result, err := provider.CombatService.Combat(ctx, hero, monster, monster.AllItems(), hero)
	switch {
	case dnderr.IsStalemate(err):
		log.Printf("No winner after %d turns", result.Turns)
	case err != nil:
		log.Printf("Combat failed: %v", err)
	default:
		fmt.Println(narration.FormatInventory(result.Winner))
	}

	if cfg.Arena.MetricsDump {
		dumpMetrics(registry)
	}

	if err != nil && !dnderr.IsStalemate(err) {
		stop()
		os.Exit(1)
	}
}

func dumpMetrics(registry *prometheus.Registry) {
	families, err := registry.Gather()
	if err != nil {
		log.Printf("Failed to gather metrics: %v", err)
		return
	}

	for _, family := range families {
		for _, m := range family.GetMetric() {
			labels := ""
			for _, pair := range m.GetLabel() {
				labels += fmt.Sprintf(" %s=%s", pair.GetName(), pair.GetValue())
			}
			fmt.Printf("%s%s %g\n", family.GetName(), labels, m.GetCounter().GetValue())
		}
	}
}
