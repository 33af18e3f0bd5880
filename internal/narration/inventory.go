package narration

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-arena/internal/domain/character"
)

const anchorColumnWidth = 12

var itemGlyphs = map[character.ItemType]string{
	character.ItemTypeWeapon:     "🗡",
	character.ItemTypeArmor:      "🛡",
	character.ItemTypeMoneyPouch: "💰",
	character.ItemTypeBackpack:   "🎒",
}

// FormatInventory renders an entity's equipment as an aligned table, one
// anchor per row with backpack contents indented beneath it.
func FormatInventory(entity *character.Entity) string {
	if entity == nil {
		return ""
	}

	caser := cases.Title(language.English)
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s) HP %d/%d, carrying %.2f of %d\n",
		entity.Name(), entity.Kind(), entity.HP(), entity.MaxHP(), entity.TotalWeight(), entity.Capacity())

	for _, anchor := range entity.Anchors() {
		label := runewidth.FillRight(caser.String(strings.ReplaceAll(string(anchor), "_", " ")), anchorColumnWidth)
		item := entity.ItemAt(anchor)
		if item == nil {
			fmt.Fprintf(&b, "  %s | -\n", label)
			continue
		}
		fmt.Fprintf(&b, "  %s | %s\n", label, describeItem(caser, item))
		writeContents(&b, caser, item, 1)
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeContents(b *strings.Builder, caser cases.Caser, item *character.Item, depth int) {
	if !item.IsBackpack() {
		return
	}

	indent := runewidth.FillRight("", anchorColumnWidth)
	for _, inner := range item.Contents() {
		fmt.Fprintf(b, "  %s | %s%s\n", indent, strings.Repeat("  ", depth), describeItem(caser, inner))
		writeContents(b, caser, inner, depth+1)
	}
}

func describeItem(caser cases.Caser, item *character.Item) string {
	glyph := runewidth.FillRight(itemGlyphs[item.Type()], 2)
	name := caser.String(strings.ReplaceAll(string(item.Type()), "_", " "))

	switch item.Type() {
	case character.ItemTypeWeapon:
		return fmt.Sprintf("%s %s #%d dmg %d, wt %.2f, %s", glyph, name, item.ID(), item.Damage(), item.Weight(), item.ShineLevel())
	case character.ItemTypeBackpack:
		return fmt.Sprintf("%s %s #%d %.2f/%d, wt %.2f, %s", glyph, name, item.ID(), item.ContentWeight(), item.Capacity(), item.Weight(), item.ShineLevel())
	default:
		return fmt.Sprintf("%s %s #%d wt %.2f, %s", glyph, name, item.ID(), item.Weight(), item.ShineLevel())
	}
}
