package character

// AnchorSlot is a typed equip point on an entity
type AnchorSlot string

const (
	AnchorLeftHand  AnchorSlot = "left_hand"
	AnchorRightHand AnchorSlot = "right_hand"
	AnchorBack      AnchorSlot = "back"
	AnchorBody      AnchorSlot = "body"
	AnchorBelt      AnchorSlot = "belt"
)

// AllAnchors returns every anchor in declaration order
func AllAnchors() []AnchorSlot {
	return []AnchorSlot{
		AnchorLeftHand,
		AnchorRightHand,
		AnchorBack,
		AnchorBody,
		AnchorBelt,
	}
}

// AllowedType returns the item type the anchor accepts
func (a AnchorSlot) AllowedType() ItemType {
	switch a {
	case AnchorBody:
		return ItemTypeArmor
	case AnchorBelt:
		return ItemTypeMoneyPouch
	case AnchorLeftHand, AnchorRightHand, AnchorBack:
		return ItemTypeAny
	default:
		return ""
	}
}

// Accepts reports whether an item of type t may be bound to the anchor
func (a AnchorSlot) Accepts(t ItemType) bool {
	allowed := a.AllowedType()
	if allowed == "" {
		return false
	}
	return allowed == ItemTypeAny || allowed == t
}

// CanAttach reports whether item may be bound to the anchor
func (a AnchorSlot) CanAttach(item *Item) bool {
	if item == nil {
		return false
	}
	return a.Accepts(item.Type())
}

// IsValid reports whether a is one of the declared anchors
func (a AnchorSlot) IsValid() bool {
	return a.AllowedType() != ""
}

// mount is one anchor on a specific entity and the item bound to it
type mount struct {
	slot AnchorSlot
	item *Item
}
