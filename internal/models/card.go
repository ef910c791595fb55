// internal/models/card.go
package models

// Category is a card's top-level family. Exactly one sub-kind field of Kind
// is meaningful for a given category; Mermaid has none.
type Category string

const (
	CategoryDuo        Category = "duo"
	CategoryCollector  Category = "collector"
	CategoryMultiplier Category = "multiplier"
	CategoryMermaid    Category = "mermaid"
)

// Duo is a pair-effect card sub-kind.
type Duo string

const (
	DuoFish    Duo = "fish"
	DuoShip    Duo = "ship"
	DuoCrab    Duo = "crab"
	DuoSwimmer Duo = "swimmer"
	DuoShark   Duo = "shark"
)

// Collector is a set-collection card sub-kind.
type Collector string

const (
	CollectorShell   Collector = "shell"
	CollectorOctopus Collector = "octopus"
	CollectorPenguin Collector = "penguin"
	CollectorSailor  Collector = "sailor"
)

// Multiplier is a bonus card sub-kind; each multiplies a matching base kind.
type Multiplier string

const (
	MultiplierShip    Multiplier = "ship"
	MultiplierFish    Multiplier = "fish"
	MultiplierPenguin Multiplier = "penguin"
	MultiplierSailor  Multiplier = "sailor"
)

// Kind is the comparable tagged union of all card kinds. Construct with the
// XxxKind helpers; comparing with == treats (category, sub-kind) as identity.
type Kind struct {
	Category   Category   `json:"category"`
	Duo        Duo        `json:"duo,omitempty"`
	Collector  Collector  `json:"collector,omitempty"`
	Multiplier Multiplier `json:"multiplier,omitempty"`
}

func DuoKind(d Duo) Kind               { return Kind{Category: CategoryDuo, Duo: d} }
func CollectorKind(c Collector) Kind   { return Kind{Category: CategoryCollector, Collector: c} }
func MultiplierKind(m Multiplier) Kind { return Kind{Category: CategoryMultiplier, Multiplier: m} }
func MermaidKind() Kind                { return Kind{Category: CategoryMermaid} }

// IsMermaid reports whether the kind is the mermaid card.
func (k Kind) IsMermaid() bool { return k.Category == CategoryMermaid }

// Color is one of the 11 printed card colors.
type Color string

const (
	ColorDarkBlue    Color = "dark-blue"
	ColorLightBlue   Color = "light-blue"
	ColorBlack       Color = "black"
	ColorYellow      Color = "yellow"
	ColorLightGreen  Color = "light-green"
	ColorWhite       Color = "white"
	ColorPurple      Color = "purple"
	ColorLightGrey   Color = "light-grey"
	ColorLightOrange Color = "light-orange"
	ColorLightPink   Color = "light-pink"
	ColorOrange      Color = "orange"
)

// Card is a single playing card. ID, Kind and Color are fixed for the life of
// a match; Location is the only mutable field and is owned by the Deck.
type Card struct {
	ID       int      `json:"id"`
	Kind     Kind     `json:"kind"`
	Color    Color    `json:"color"`
	Location Location `json:"location"`
}
