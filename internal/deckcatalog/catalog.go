// internal/deckcatalog/catalog.go
package deckcatalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/seasaltgame/seasalt/internal/models"
)

//go:embed cards.json
var cardsJSON []byte

type catalogFile struct {
	Cards []catalogCard `json:"cards"`
}

// catalogCard is the raw catalog record: string-typed kind/subType/color as
// printed in the asset, mapped to domain values on load.
type catalogCard struct {
	ID      int     `json:"id"`
	Kind    string  `json:"kind"`
	SubType *string `json:"subType"`
	Color   string  `json:"color"`
}

// Load decodes the embedded catalog into the ordered playable card set. The
// engine does not validate the 58-card composition; the catalog tests do.
func Load() ([]models.Card, error) {
	var file catalogFile
	if err := json.Unmarshal(cardsJSON, &file); err != nil {
		return nil, fmt.Errorf("decode card catalog: %w", err)
	}

	cards := make([]models.Card, 0, len(file.Cards))
	for _, raw := range file.Cards {
		kind, err := raw.kind()
		if err != nil {
			return nil, err
		}
		cards = append(cards, models.Card{
			ID:    raw.ID,
			Kind:  kind,
			Color: models.Color(raw.Color),
		})
	}
	return cards, nil
}

// MustLoad is Load for wiring paths where a broken embedded asset is fatal.
func MustLoad() []models.Card {
	cards, err := Load()
	if err != nil {
		panic(err)
	}
	return cards
}

func (c catalogCard) kind() (models.Kind, error) {
	sub := ""
	if c.SubType != nil {
		sub = *c.SubType
	}

	switch c.Kind {
	case "mermaid":
		return models.MermaidKind(), nil
	case "duo":
		switch d := models.Duo(sub); d {
		case models.DuoFish, models.DuoShip, models.DuoCrab, models.DuoSwimmer, models.DuoShark:
			return models.DuoKind(d), nil
		}
	case "collector":
		switch k := models.Collector(sub); k {
		case models.CollectorShell, models.CollectorOctopus, models.CollectorPenguin, models.CollectorSailor:
			return models.CollectorKind(k), nil
		}
	case "multiplier":
		switch m := models.Multiplier(sub); m {
		case models.MultiplierShip, models.MultiplierFish, models.MultiplierPenguin, models.MultiplierSailor:
			return models.MultiplierKind(m), nil
		}
	}
	return models.Kind{}, fmt.Errorf("card %d: unknown kind %q/%q", c.ID, c.Kind, sub)
}
