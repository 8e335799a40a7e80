package domain

import (
	"errors"
	"strings"
)

var ErrInvalidCategory = errors.New("invalid category")

type Category string

const (
	CategoryAnima       Category = "anima"
	CategoryMente       Category = "mente"
	CategoryCuore       Category = "cuore"
	CategoryCorpo       Category = "corpo"
	CategoryAbito       Category = "abito"
	CategoryPortafoglio Category = "portafoglio"
)

// Categories is the fixed display order. Aggregations iterate this slice,
// never the set of categories present in the data.
var Categories = []Category{
	CategoryAnima,
	CategoryMente,
	CategoryCuore,
	CategoryCorpo,
	CategoryAbito,
	CategoryPortafoglio,
}

type CategoryInfo struct {
	Key         Category `json:"key"`
	Name        string   `json:"name"`
	Emoji       string   `json:"emoji"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
}

var categoryInfo = map[Category]CategoryInfo{
	CategoryAnima:       {Key: CategoryAnima, Name: "Anima", Emoji: "🧘", Color: "#a855f7", Description: "Meditazione, visualizzazione, gratitudine"},
	CategoryMente:       {Key: CategoryMente, Name: "Mente", Emoji: "🧠", Color: "#3b82f6", Description: "Lettura, studio, progetti, coding"},
	CategoryCuore:       {Key: CategoryCuore, Name: "Cuore", Emoji: "❤️", Color: "#ec4899", Description: "Famiglia, amici, relazioni"},
	CategoryCorpo:       {Key: CategoryCorpo, Name: "Corpo", Emoji: "💪", Color: "#22c55e", Description: "Sport, palestra, salute"},
	CategoryAbito:       {Key: CategoryAbito, Name: "Abito", Emoji: "👔", Color: "#f97316", Description: "Immagine, lifestyle, social"},
	CategoryPortafoglio: {Key: CategoryPortafoglio, Name: "Portafoglio", Emoji: "💰", Color: "#d4af37", Description: "Lavoro, clienti, revenue"},
}

func (c Category) Valid() bool {
	_, ok := categoryInfo[c]
	return ok
}

func (c Category) Info() CategoryInfo {
	return categoryInfo[c]
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// AllCategoryInfo returns display metadata in the fixed order.
func AllCategoryInfo() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(Categories))
	for _, c := range Categories {
		out = append(out, categoryInfo[c])
	}
	return out
}
