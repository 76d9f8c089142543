package utils

import (
	"strings"

	"invitation-studio/models"
)

// CategoryLabel maps a category value to its display label.
// Unknown categories are returned title-cased with hyphens as spaces.
func CategoryLabel(c models.Category) string {
	labels := map[models.Category]string{
		models.CategoryWedding:     "Wedding",
		models.CategoryEngagement:  "Engagement",
		models.CategoryBirthday:    "Birthday",
		models.CategoryBabyShower:  "Baby Shower",
		models.CategoryAnniversary: "Anniversary",
		models.CategoryCorporate:   "Corporate",
		models.CategoryOther:       "Other",
	}

	if label, exists := labels[c]; exists {
		return label
	}

	words := strings.Fields(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(string(c))), "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ParseCategory maps a category value or label back to a category.
// Input is normalized to lowercase before mapping.
func ParseCategory(s string) (models.Category, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, " ", "-")

	switch models.Category(key) {
	case models.CategoryWedding, models.CategoryEngagement, models.CategoryBirthday,
		models.CategoryBabyShower, models.CategoryAnniversary, models.CategoryCorporate,
		models.CategoryOther:
		return models.Category(key), true
	}
	return "", false
}
