package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invitation-studio/models"
)

func TestDefault_Has18Templates(t *testing.T) {
	s := Default()

	all := s.All()
	require.Len(t, all, 18)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "18", all[17].ID)
}

func TestFreeTemplatesAreNotPremium(t *testing.T) {
	for _, tpl := range Default().All() {
		if tpl.Price.IsZero() {
			assert.False(t, tpl.IsPremium, "template %s", tpl.ID)
		} else {
			assert.True(t, tpl.IsPremium, "template %s", tpl.ID)
		}
	}
}

func TestGet(t *testing.T) {
	s := Default()

	tpl, ok := s.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Elegant Wedding", tpl.Name)
	assert.Equal(t, models.CategoryWedding, tpl.Category)
	assert.True(t, decimal.RequireFromString("29.99").Equal(tpl.Price))

	_, ok = s.Get("99")
	assert.False(t, ok)
}

func TestGet_ReturnsCopies(t *testing.T) {
	s := Default()

	tpl, _ := s.Get("1")
	tpl.Tags[0] = "mutated"
	tpl.Name = "changed"

	again, _ := s.Get("1")
	assert.Equal(t, "elegant", again.Tags[0])
	assert.Equal(t, "Elegant Wedding", again.Name)
}

func TestFilter(t *testing.T) {
	s := Default()

	ids := func(ts []models.Template) []string {
		out := make([]string, 0, len(ts))
		for _, tpl := range ts {
			out = append(out, tpl.ID)
		}
		return out
	}

	tests := []struct {
		name string
		q    Query
		want []string
	}{
		{"free", Query{Price: PriceFree}, []string{"2", "6", "13", "14", "16"}},
		{"category", Query{Category: "anniversary"}, []string{"6", "12"}},
		{"all category", Query{Category: "all", Price: PriceAll}, ids(s.All())},
		{"search name", Query{Search: "GALA"}, []string{"17"}},
		{"search tag", Query{Search: "boho"}, []string{"10"}},
		{"search description", Query{Search: "ocean blues"}, []string{"13"}},
		{"premium weddings", Query{Category: "wedding", Price: PricePremium}, []string{"1", "7"}},
		{"no match", Query{Search: "zzz"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(s.Filter(tt.q)))
		})
	}
}

func TestOptions(t *testing.T) {
	opts := Default().Options()

	assert.Len(t, opts.Categories, 7)
	assert.Equal(t, models.CategoryOption{Value: models.CategoryBabyShower, Label: "Baby Shower"}, opts.Categories[3])
	assert.Len(t, opts.Fonts, 6)
	assert.Len(t, opts.ColorPresets, 5)
}

func TestFindPreset(t *testing.T) {
	p, ok := FindPreset("ocean blue")
	require.True(t, ok)
	assert.Equal(t, "#0EA5E9", p.Primary)

	_, ok = FindPreset("Neon")
	assert.False(t, ok)
}
