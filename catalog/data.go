package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"invitation-studio/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// seedTemplates is the built-in catalog. Image paths are served by the template image endpoint.
var seedTemplates = []models.Template{
	{
		ID:            "1",
		Name:          "Elegant Wedding",
		Description:   "A timeless and elegant wedding invitation template with classic typography and sophisticated design.",
		Category:      models.CategoryWedding,
		Price:         decimal.RequireFromString("29.99"),
		IsPremium:     true,
		Thumbnail:     "/templates/wedding-elegant-thumb.jpg",
		PreviewImages: []string{"/templates/wedding-elegant-1.jpg", "/templates/wedding-elegant-2.jpg", "/templates/wedding-elegant-3.jpg"},
		Tags:          []string{"elegant", "classic", "sophisticated"},
		CreatedAt:     day("2024-01-15"),
		UpdatedAt:     day("2024-01-15"),
	},
	{
		ID:            "2",
		Name:          "Modern Birthday",
		Description:   "Fun and vibrant birthday invitation perfect for celebrating special moments.",
		Category:      models.CategoryBirthday,
		Price:         decimal.RequireFromString("0"),
		IsPremium:     false,
		Thumbnail:     "/templates/birthday-modern-thumb.jpg",
		PreviewImages: []string{"/templates/birthday-modern-1.jpg", "/templates/birthday-modern-2.jpg"},
		Tags:          []string{"fun", "colorful", "modern"},
		CreatedAt:     day("2024-01-10"),
		UpdatedAt:     day("2024-01-10"),
	},
	{
		ID:            "3",
		Name:          "Romantic Engagement",
		Description:   "Celebrate your engagement with this romantic and beautiful invitation design.",
		Category:      models.CategoryEngagement,
		Price:         decimal.RequireFromString("19.99"),
		IsPremium:     true,
		Thumbnail:     "/templates/engagement-romantic-thumb.jpg",
		PreviewImages: []string{"/templates/engagement-romantic-1.jpg", "/templates/engagement-romantic-2.jpg", "/templates/engagement-romantic-3.jpg"},
		VideoPreview:  "/templates/engagement-romantic-video.mp4",
		Tags:          []string{"romantic", "elegant", "celebration"},
		CreatedAt:     day("2024-01-12"),
		UpdatedAt:     day("2024-01-12"),
	},
	{
		ID:            "4",
		Name:          "Sweet Baby Shower",
		Description:   "Adorable baby shower invitation with soft pastels and cute illustrations.",
		Category:      models.CategoryBabyShower,
		Price:         decimal.RequireFromString("15.99"),
		IsPremium:     true,
		Thumbnail:     "/templates/baby-shower-sweet-thumb.jpg",
		PreviewImages: []string{"/templates/baby-shower-sweet-1.jpg", "/templates/baby-shower-sweet-2.jpg"},
		Tags:          []string{"cute", "pastel", "baby"},
		CreatedAt:     day("2024-01-08"),
		UpdatedAt:     day("2024-01-08"),
	},
	{
		ID:            "5",
		Name:          "Corporate Event",
		Description:   "Professional and clean design perfect for corporate events and business gatherings.",
		Category:      models.CategoryCorporate,
		Price:         decimal.RequireFromString("24.99"),
		IsPremium:     true,
		Thumbnail:     "/templates/corporate-professional-thumb.jpg",
		PreviewImages: []string{"/templates/corporate-professional-1.jpg", "/templates/corporate-professional-2.jpg"},
		Tags:          []string{"professional", "clean", "business"},
		CreatedAt:     day("2024-01-05"),
		UpdatedAt:     day("2024-01-05"),
	},
	{
		ID:            "6",
		Name:          "Anniversary Celebration",
		Description:   "Celebrate years of love with this beautiful anniversary invitation template.",
		Category:      models.CategoryAnniversary,
		Price:         decimal.RequireFromString("0"),
		IsPremium:     false,
		Thumbnail:     "/templates/anniversary-celebration-thumb.jpg",
		PreviewImages: []string{"/templates/anniversary-celebration-1.jpg", "/templates/anniversary-celebration-2.jpg"},
		Tags:          []string{"love", "celebration", "anniversary"},
		CreatedAt:     day("2024-01-03"),
		UpdatedAt:     day("2024-01-03"),
	},
	{
		ID:            "7",
		Name:          "Rustic Wedding",
		Description:   "Charming rustic wedding invitation with earthy tones and natural elements.",
		Category:      models.CategoryWedding,
		Price:         decimal.RequireFromString("24.99"),
		IsPremium:     true,
		Thumbnail:     "/templates/wedding-rustic-thumb.jpg",
		PreviewImages: []string{"/templates/wedding-rustic-1.jpg", "/templates/wedding-rustic-2.jpg"},
		Tags:          []string{"rustic", "natural", "vintage"},
		CreatedAt:     day("2024-01-20"),
		UpdatedAt:     day("2024-01-20"),
	},
	{
		ID:            "8",
		Name:          "Minimalist Birthday",
		Description:   "Clean and modern minimalist birthday invitation with simple elegance.",
		Category:      models.CategoryBirthday,
		Price:         decimal.RequireFromString("9.99"),
		IsPremium:     true,
		Thumbnail:     "/templates/birthday-minimalist-thumb.jpg",
		PreviewImages: []string{"/templates/birthday-minimalist-1.jpg", "/templates/birthday-minimalist-2.jpg"},
		Tags:          []string{"minimalist", "modern", "simple"},
		CreatedAt:     day("2024-01-18"),
		UpdatedAt:     day("2024-01-18"),
	},
	{
		ID:            "9",
		Name:          "Garden Engagement",
		Description:   "Beautiful garden-themed engagement invitation with floral designs.",
		Category:      models.CategoryEngagement,
		Price:         decimal.RequireFromString("22.99"),
		IsPremium:     true,
		Thumbnail:     "/templates/engagement-garden-thumb.jpg",
		PreviewImages: []string{"/templates/engagement-garden-1.jpg", "/templates/engagement-garden-2.jpg"},
		Tags:          []string{"floral", "garden", "nature"},
		CreatedAt:     day("2024-01-16"),
		UpdatedAt:     day("2024-01-16"),
	},
	{
		ID:            "10",
		Name:          "Boho Baby Shower",
		Description:   "Trendy bohemian-style baby shower invitation with warm earth tones.",
		Category:      models.CategoryBabyShower,
		Price:         decimal.RequireFromString("18.99"),
		IsPremium:     true,
		Thumbnail:     "/templates/baby-shower-boho-thumb.jpg",
		PreviewImages: []string{"/templates/baby-shower-boho-1.jpg", "/templates/baby-shower-boho-2.jpg"},
		Tags:          []string{"boho", "trendy", "warm"},
		CreatedAt:     day("2024-01-14"),
		UpdatedAt:     day("2024-01-14"),
	},
	{
		ID:            "11",
		Name:          "Tech Conference",
		Description:   "Modern tech conference invitation with bold typography and gradients.",
		Category:      models.CategoryCorporate,
		Price:         decimal.RequireFromString("19.99"),
		IsPremium:     true,
		Thumbnail:     "/templates/corporate-tech-thumb.jpg",
		PreviewImages: []string{"/templates/corporate-tech-1.jpg", "/templates/corporate-tech-2.jpg"},
		Tags:          []string{"tech", "modern", "professional"},
		CreatedAt:     day("2024-01-13"),
		UpdatedAt:     day("2024-01-13"),
	},
	{
		ID:            "12",
		Name:          "Golden Anniversary",
		Description:   "Luxurious golden anniversary invitation for milestone celebrations.",
		Category:      models.CategoryAnniversary,
		Price:         decimal.RequireFromString("27.99"),
		IsPremium:     true,
		Thumbnail:     "/templates/anniversary-golden-thumb.jpg",
		PreviewImages: []string{"/templates/anniversary-golden-1.jpg", "/templates/anniversary-golden-2.jpg"},
		Tags:          []string{"luxurious", "golden", "milestone"},
		CreatedAt:     day("2024-01-11"),
		UpdatedAt:     day("2024-01-11"),
	},
	{
		ID:            "13",
		Name:          "Beach Wedding",
		Description:   "Tropical beach wedding invitation with ocean blues and sandy tones.",
		Category:      models.CategoryWedding,
		Price:         decimal.RequireFromString("0"),
		IsPremium:     false,
		Thumbnail:     "/templates/wedding-beach-thumb.jpg",
		PreviewImages: []string{"/templates/wedding-beach-1.jpg", "/templates/wedding-beach-2.jpg"},
		Tags:          []string{"beach", "tropical", "casual"},
		CreatedAt:     day("2024-01-09"),
		UpdatedAt:     day("2024-01-09"),
	},
	{
		ID:            "14",
		Name:          "Kids Birthday Party",
		Description:   "Fun and colorful birthday invitation perfect for children's parties.",
		Category:      models.CategoryBirthday,
		Price:         decimal.RequireFromString("0"),
		IsPremium:     false,
		Thumbnail:     "/templates/birthday-kids-thumb.jpg",
		PreviewImages: []string{"/templates/birthday-kids-1.jpg", "/templates/birthday-kids-2.jpg"},
		Tags:          []string{"kids", "colorful", "playful"},
		CreatedAt:     day("2024-01-07"),
		UpdatedAt:     day("2024-01-07"),
	},
	{
		ID:            "15",
		Name:          "Vintage Engagement",
		Description:   "Classic vintage-style engagement invitation with retro charm.",
		Category:      models.CategoryEngagement,
		Price:         decimal.RequireFromString("16.99"),
		IsPremium:     true,
		Thumbnail:     "/templates/engagement-vintage-thumb.jpg",
		PreviewImages: []string{"/templates/engagement-vintage-1.jpg", "/templates/engagement-vintage-2.jpg"},
		Tags:          []string{"vintage", "retro", "classic"},
		CreatedAt:     day("2024-01-06"),
		UpdatedAt:     day("2024-01-06"),
	},
	{
		ID:            "16",
		Name:          "Elephant Baby Shower",
		Description:   "Adorable elephant-themed baby shower invitation in soft neutrals.",
		Category:      models.CategoryBabyShower,
		Price:         decimal.RequireFromString("0"),
		IsPremium:     false,
		Thumbnail:     "/templates/baby-shower-elephant-thumb.jpg",
		PreviewImages: []string{"/templates/baby-shower-elephant-1.jpg", "/templates/baby-shower-elephant-2.jpg"},
		Tags:          []string{"elephant", "cute", "neutral"},
		CreatedAt:     day("2024-01-04"),
		UpdatedAt:     day("2024-01-04"),
	},
	{
		ID:            "17",
		Name:          "Gala Dinner",
		Description:   "Elegant gala dinner invitation for formal corporate events.",
		Category:      models.CategoryCorporate,
		Price:         decimal.RequireFromString("29.99"),
		IsPremium:     true,
		Thumbnail:     "/templates/corporate-gala-thumb.jpg",
		PreviewImages: []string{"/templates/corporate-gala-1.jpg", "/templates/corporate-gala-2.jpg"},
		Tags:          []string{"formal", "elegant", "gala"},
		CreatedAt:     day("2024-01-02"),
		UpdatedAt:     day("2024-01-02"),
	},
	{
		ID:            "18",
		Name:          "Milestone Birthday",
		Description:   "Celebrate milestone birthdays with this sophisticated design.",
		Category:      models.CategoryBirthday,
		Price:         decimal.RequireFromString("14.99"),
		IsPremium:     true,
		Thumbnail:     "/templates/birthday-milestone-thumb.jpg",
		PreviewImages: []string{"/templates/birthday-milestone-1.jpg", "/templates/birthday-milestone-2.jpg"},
		Tags:          []string{"milestone", "sophisticated", "celebration"},
		CreatedAt:     day("2024-01-01"),
		UpdatedAt:     day("2024-01-01"),
	},
}
