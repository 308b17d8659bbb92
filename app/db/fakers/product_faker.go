package fakers

import (
	"fmt"
	"math/rand"

	"github.com/aureliajewels/jewelry-cms/app/helpers"
	"github.com/aureliajewels/jewelry-cms/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	materials = []string{"Gold", "Rose Gold", "White Gold", "Platinum", "Silver"}
	pieces    = []string{"Solitaire Ring", "Pendant", "Hoop Earrings", "Tennis Bracelet", "Chain Necklace", "Bangle", "Stud Earrings"}
	karats    = []int{14, 18, 22, 24}
)

// ProductFaker builds one plausible catalog row for seeding and demos.
func ProductFaker(categoryID string) *models.Product {
	name := fmt.Sprintf("%s %s", materials[rand.Intn(len(materials))], pieces[rand.Intn(len(pieces))])
	id := uuid.New().String()

	return &models.Product{
		ID:           id,
		Code:         fmt.Sprintf("AUR-%s", id[:8]),
		Name:         name,
		Slug:         helpers.GenerateSlug(fmt.Sprintf("%s-%s", name, id[:8])),
		Description:  faker.Paragraph(),
		CategoryID:   categoryID,
		Price:        decimal.NewFromInt(int64(rand.Intn(9500)+500)).Round(2),
		Stock:        rand.Intn(50) + 1,
		GoldKarat:    karats[rand.Intn(len(karats))],
		GoldWeight:   decimal.NewFromFloat(float64(rand.Intn(200)+10) / 10).Round(3),
		DiamondCarat: decimal.NewFromFloat(float64(rand.Intn(30)) / 10).Round(3),
		IsActive:     true,
	}
}

func ReviewFaker(productID string) *models.Review {
	return &models.Review{
		ID:        uuid.New().String(),
		ProductID: productID,
		Author:    faker.Name(),
		Rating:    rand.Intn(3) + 3,
		Comment:   faker.Sentence(),
		IsActive:  true,
	}
}

func SubscriptionFaker() *models.EmailSubscription {
	return &models.EmailSubscription{
		ID:       uuid.New().String(),
		Email:    faker.Email(),
		IsActive: true,
	}
}
