package seed

import (
	"time"

	"fitography/internal/models"
)

const day = 24 * time.Hour

// Posts returns the authored seed feed, used only when no valid persisted
// collection exists. The order is the authored one: freshly uploaded posts
// are prepended in front of it by the store.
func Posts() []models.Post {
	now := time.Now()
	at := func(daysAgo int) int64 {
		return now.Add(-time.Duration(daysAgo) * day).UnixMilli()
	}

	return []models.Post{
		{
			ID:        "seed_fit2",
			Src:       "/assets/fits/fit-2.jpg",
			Caption:   "",
			Tags:      []string{"light blue", "denim", "converse"},
			User:      "chicbabe03",
			CreatedAt: at(11),
		},
		{
			ID:        "seed_fit3",
			Src:       "/assets/fits/fit-3.jpg",
			Caption:   "",
			Tags:      []string{"green", "white", "football", "dress"},
			User:      "littlemsrager",
			CreatedAt: at(10),
		},
		{
			ID:        "seed_fit4",
			Src:       "/assets/fits/fit-4.jpg",
			Caption:   "",
			Tags:      []string{"yellow", "green", "football", "denim"},
			User:      "littlemsrager",
			CreatedAt: at(9),
		},
		{
			ID:        "seed_fit5",
			Src:       "/assets/fits/fit-5.jpg",
			Caption:   "",
			Tags:      []string{"black", "cargo", "shorts", "blue"},
			User:      "littlemsrager",
			CreatedAt: at(8),
		},
		{
			ID:        "seed_fit6",
			Src:       "/assets/fits/fit-6.jpg",
			Caption:   "",
			Tags:      []string{"black", "red", "bomber", "uggs"},
			User:      "danzo",
			CreatedAt: at(7),
		},
		{
			ID:        "seed_fit7",
			Src:       "/assets/fits/fit-7.jpg",
			Caption:   "",
			Tags:      []string{"green", "black", "grey", "beanie"},
			User:      "danzo",
			CreatedAt: at(6),
		},
		{
			ID:        "seed_fit9",
			Src:       "/assets/fits/fit-9.jpg",
			Caption:   "",
			Tags:      []string{"leather", "layers", "grey"},
			User:      "rolls",
			CreatedAt: at(5),
		},
		{
			ID:        "seed_fit11",
			Src:       "/assets/fits/fit-11.jpg",
			Caption:   "",
			Tags:      []string{"pink", "scarf", "charcoal", "carhartt"},
			User:      "tofu",
			CreatedAt: at(4),
		},
		{
			ID:        "seed_fit13",
			Src:       "/assets/fits/fit-13.jpg",
			Caption:   "",
			Tags:      []string{"sweats", "creme", "handbag"},
			User:      "cozy",
			CreatedAt: at(3),
		},
		{
			ID:        "seed_fit14",
			Src:       "/assets/fits/fit-14.jpg",
			Caption:   "",
			Tags:      []string{"navy", "denim", "undershirt"},
			User:      "rolls",
			CreatedAt: at(2),
		},
		{
			ID:        "seed_fit15",
			Src:       "/assets/fits/fit-15.jpg",
			Caption:   "",
			Tags:      []string{"cargo", "crop top", "black"},
			User:      "rolls",
			CreatedAt: at(1),
		},
	}
}
