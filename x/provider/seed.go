package provider

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/verimark/verimark/core"
)

// seedProviders is the static marketplace catalog. The accuracy figures
// are marketing claims carried as-is, not measured properties.
var seedProviders = []core.Provider{
	{
		ID:              "provider1",
		DisplayName:     "TruthLens Premium",
		PriceAmount:     2.5,
		PriceCurrency:   "WLD",
		ClaimedAccuracy: 0.99,
		Specialty:       "academic writing",
		Chains:          pq.StringArray{core.ChainWorld, core.ChainRootstock},
	},
	{
		ID:              "provider2",
		DisplayName:     "PatternGuard",
		PriceAmount:     0.8,
		PriceCurrency:   "WLD",
		ClaimedAccuracy: 0.91,
		Specialty:       "chatbot transcripts",
		Chains:          pq.StringArray{core.ChainWorld},
	},
	{
		ID:              "provider3",
		DisplayName:     "StatSift",
		PriceAmount:     0.5,
		PriceCurrency:   "RBTC",
		ClaimedAccuracy: 0.88,
		Specialty:       "news and blog posts",
		Chains:          pq.StringArray{core.ChainWorld, core.ChainRootstock},
	},
	{
		ID:              "provider4",
		DisplayName:     "BurstCheck",
		PriceAmount:     1.2,
		PriceCurrency:   "RBTC",
		ClaimedAccuracy: 0.93,
		Specialty:       "long-form essays",
		Chains:          pq.StringArray{core.ChainRootstock},
	},
	{
		ID:              "provider5",
		DisplayName:     "TruthLens Enterprise",
		PriceAmount:     4.0,
		PriceCurrency:   "WLD",
		ClaimedAccuracy: 0.97,
		Specialty:       "legal documents",
		Chains:          pq.StringArray{core.ChainWorld, core.ChainRootstock},
	},
}

// Seed installs the catalog. Existing rows win so operators can adjust
// pricing without it being reverted on restart.
func Seed(db *gorm.DB) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seedProviders).Error
}
