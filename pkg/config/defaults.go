package config

import "github.com/raykavin/tokenwatch/pkg/core"

// DefaultTokens is the compiled-in tracked-token table. A zero buy price
// means the token has no reference price: it is reported but its
// deviation stays at 0.
func DefaultTokens() []core.TokenSettings {
	return []core.TokenSettings{
		{
			Name:           "BGS",
			Address:        "0xf339e8c294046e6e7ef6ad4f6fa9e202b59b556b",
			Feed:           "pancake",
			BuyPrice:       0.03,
			AlertThreshold: 30,
		},
		{
			Name:           "ILA",
			Address:        "0x4fBEdC7b946e489208DED562e8E5f2bc83B7de42",
			Feed:           "pancake",
			BuyPrice:       0.01,
			AlertThreshold: 1200,
		},
		{
			Name:           "WOO",
			Address:        "0x4691937a7508860f876c9c0a2a617e7d9e945d4b",
			Feed:           "pancake",
			BuyPrice:       0.75,
			AlertThreshold: 100,
		},
		{
			Name:           "SPARTA",
			Address:        "0x3910db0600ea925f63c36ddb1351ab6e2c6eb102",
			Feed:           "oneinch",
			BuyPrice:       0,
			AlertThreshold: 30,
		},
	}
}
