package cli

import "github.com/aretw0/tradein/pkg/domain"

// DemoProducts is the built-in console list used when no storefront API is configured.
func DemoProducts() []domain.Product {
	memories := func(extra ...domain.PricedOption) []domain.PricedOption {
		return append([]domain.PricedOption{{Name: "825GB", Price: 0}}, extra...)
	}
	return []domain.Product{
		{
			ID: "ps5", Slug: "playstation-5", Name: "PlayStation 5",
			Platform: domain.PlatformPlaystation, OfferPrice: domain.Units(400),
			Images:   []string{"/images/ps5.png"},
			Models:   []domain.PricedOption{{Name: "Standard"}, {Name: "Slim", Price: domain.Units(30)}},
			Memories: memories(domain.PricedOption{Name: "1TB", Price: domain.Units(50)}, domain.PricedOption{Name: "2TB", Price: domain.Units(120)}),
		},
		{
			ID: "ps5-digital", Slug: "playstation-5-digital", Name: "PlayStation 5 Digital Edition",
			Platform: domain.PlatformPlaystation, OfferPrice: domain.Units(350),
			Images:   []string{"/images/ps5-digital.png"},
			Memories: memories(domain.PricedOption{Name: "1TB", Price: domain.Units(50)}),
		},
		{
			ID: "xbox-series-x", Slug: "xbox-series-x", Name: "Xbox Series X",
			Platform: domain.PlatformXbox, OfferPrice: domain.Units(380),
			Images:   []string{"/images/xbox-series-x.png"},
			Memories: []domain.PricedOption{{Name: "1TB"}, {Name: "2TB", Price: domain.Units(100)}},
		},
		{
			ID: "xbox-series-s", Slug: "xbox-series-s", Name: "Xbox Series S",
			Platform: domain.PlatformXbox, OfferPrice: domain.Units(220),
			Images:   []string{"/images/xbox-series-s.png"},
			Memories: []domain.PricedOption{{Name: "512GB"}, {Name: "1TB", Price: domain.Units(50)}},
		},
		{
			ID: "switch-oled", Slug: "nintendo-switch-oled", Name: "Nintendo Switch OLED",
			Platform: domain.PlatformNintendo, OfferPrice: domain.Units(250),
			Images: []string{"/images/switch-oled.png"},
		},
		{
			ID: "switch", Slug: "nintendo-switch", Name: "Nintendo Switch",
			Platform: domain.PlatformNintendo, OfferPrice: domain.Units(200),
			Images: []string{"/images/switch.png"},
		},
	}
}
