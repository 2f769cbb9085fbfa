package domain

// Console is a tradeable console as listed by the storefront backend.
type Console struct {
	ID        string   `json:"id"`
	Slug      string   `json:"slug,omitempty"`
	Name      string   `json:"name"`
	BasePrice Amount   `json:"base_price"`
	ImageRef  string   `json:"image_ref,omitempty"`
	Platform  Platform `json:"platform"`
}

// PricedOption is a product variant (model or memory size) with its surcharge.
type PricedOption struct {
	Name  string `json:"name"`
	Price Amount `json:"price"`
}

// Product is a sellable console with its configurable variants.
type Product struct {
	ID         string         `json:"id"`
	Slug       string         `json:"slug"`
	Name       string         `json:"name"`
	Platform   Platform       `json:"platform"`
	OfferPrice Amount         `json:"offer_price"`
	Images     []string       `json:"images,omitempty"`
	Models     []PricedOption `json:"models,omitempty"`
	Memories   []PricedOption `json:"memories,omitempty"`
}

// Console projects the product onto the wizard's console selection.
func (p Product) Console(imageBase string) Console {
	c := Console{
		ID:        p.ID,
		Slug:      p.Slug,
		Name:      p.Name,
		BasePrice: p.OfferPrice,
		Platform:  p.Platform,
	}
	if len(p.Images) > 0 {
		c.ImageRef = imageBase + p.Images[0]
	}
	return c
}
