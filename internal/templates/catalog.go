// Package templates holds the static storefront design presets merchants
// choose from when they apply.
package templates

import "github.com/LavaJover/shvark-storefront-service/internal/domain"

const (
	CategoryFashion     = "fashion"
	CategoryElectronics = "electronics"
	CategoryFood        = "food"
	CategoryBeauty      = "beauty"
	CategoryGeneral     = "general"
)

var presets = []domain.Template{
	{
		ID:          "fashion-elegance",
		Name:        "Elegance",
		NameAr:      "أناقة",
		Category:    CategoryFashion,
		Description: "Editorial layout with large imagery for clothing and accessories",
		Colors: domain.StoreColors{
			Primary: "#1F1F1F", Secondary: "#C9A227", Background: "#FFFFFF",
			Accent: "#C9A227", Text: "#1F1F1F", Border: "#E5E5E5",
			HeaderBackground: "#FFFFFF", FooterBackground: "#1F1F1F",
		},
		Fonts:    domain.StoreFonts{Heading: "Playfair Display", Body: "Tajawal"},
		Layout:   domain.StoreLayout{HeaderStyle: "centered", FooterStyle: "columns", ProductCardStyle: "overlay", ProductGridColumns: 3, ShowSearchBar: true},
		Homepage: domain.HomepageSections{Hero: true, Categories: true, FeaturedProducts: true, NewArrivals: true, Newsletter: true},
	},
	{
		ID:          "tech-modern",
		Name:        "Modern Tech",
		NameAr:      "تقنية حديثة",
		Category:    CategoryElectronics,
		Description: "Dense grid with specs-first product cards",
		Colors: domain.StoreColors{
			Primary: "#2563EB", Secondary: "#0F172A", Background: "#F8FAFC",
			Accent: "#22D3EE", Text: "#0F172A", Border: "#CBD5E1",
			HeaderBackground: "#0F172A", FooterBackground: "#0F172A",
		},
		Fonts:    domain.StoreFonts{Heading: "Inter", Body: "Cairo"},
		Layout:   domain.StoreLayout{HeaderStyle: "left-aligned", FooterStyle: "compact", ProductCardStyle: "bordered", ProductGridColumns: 4, ShowSearchBar: true},
		Homepage: domain.HomepageSections{Hero: true, Categories: true, FeaturedProducts: true, NewArrivals: true},
	},
	{
		ID:          "food-fresh",
		Name:        "Fresh Market",
		NameAr:      "السوق الطازج",
		Category:    CategoryFood,
		Description: "Warm palette for groceries, bakeries and restaurants",
		Colors: domain.StoreColors{
			Primary: "#16A34A", Secondary: "#F59E0B", Background: "#FFFBEB",
			Accent: "#F97316", Text: "#292524", Border: "#FDE68A",
			HeaderBackground: "#FFFFFF", FooterBackground: "#14532D",
		},
		Fonts:    domain.StoreFonts{Heading: "Poppins", Body: "Almarai"},
		Layout:   domain.StoreLayout{HeaderStyle: "left-aligned", FooterStyle: "columns", ProductCardStyle: "rounded", ProductGridColumns: 3},
		Homepage: domain.HomepageSections{Hero: true, Categories: true, FeaturedProducts: true, Testimonials: true},
	},
	{
		ID:          "beauty-glow",
		Name:        "Glow",
		NameAr:      "توهج",
		Category:    CategoryBeauty,
		Description: "Soft tones for cosmetics and personal care",
		Colors: domain.StoreColors{
			Primary: "#DB2777", Secondary: "#FBCFE8", Background: "#FFF1F2",
			Accent: "#F472B6", Text: "#4A044E", Border: "#FBCFE8",
			HeaderBackground: "#FFFFFF", FooterBackground: "#831843",
		},
		Fonts:    domain.StoreFonts{Heading: "Lora", Body: "Tajawal"},
		Layout:   domain.StoreLayout{HeaderStyle: "centered", FooterStyle: "columns", ProductCardStyle: "rounded", ProductGridColumns: 3, ShowSearchBar: true},
		Homepage: domain.HomepageSections{Hero: true, FeaturedProducts: true, NewArrivals: true, Testimonials: true, Newsletter: true},
	},
	{
		ID:          "minimal-classic",
		Name:        "Classic",
		NameAr:      "كلاسيك",
		Category:    CategoryGeneral,
		Description: "Neutral starting point for any kind of shop",
		Colors: domain.StoreColors{
			Primary: "#111827", Secondary: "#6B7280", Background: "#FFFFFF",
			Accent: "#3B82F6", Text: "#111827", Border: "#E5E7EB",
			HeaderBackground: "#FFFFFF", FooterBackground: "#F9FAFB",
		},
		Fonts:    domain.StoreFonts{Heading: "Inter", Body: "Cairo"},
		Layout:   domain.StoreLayout{HeaderStyle: "left-aligned", FooterStyle: "compact", ProductCardStyle: "plain", ProductGridColumns: 4, ShowSearchBar: true},
		Homepage: domain.HomepageSections{Hero: true, Categories: true, FeaturedProducts: true},
	},
}

type StaticCatalog struct {
	byID  map[string]domain.Template
	order []string
}

func NewStaticCatalog() *StaticCatalog {
	return NewCatalog(presets)
}

func NewCatalog(tmpls []domain.Template) *StaticCatalog {
	c := &StaticCatalog{byID: make(map[string]domain.Template, len(tmpls))}
	for _, t := range tmpls {
		if _, dup := c.byID[t.ID]; !dup {
			c.order = append(c.order, t.ID)
		}
		c.byID[t.ID] = t
	}
	return c
}

// FindByID returns a copy of the preset, or nil when id is unknown.
func (c *StaticCatalog) FindByID(id string) *domain.Template {
	t, ok := c.byID[id]
	if !ok {
		return nil
	}
	return &t
}

func (c *StaticCatalog) List() []*domain.Template {
	out := make([]*domain.Template, 0, len(c.order))
	for _, id := range c.order {
		t := c.byID[id]
		out = append(out, &t)
	}
	return out
}
