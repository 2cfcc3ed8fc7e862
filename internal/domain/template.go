package domain

// Template is a static design preset a merchant picks when applying.
type Template struct {
	ID          string
	Name        string
	NameAr      string
	Category    string
	Description string
	Colors      StoreColors
	Fonts       StoreFonts
	Layout      StoreLayout
	Homepage    HomepageSections
}

type TemplateCatalog interface {
	// FindByID returns nil when the template is unknown.
	FindByID(id string) *Template
	List() []*Template
}
