package services

// CategoryKey identifies one of the six cabinet categories. The values match
// the field names used in the persisted project state.
type CategoryKey string

const (
	CategoryWallCabinets  CategoryKey = "wallCabinets"
	CategoryTallCabinets  CategoryKey = "tallCabinets"
	CategoryBaseCabinets  CategoryKey = "baseCabinets"
	CategoryDrawers       CategoryKey = "drawers"
	CategoryPlainPanels   CategoryKey = "plainPanels"
	CategoryAppliedPanels CategoryKey = "appliedPanels"
)

// CabinetCategory is the static configuration for a cabinet category: the
// height and width options a salesperson may pick and the flat per-unit price.
type CabinetCategory struct {
	Key       CategoryKey
	Title     string
	Heights   []string
	Widths    []string
	BasePrice float64
	UnitNoun  string // "doors" or "drawers", used in count badges
}

// CabinetCategories is the ordered category table shared by the selection
// views and the pricing calculation.
var CabinetCategories = []CabinetCategory{
	{
		Key:       CategoryWallCabinets,
		Title:     "Wall Cabinets",
		Heights:   []string{`Up to 18"`, `19"-30"`, `31"-42"`, `42"-48"`, `48"+`},
		Widths:    []string{`Up to 14"`, `15"-21"`, `22"-27"`},
		BasePrice: 150,
		UnitNoun:  "doors",
	},
	{
		Key:       CategoryTallCabinets,
		Title:     "Tall Cabinet Doors",
		Heights:   []string{`60"`},
		Widths:    []string{`Up to 14"`, `15"-21"`, `22"-27"`},
		BasePrice: 200,
		UnitNoun:  "doors",
	},
	{
		Key:       CategoryBaseCabinets,
		Title:     "Base Cabinet Doors",
		Heights:   []string{`30"`},
		Widths:    []string{`Up to 14"`, `15"-21"`, `22"-27"`},
		BasePrice: 175,
		UnitNoun:  "doors",
	},
	{
		Key:       CategoryDrawers,
		Title:     "Drawers",
		Heights:   []string{`6"`, `12"`},
		Widths:    []string{`Up to 14"`, `15"-21"`, `22"-27"`, `28"-36"`},
		BasePrice: 100,
		UnitNoun:  "drawers",
	},
	{
		Key:       CategoryPlainPanels,
		Title:     "Plain Panels",
		Heights:   []string{`Up to 36"`, `37"-48"`},
		Widths:    []string{`Up to 14"`, `15"-21"`, `22"-27"`, `28"-36"`, `Over 36"`},
		BasePrice: 80,
		UnitNoun:  "doors",
	},
	{
		Key:       CategoryAppliedPanels,
		Title:     "Applied Door Panels",
		Heights:   []string{`Up to 36"`, `37"-48"`},
		Widths:    []string{`Up to 14"`, `15"-21"`, `22"-27"`},
		BasePrice: 120,
		UnitNoun:  "doors",
	},
}

// FindCategory looks up a category by key.
func FindCategory(key CategoryKey) (CabinetCategory, bool) {
	for _, c := range CabinetCategories {
		if c.Key == key {
			return c, true
		}
	}
	return CabinetCategory{}, false
}

// AllowsHeight reports whether h is one of the category's height options.
func (c CabinetCategory) AllowsHeight(h string) bool {
	return contains(c.Heights, h)
}

// AllowsWidth reports whether w is one of the category's width options.
func (c CabinetCategory) AllowsWidth(w string) bool {
	return contains(c.Widths, w)
}

// ZeroQuantities returns a width -> 0 map covering every width option.
func (c CabinetCategory) ZeroQuantities() map[string]int {
	q := make(map[string]int, len(c.Widths))
	for _, w := range c.Widths {
		q[w] = 0
	}
	return q
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
