package services

// DoorStyle is a selectable cabinet door design.
type DoorStyle struct {
	ID          string
	Name        string
	Description string
	PriceNote   string
}

// DoorStyleOptions returns the list of door styles offered in the wizard.
var DoorStyleOptions = []DoorStyle{
	{ID: "shaker", Name: "Shaker", Description: "Classic American style with clean lines", PriceNote: "Base Price"},
	{ID: "raised-panel", Name: "Raised Panel", Description: "Traditional style with decorative raised center", PriceNote: "+$15 per door"},
	{ID: "flat-panel", Name: "Flat Panel", Description: "Modern minimalist design", PriceNote: "Base Price"},
	{ID: "beadboard", Name: "Beadboard", Description: "Cottage style with vertical grooves", PriceNote: "+$25 per door"},
}

// Finish is a selectable color/finish for the refaced doors.
type Finish struct {
	ID          string
	Name        string
	Description string
	Color       string // swatch hex
}

// FinishOptions returns the list of finishes offered in the wizard.
var FinishOptions = []Finish{
	{ID: "white", Name: "Classic White", Description: "Timeless and versatile", Color: "#FFFFFF"},
	{ID: "espresso", Name: "Espresso", Description: "Rich dark brown", Color: "#3C2415"},
	{ID: "gray", Name: "Storm Gray", Description: "Modern neutral", Color: "#6B7280"},
	{ID: "navy", Name: "Navy Blue", Description: "Bold and sophisticated", Color: "#1E3A8A"},
	{ID: "sage", Name: "Sage Green", Description: "Natural and calming", Color: "#84A98C"},
	{ID: "natural", Name: "Natural Oak", Description: "Wood grain finish", Color: "#DEB887"},
}

// FindDoorStyle returns the door style with the given id.
func FindDoorStyle(id string) (DoorStyle, bool) {
	for _, s := range DoorStyleOptions {
		if s.ID == id {
			return s, true
		}
	}
	return DoorStyle{}, false
}

// FindFinish returns the finish with the given id.
func FindFinish(id string) (Finish, bool) {
	for _, f := range FinishOptions {
		if f.ID == id {
			return f, true
		}
	}
	return Finish{}, false
}

// DoorStyleName returns the display name for a door style id, falling back to
// the raw id for values not in the catalog.
func DoorStyleName(id string) string {
	if s, ok := FindDoorStyle(id); ok {
		return s.Name
	}
	return id
}

// FinishName returns the display name for a finish id.
func FinishName(id string) string {
	if f, ok := FindFinish(id); ok {
		return f.Name
	}
	return id
}

// USStateCodes lists the two-letter postal codes accepted for the customer's
// state, including DC.
var USStateCodes = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}
