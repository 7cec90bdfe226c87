package models

// Category tags a business/service listing. The tag decides which
// attribute groups the listing carries, see categoryRules below.
type Category string

const (
    CategoryGramaPanchayat   Category = "Grama Panchayat"
    CategoryShops            Category = "Shops"
    CategorySchools          Category = "Schools"
    CategoryWineShop         Category = "Wine Shop"
    CategoryRiceMill         Category = "Rice Mill"
    CategoryInterlockFactory Category = "Interlock Factory"
    CategoryMilkDairy        Category = "Milk Dairy"
    CategoryElectrician      Category = "Electrician"
    CategoryDoctors          Category = "Doctors"
    CategoryEngineers        Category = "Engineers"
    CategoryTeachers         Category = "Teachers"
    CategoryTemple           Category = "Temple"
)

// CategoryRules lists the attribute groups a category carries.
// Specification is mutually exclusive with ResponsibleParty and Staff.
type CategoryRules struct {
    Contact          bool // phone number
    ResponsibleParty bool // owner/principal name
    Specification    bool // free-text qualifier for individual professionals
    Staff            bool // members array (empty but present for professionals)
}

// categoryRules is the single source of truth for listing shape. Both
// creation and staff edits consult it; nothing derives group membership
// at runtime.
var categoryRules = map[Category]CategoryRules{
    CategoryGramaPanchayat:   {Contact: true, ResponsibleParty: false, Staff: true},
    CategoryShops:            {Contact: true, ResponsibleParty: true, Staff: true},
    CategorySchools:          {Contact: true, ResponsibleParty: true, Staff: true},
    CategoryWineShop:         {Contact: true, ResponsibleParty: true, Staff: true},
    CategoryRiceMill:         {Contact: true, ResponsibleParty: true, Staff: true},
    CategoryInterlockFactory: {Contact: true, ResponsibleParty: true, Staff: true},
    CategoryMilkDairy:        {Contact: true, ResponsibleParty: true, Staff: true},
    CategoryElectrician:      {Contact: true, Specification: true, Staff: true},
    CategoryDoctors:          {Contact: true, Specification: true, Staff: true},
    CategoryEngineers:        {Contact: true, Specification: true, Staff: true},
    CategoryTeachers:         {Contact: true, Specification: true, Staff: true},
    CategoryTemple:           {},
}

// categoryOrder keeps the enumeration stable for API responses.
var categoryOrder = []Category{
    CategoryGramaPanchayat,
    CategoryShops,
    CategorySchools,
    CategoryWineShop,
    CategoryRiceMill,
    CategoryInterlockFactory,
    CategoryMilkDairy,
    CategoryElectrician,
    CategoryDoctors,
    CategoryEngineers,
    CategoryTeachers,
    CategoryTemple,
}

// RulesFor returns the rule table entry for a category.
func RulesFor(c Category) (CategoryRules, error) {
    rules, ok := categoryRules[c]
    if !ok {
        return CategoryRules{}, invalidCategory(c)
    }
    return rules, nil
}

// ValidCategory reports whether c is part of the fixed enumeration.
func ValidCategory(c Category) bool {
    _, ok := categoryRules[c]
    return ok
}

// Categories returns the fixed enumeration in display order.
func Categories() []Category {
    out := make([]Category, len(categoryOrder))
    copy(out, categoryOrder)
    return out
}

// IsIndividualProfessional reports whether the category is one person
// offering a service (Electrician, Doctors, Engineers, Teachers). These
// carry a specification and an always-empty staff list.
func IsIndividualProfessional(c Category) bool {
    rules, ok := categoryRules[c]
    return ok && rules.Specification
}

// IsTemple reports whether the category has no contact or staff concept
// at all.
func IsTemple(c Category) bool {
    return c == CategoryTemple
}

// IsGramaPanchayat suppresses the responsible-party group even though
// the category is otherwise organizational.
func IsGramaPanchayat(c Category) bool {
    return c == CategoryGramaPanchayat
}
