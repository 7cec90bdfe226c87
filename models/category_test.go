package models

import (
    "testing"

    "github.com/stretchr/testify/require"
)

func TestRulesForEveryCategory(t *testing.T) {
    for _, c := range Categories() {
        rules, err := RulesFor(c)
        require.NoError(t, err, "category %q", c)

        // Specification is mutually exclusive with the
        // responsible-party group.
        if rules.Specification {
            require.False(t, rules.ResponsibleParty, "category %q", c)
        }
    }
}

func TestRulesForUnknownCategory(t *testing.T) {
    _, err := RulesFor(Category("Barber"))
    require.ErrorIs(t, err, ErrInvalidCategory)

    require.False(t, ValidCategory(Category("Barber")))
    require.True(t, ValidCategory(CategoryShops))
}

func TestOrganizationalSubset(t *testing.T) {
    organizational := []Category{
        CategoryGramaPanchayat, CategoryShops, CategorySchools,
        CategoryWineShop, CategoryRiceMill, CategoryInterlockFactory,
        CategoryMilkDairy,
    }
    for _, c := range organizational {
        rules, err := RulesFor(c)
        require.NoError(t, err)
        require.True(t, rules.Staff, "category %q", c)
        require.True(t, rules.Contact, "category %q", c)
        require.False(t, rules.Specification, "category %q", c)

        // Grama Panchayat is organizational but carries no
        // responsible party.
        if c == CategoryGramaPanchayat {
            require.False(t, rules.ResponsibleParty)
        } else {
            require.True(t, rules.ResponsibleParty, "category %q", c)
        }
    }
}

func TestIndividualProfessionalSubset(t *testing.T) {
    professionals := []Category{
        CategoryElectrician, CategoryDoctors, CategoryEngineers, CategoryTeachers,
    }
    for _, c := range professionals {
        require.True(t, IsIndividualProfessional(c), "category %q", c)
        rules, err := RulesFor(c)
        require.NoError(t, err)
        require.True(t, rules.Contact)
        require.True(t, rules.Specification)
        require.True(t, rules.Staff)
        require.False(t, rules.ResponsibleParty)
    }
    require.False(t, IsIndividualProfessional(CategoryShops))
    require.False(t, IsIndividualProfessional(CategoryTemple))
}

func TestTempleRules(t *testing.T) {
    require.True(t, IsTemple(CategoryTemple))
    rules, err := RulesFor(CategoryTemple)
    require.NoError(t, err)
    require.Equal(t, CategoryRules{}, rules)
}

func TestGramaPanchayatPredicate(t *testing.T) {
    require.True(t, IsGramaPanchayat(CategoryGramaPanchayat))
    require.False(t, IsGramaPanchayat(CategoryShops))
}

func TestCategoriesIsACopy(t *testing.T) {
    first := Categories()
    first[0] = Category("mutated")
    require.Equal(t, CategoryGramaPanchayat, Categories()[0])
}
