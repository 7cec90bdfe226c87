package models

import (
    "encoding/json"
    "testing"

    "github.com/stretchr/testify/require"
)

func docKeys(t *testing.T, l Listing) map[string]bool {
    t.Helper()
    doc, err := l.Doc()
    require.NoError(t, err)
    keys := make(map[string]bool, len(doc))
    for k := range doc {
        keys[k] = true
    }
    return keys
}

func TestBuildListingShapeIsCategoryPure(t *testing.T) {
    // Two listings of the same category with different values must have
    // identical key sets.
    for _, c := range Categories() {
        a, err := BuildListing(c, ListingFields{
            Name: "First", Phone: "100", Address: "A St",
            OwnerName: "O", Specification: "S",
        }, "")
        require.NoError(t, err, "category %q", c)

        b, err := BuildListing(c, ListingFields{
            Name: "Second", Phone: "200", Address: "B St",
            LocationLink: "https://maps.example/x",
            OwnerName:    "P", Specification: "T",
            Members:      []Member{{Name: "M", Work: "W", Phone: "1"}},
        }, "/api/v1/photos/business_photos/abc-x.jpg")
        require.NoError(t, err, "category %q", c)

        require.Equal(t, docKeys(t, a), docKeys(t, b), "category %q", c)
    }
}

func TestBuildListingTemple(t *testing.T) {
    listing, err := BuildListing(CategoryTemple, ListingFields{
        Name:    "Shiva Temple",
        Address: "Hill Rd",
        Phone:   "9000000000",
        Members: []Member{{Name: "ignored"}},
    }, "")
    require.NoError(t, err)

    doc, err := listing.Doc()
    require.NoError(t, err)

    // Temple listings have no members key at all, not an empty one,
    // and no contact group.
    require.NotContains(t, doc, "members")
    require.NotContains(t, doc, "phone")
    require.NotContains(t, doc, "ownerName")
    require.NotContains(t, doc, "specification")
    require.Equal(t, "Shiva Temple", doc["name"])
}

func TestBuildListingIndividualProfessional(t *testing.T) {
    listing, err := BuildListing(CategoryElectrician, ListingFields{
        Name:          "Ravi",
        Phone:         "9000000000",
        Address:       "Main St",
        Specification: "House wiring",
    }, "")
    require.NoError(t, err)

    require.Equal(t, "Ravi", listing.Name)
    require.Equal(t, "9000000000", listing.Phone)
    require.Equal(t, "House wiring", listing.Specification)
    require.NotNil(t, listing.Members)
    require.Len(t, listing.Members, 0)

    doc, err := listing.Doc()
    require.NoError(t, err)
    require.Contains(t, doc, "members")
    require.NotContains(t, doc, "ownerName")

    // Professionals always start with an empty staff list, even when
    // the form sneaks members in.
    withMembers, err := BuildListing(CategoryDoctors, ListingFields{
        Name:    "Dr. Rao",
        Members: []Member{{Name: "A", Work: "Nurse", Phone: "1"}},
    }, "")
    require.NoError(t, err)
    require.Len(t, withMembers.Members, 0)
}

func TestBuildListingOrganization(t *testing.T) {
    listing, err := BuildListing(CategoryShops, ListingFields{
        Name:      "Ravi Store",
        OwnerName: "Ravi",
        Phone:     "9000000001",
        Address:   "Main St",
        Members:   []Member{{Name: "A", Work: "Clerk", Phone: "1"}},
    }, "")
    require.NoError(t, err)

    require.Equal(t, "Ravi", listing.OwnerName)
    require.Equal(t, []Member{{Name: "A", Work: "Clerk", Phone: "1"}}, listing.Members)
    require.Empty(t, listing.Specification)

    doc, err := listing.Doc()
    require.NoError(t, err)
    require.Contains(t, doc, "ownerName")
    require.NotContains(t, doc, "specification")
}

func TestBuildListingGramaPanchayatDropsOwner(t *testing.T) {
    listing, err := BuildListing(CategoryGramaPanchayat, ListingFields{
        Name:      "Manchikoppa GP",
        OwnerName: "should be dropped",
        Phone:     "080-123",
        Members:   []Member{{Name: "Clerk One", Work: "Clerk", Phone: "2"}},
    }, "")
    require.NoError(t, err)

    require.Empty(t, listing.OwnerName)
    require.Len(t, listing.Members, 1)

    doc, err := listing.Doc()
    require.NoError(t, err)
    require.NotContains(t, doc, "ownerName")
    require.Contains(t, doc, "members")
    require.Contains(t, doc, "phone")
}

func TestBuildListingErrors(t *testing.T) {
    _, err := BuildListing(Category("Gym"), ListingFields{Name: "X"}, "")
    require.ErrorIs(t, err, ErrInvalidCategory)

    _, err = BuildListing(CategoryShops, ListingFields{Name: "   "}, "")
    require.ErrorIs(t, err, ErrMissingRequiredField)

    _, err = BuildListing(CategoryShops, ListingFields{
        Name:    "Store",
        Members: []Member{{Name: "", Work: "Clerk"}},
    }, "")
    require.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestDocKeepsEmptyMembersForNilSlice(t *testing.T) {
    // A listing decoded from an older document may carry a nil slice;
    // serialization still emits members=[] for staff categories.
    listing := Listing{Type: CategoryShops, Name: "Store"}
    doc, err := listing.Doc()
    require.NoError(t, err)
    require.Equal(t, []Member{}, doc["members"])
}

func TestListingJSONKeyPresence(t *testing.T) {
    temple := Listing{Type: CategoryTemple, Name: "Shiva Temple"}
    data, err := json.Marshal(temple)
    require.NoError(t, err)
    var templeDoc map[string]interface{}
    require.NoError(t, json.Unmarshal(data, &templeDoc))
    require.NotContains(t, templeDoc, "members")

    doctor := Listing{Type: CategoryDoctors, Name: "Dr. Rao"}
    data, err = json.Marshal(doctor)
    require.NoError(t, err)
    var doctorDoc map[string]interface{}
    require.NoError(t, json.Unmarshal(data, &doctorDoc))
    require.Contains(t, doctorDoc, "members")
    require.Equal(t, []interface{}{}, doctorDoc["members"])
}

func TestDocUnknownCategory(t *testing.T) {
    listing := Listing{Type: Category("Gym"), Name: "X"}
    _, err := listing.Doc()
    require.ErrorIs(t, err, ErrInvalidCategory)
}
