package models

import (
    "strings"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/bson/primitive"
)

// Villager is a person record submitted through the public form.
// LowercaseName is a case-folded copy of Name stored solely so prefix
// range queries work against a store that has no case-insensitive
// matching.
type Villager struct {
    ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
    Name          string             `bson:"name" json:"name"`
    LowercaseName string             `bson:"lowercaseName" json:"-"`
    Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
    Work          string             `bson:"work,omitempty" json:"work,omitempty"`
    Address       string             `bson:"address,omitempty" json:"address,omitempty"`
    Age           string             `bson:"age,omitempty" json:"age,omitempty"`
    DOB           string             `bson:"dob,omitempty" json:"dob,omitempty"`
    LocationLink  string             `bson:"locationLink,omitempty" json:"locationLink,omitempty"`
    PhotoURL      string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
}

// VillagerFields is the raw form input for a new villager record.
type VillagerFields struct {
    Name         string `json:"name"`
    Phone        string `json:"phone"`
    Work         string `json:"work"`
    Address      string `json:"address"`
    Age          string `json:"age"`
    DOB          string `json:"dob"`
    LocationLink string `json:"locationLink"`
}

// NewVillager validates and normalizes form input into a villager
// record ready for insert. The folded name is derived here and nowhere
// else.
func NewVillager(fields VillagerFields, photoURL string) (Villager, error) {
    if strings.TrimSpace(fields.Name) == "" {
        return Villager{}, missingField("name")
    }
    return Villager{
        Name:          fields.Name,
        LowercaseName: FoldName(fields.Name),
        Phone:         fields.Phone,
        Work:          fields.Work,
        Address:       fields.Address,
        Age:           fields.Age,
        DOB:           fields.DOB,
        LocationLink:  fields.LocationLink,
        PhotoURL:      photoURL,
    }, nil
}

// FoldName lowercases a display name for storage alongside it. It
// guarantees prefix matches on the folded string only; this is not
// ranked or fuzzy search.
func FoldName(name string) string {
    return strings.ToLower(name)
}

// NamePrefixFilter builds the closed range [term, term+U+F8FF] over the
// folded name, the standard workaround for a document store that offers
// neither case-insensitive nor substring queries.
func NamePrefixFilter(term string) bson.M {
    folded := FoldName(term)
    return bson.M{
        "lowercaseName": bson.M{
            "$gte": folded,
            "$lte": folded + "",
        },
    }
}
