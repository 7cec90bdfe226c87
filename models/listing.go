package models

import (
    "encoding/json"
    "strings"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is a staff entry nested inside a listing. Members have no
// identity of their own; they are addressed by position or by equality
// on (name, phone).
type Member struct {
    Name  string `bson:"name" json:"name"`
    Work  string `bson:"work" json:"work"`
    Phone string `bson:"phone" json:"phone"`
}

// Listing is one business/service directory entry. Which fields are
// populated is a pure function of Type; Doc() derives key presence from
// the rule table so two listings of the same category never differ in
// shape.
type Listing struct {
    ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
    Type          Category           `bson:"type" json:"type"`
    Name          string             `bson:"name" json:"name"`
    Address       string             `bson:"address" json:"address"`
    LocationLink  string             `bson:"locationLink,omitempty" json:"locationLink,omitempty"`
    PhotoURL      string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
    Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
    OwnerName     string             `bson:"ownerName,omitempty" json:"ownerName,omitempty"`
    Specification string             `bson:"specification,omitempty" json:"specification,omitempty"`
    Members       []Member           `bson:"members,omitempty" json:"members"`
}

// ListingFields is the raw form input for a new listing, keyed the way
// the submission form names things. BuildListing decides which of these
// survive into the stored document.
type ListingFields struct {
    Name          string   `json:"name"`
    Phone         string   `json:"phone"`
    Address       string   `json:"address"`
    LocationLink  string   `json:"locationLink"`
    OwnerName     string   `json:"ownerName"`
    Specification string   `json:"specification"`
    Members       []Member `json:"members"`
}

// BuildListing normalizes raw form input into a listing whose shape is
// fully determined by the category. The photo reference must already be
// resolved by the blob store; an empty string means no photo.
func BuildListing(category Category, fields ListingFields, photoURL string) (Listing, error) {
    rules, err := RulesFor(category)
    if err != nil {
        return Listing{}, err
    }
    if strings.TrimSpace(fields.Name) == "" {
        return Listing{}, missingField("name")
    }

    listing := Listing{
        Type:         category,
        Name:         fields.Name,
        Address:      fields.Address,
        LocationLink: fields.LocationLink,
        PhotoURL:     photoURL,
    }

    if rules.Contact {
        listing.Phone = fields.Phone
    }
    if rules.Specification {
        listing.Specification = fields.Specification
    }
    if rules.ResponsibleParty {
        listing.OwnerName = fields.OwnerName
    }
    if rules.Staff {
        if rules.Specification {
            // Individual professionals start with an empty staff list,
            // present so it can grow later. Temple never gets one.
            listing.Members = []Member{}
        } else {
            members := make([]Member, 0, len(fields.Members))
            for _, m := range fields.Members {
                if strings.TrimSpace(m.Name) == "" {
                    return Listing{}, missingField("member name")
                }
                members = append(members, m)
            }
            listing.Members = members
        }
    }

    return listing, nil
}

// Doc builds the persistence document. Key presence comes from the rule
// table, not from field values: a professional with no staff still gets
// members=[] while a Temple document has no members key at all.
func (l Listing) Doc() (bson.M, error) {
    rules, err := RulesFor(l.Type)
    if err != nil {
        return nil, err
    }

    doc := bson.M{
        "type":         l.Type,
        "name":         l.Name,
        "address":      l.Address,
        "locationLink": l.LocationLink,
        "photoURL":     l.PhotoURL,
    }
    if rules.Contact {
        doc["phone"] = l.Phone
    }
    if rules.ResponsibleParty {
        doc["ownerName"] = l.OwnerName
    }
    if rules.Specification {
        doc["specification"] = l.Specification
    }
    if rules.Staff {
        members := l.Members
        if members == nil {
            members = []Member{}
        }
        doc["members"] = members
    }
    return doc, nil
}

// MarshalJSON keeps API responses shaped exactly like the persisted
// documents: staff categories always show a members array (empty when
// there is no staff yet), Temple listings have no members key at all.
func (l Listing) MarshalJSON() ([]byte, error) {
    type listingAlias Listing
    aux := struct {
        listingAlias
        Members *[]Member `json:"members,omitempty"`
    }{listingAlias: listingAlias(l)}

    if rules, ok := categoryRules[l.Type]; ok && rules.Staff {
        members := l.Members
        if members == nil {
            members = []Member{}
        }
        aux.Members = &members
    }
    return json.Marshal(aux)
}
