package handlers

import (
    "context"
    "encoding/json"
    "errors"
    "log"
    "net/http"
    "strings"

    "github.com/gorilla/mux"
    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/bson/primitive"
    "go.mongodb.org/mongo-driver/mongo"

    "github.com/akashsp-05/manchikoppa-portal/config"
    "github.com/akashsp-05/manchikoppa-portal/models"
    "github.com/akashsp-05/manchikoppa-portal/utils"
)

type CreateBusinessRequest struct {
    Type   models.Category      `json:"type"`
    Fields models.ListingFields `json:"fields"`
}

type StaffUpdateRequest struct {
    Operations []models.StaffOp `json:"operations"`
}

type CategoryInfo struct {
    Category models.Category `json:"category"`
    Rules    models.CategoryRules `json:"rules"`
}

// GetBusinessCategories returns the fixed category enumeration with the
// attribute groups each one carries, so clients render the right form
// without duplicating the rule table.
func GetBusinessCategories(w http.ResponseWriter, r *http.Request) {
    categories := models.Categories()
    out := make([]CategoryInfo, 0, len(categories))
    for _, c := range categories {
        rules, err := models.RulesFor(c)
        if err != nil {
            writeModelError(w, err)
            return
        }
        out = append(out, CategoryInfo{Category: c, Rules: rules})
    }
    writeJSON(w, http.StatusOK, map[string]interface{}{"categories": out})
}

// GetBusinesses lists every listing of one category.
func GetBusinesses(w http.ResponseWriter, r *http.Request) {
    category := models.Category(r.URL.Query().Get("type"))
    if !models.ValidCategory(category) {
        writeError(w, http.StatusBadRequest, "unknown business type")
        return
    }

    cacheKey := config.GetCacheKey("businesses", category)
    if cached, found := config.ListingCache.Get(cacheKey); found {
        writeJSON(w, http.StatusOK, cached)
        return
    }

    ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
    defer cancel()

    cursor, err := config.MongoDB.Collection(config.BusinessesCollection).Find(ctx, bson.M{"type": category})
    if err != nil {
        log.Printf("Error fetching businesses for %q: %v", category, err)
        writeError(w, http.StatusInternalServerError, "failed to fetch businesses")
        return
    }
    defer cursor.Close(ctx)

    listings := make([]models.Listing, 0)
    if err := cursor.All(ctx, &listings); err != nil {
        log.Printf("Error decoding businesses for %q: %v", category, err)
        writeError(w, http.StatusInternalServerError, "failed to decode businesses")
        return
    }

    response := map[string]interface{}{
        "type":       category,
        "businesses": listings,
    }
    config.ListingCache.SetDefault(cacheKey, response)
    writeJSON(w, http.StatusOK, response)
}

// CreateBusiness builds a listing from form input and persists it. The
// request is either multipart/form-data with an optional photo file and
// a JSON members field, or a plain JSON body without a photo. A photo
// upload that fails aborts the creation before anything is persisted.
func CreateBusiness(w http.ResponseWriter, r *http.Request) {
    var category models.Category
    var fields models.ListingFields
    photoURL := ""

    if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
        if err := r.ParseMultipartForm(maxUploadSize); err != nil {
            writeError(w, http.StatusBadRequest, "invalid multipart form")
            return
        }
        category = models.Category(r.FormValue("type"))
        fields = models.ListingFields{
            Name:          r.FormValue("name"),
            Phone:         r.FormValue("phone"),
            Address:       r.FormValue("address"),
            LocationLink:  r.FormValue("locationLink"),
            OwnerName:     r.FormValue("ownerName"),
            Specification: r.FormValue("specification"),
        }
        if membersJSON := r.FormValue("members"); membersJSON != "" {
            if err := json.Unmarshal([]byte(membersJSON), &fields.Members); err != nil {
                writeError(w, http.StatusBadRequest, "invalid members field")
                return
            }
        }

        url, err := uploadFormPhoto(r, "business_photos")
        if err != nil {
            log.Printf("Error uploading business photo: %v", err)
            writeError(w, http.StatusBadGateway, "photo upload failed")
            return
        }
        photoURL = url
    } else {
        var req CreateBusinessRequest
        if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
            writeError(w, http.StatusBadRequest, "invalid request body")
            return
        }
        category = req.Type
        fields = req.Fields
    }

    listing, err := models.BuildListing(category, fields, photoURL)
    if err != nil {
        writeModelError(w, err)
        return
    }
    doc, err := listing.Doc()
    if err != nil {
        writeModelError(w, err)
        return
    }

    ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
    defer cancel()

    result, err := config.MongoDB.Collection(config.BusinessesCollection).InsertOne(ctx, doc)
    if err != nil {
        log.Printf("Error inserting business: %v", err)
        writeError(w, http.StatusInternalServerError, "failed to save business")
        return
    }
    if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
        listing.ID = oid
    }

    config.ListingCache.Delete(config.GetCacheKey("businesses", category))
    writeJSON(w, http.StatusCreated, listing)
}

// UpdateBusinessStaff applies a batch of staff edits in memory and
// persists the outcome as one whole-array replace. The store has no
// per-element patch, so this is deliberately a single write; concurrent
// editors are last-writer-wins.
func UpdateBusinessStaff(w http.ResponseWriter, r *http.Request) {
    id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
    if err != nil {
        writeError(w, http.StatusBadRequest, "invalid business id")
        return
    }

    var req StaffUpdateRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        writeError(w, http.StatusBadRequest, "invalid request body")
        return
    }
    if len(req.Operations) == 0 {
        writeError(w, http.StatusBadRequest, "no staff operations provided")
        return
    }

    ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
    defer cancel()

    collection := config.MongoDB.Collection(config.BusinessesCollection)

    var existing models.Listing
    if err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&existing); err != nil {
        if errors.Is(err, mongo.ErrNoDocuments) {
            writeError(w, http.StatusNotFound, "business not found")
            return
        }
        log.Printf("Error loading business %s: %v", id.Hex(), err)
        writeError(w, http.StatusInternalServerError, "failed to load business")
        return
    }

    merged, err := models.ApplyStaffOps(existing, req.Operations)
    if err != nil {
        if isModelError(err) {
            writeModelError(w, err)
        } else {
            writeError(w, http.StatusBadRequest, err.Error())
        }
        return
    }

    members := merged.Members
    if members == nil {
        members = []models.Member{}
    }
    _, err = collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"members": members}})
    if err != nil {
        log.Printf("Error updating staff for %s: %v", id.Hex(), err)
        writeError(w, http.StatusInternalServerError, "failed to update staff")
        return
    }

    config.ListingCache.Delete(config.GetCacheKey("businesses", existing.Type))
    writeJSON(w, http.StatusOK, merged)
}

// DeleteBusiness removes one listing. Deletion is irreversible; the
// confirmation step lives in the client.
func DeleteBusiness(w http.ResponseWriter, r *http.Request) {
    id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
    if err != nil {
        writeError(w, http.StatusBadRequest, "invalid business id")
        return
    }

    ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
    defer cancel()

    collection := config.MongoDB.Collection(config.BusinessesCollection)

    // Fetch first so the right cache entry can be dropped.
    var existing models.Listing
    if err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&existing); err != nil {
        if errors.Is(err, mongo.ErrNoDocuments) {
            writeError(w, http.StatusNotFound, "business not found")
            return
        }
        log.Printf("Error loading business %s: %v", id.Hex(), err)
        writeError(w, http.StatusInternalServerError, "failed to load business")
        return
    }

    if _, err := collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
        log.Printf("Error deleting business %s: %v", id.Hex(), err)
        writeError(w, http.StatusInternalServerError, "failed to delete business")
        return
    }

    config.ListingCache.Delete(config.GetCacheKey("businesses", existing.Type))
    writeJSON(w, http.StatusOK, map[string]string{"message": "business deleted"})
}

// uploadFormPhoto stores an optional multipart photo and returns its
// resolved URL, or "" when the form has no photo.
func uploadFormPhoto(r *http.Request, prefix string) (string, error) {
    file, header, err := r.FormFile("photo")
    if err != nil {
        if errors.Is(err, http.ErrMissingFile) {
            return "", nil
        }
        return "", err
    }
    defer file.Close()

    key := utils.PhotoKey(prefix, header.Filename)
    if err := config.PutPhoto(key, header.Filename, file); err != nil {
        return "", err
    }
    return config.PhotoURL(key), nil
}
