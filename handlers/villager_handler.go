package handlers

import (
    "context"
    "encoding/json"
    "log"
    "net/http"
    "strings"

    "github.com/gorilla/mux"
    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/bson/primitive"

    "github.com/akashsp-05/manchikoppa-portal/config"
    "github.com/akashsp-05/manchikoppa-portal/models"
)

// CreateVillager persists a new villager record. Accepts either
// multipart/form-data with an optional photo or a plain JSON body. The
// photo must finish uploading before the record is inserted.
func CreateVillager(w http.ResponseWriter, r *http.Request) {
    var fields models.VillagerFields
    photoURL := ""

    if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
        if err := r.ParseMultipartForm(maxUploadSize); err != nil {
            writeError(w, http.StatusBadRequest, "invalid multipart form")
            return
        }
        fields = models.VillagerFields{
            Name:         r.FormValue("name"),
            Phone:        r.FormValue("phone"),
            Work:         r.FormValue("work"),
            Address:      r.FormValue("address"),
            Age:          r.FormValue("age"),
            DOB:          r.FormValue("dob"),
            LocationLink: r.FormValue("locationLink"),
        }

        url, err := uploadFormPhoto(r, "villager_photos")
        if err != nil {
            log.Printf("Error uploading villager photo: %v", err)
            writeError(w, http.StatusBadGateway, "photo upload failed")
            return
        }
        photoURL = url
    } else {
        if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
            writeError(w, http.StatusBadRequest, "invalid request body")
            return
        }
    }

    villager, err := models.NewVillager(fields, photoURL)
    if err != nil {
        writeModelError(w, err)
        return
    }

    ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
    defer cancel()

    result, err := config.MongoDB.Collection(config.VillagersCollection).InsertOne(ctx, villager)
    if err != nil {
        log.Printf("Error inserting villager: %v", err)
        writeError(w, http.StatusInternalServerError, "failed to save villager")
        return
    }
    if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
        villager.ID = oid
    }

    writeJSON(w, http.StatusCreated, villager)
}

// SearchVillagers runs a case-insensitive prefix search over the folded
// name. Only prefix matches are guaranteed; this is not fuzzy search.
func SearchVillagers(w http.ResponseWriter, r *http.Request) {
    term := strings.TrimSpace(r.URL.Query().Get("q"))
    if term == "" {
        writeJSON(w, http.StatusOK, map[string]interface{}{"villagers": []models.Villager{}})
        return
    }

    ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
    defer cancel()

    cursor, err := config.MongoDB.Collection(config.VillagersCollection).Find(ctx, models.NamePrefixFilter(term))
    if err != nil {
        log.Printf("Error searching villagers for %q: %v", term, err)
        writeError(w, http.StatusInternalServerError, "failed to search villagers")
        return
    }
    defer cursor.Close(ctx)

    villagers := make([]models.Villager, 0)
    if err := cursor.All(ctx, &villagers); err != nil {
        log.Printf("Error decoding villagers for %q: %v", term, err)
        writeError(w, http.StatusInternalServerError, "failed to decode villagers")
        return
    }

    writeJSON(w, http.StatusOK, map[string]interface{}{"villagers": villagers})
}

// DeleteVillager removes one villager record.
func DeleteVillager(w http.ResponseWriter, r *http.Request) {
    id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
    if err != nil {
        writeError(w, http.StatusBadRequest, "invalid villager id")
        return
    }

    ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
    defer cancel()

    result, err := config.MongoDB.Collection(config.VillagersCollection).DeleteOne(ctx, bson.M{"_id": id})
    if err != nil {
        log.Printf("Error deleting villager %s: %v", id.Hex(), err)
        writeError(w, http.StatusInternalServerError, "failed to delete villager")
        return
    }
    if result.DeletedCount == 0 {
        writeError(w, http.StatusNotFound, "villager not found")
        return
    }

    writeJSON(w, http.StatusOK, map[string]string{"message": "villager deleted"})
}
