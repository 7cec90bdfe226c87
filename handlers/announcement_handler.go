package handlers

import (
    "context"
    "encoding/json"
    "log"
    "net/http"
    "time"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/bson/primitive"
    "go.mongodb.org/mongo-driver/mongo/options"

    "github.com/akashsp-05/manchikoppa-portal/config"
    "github.com/akashsp-05/manchikoppa-portal/models"
)

type AnnouncementRequest struct {
    Title   string `json:"title"`
    Content string `json:"content"`
}

const announcementCacheKey = "announcements:all"

// GetAnnouncements lists announcements newest first. Publicly readable
// and briefly cached.
func GetAnnouncements(w http.ResponseWriter, r *http.Request) {
    if cached, found := config.AnnouncementCache.Get(announcementCacheKey); found {
        writeJSON(w, http.StatusOK, cached)
        return
    }

    ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
    defer cancel()

    findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
    cursor, err := config.MongoDB.Collection(config.AnnouncementsCollection).Find(ctx, bson.M{}, findOptions)
    if err != nil {
        log.Printf("Error fetching announcements: %v", err)
        writeError(w, http.StatusInternalServerError, "failed to fetch announcements")
        return
    }
    defer cursor.Close(ctx)

    announcements := make([]models.Announcement, 0)
    if err := cursor.All(ctx, &announcements); err != nil {
        log.Printf("Error decoding announcements: %v", err)
        writeError(w, http.StatusInternalServerError, "failed to decode announcements")
        return
    }

    response := map[string]interface{}{"announcements": announcements}
    config.AnnouncementCache.SetDefault(announcementCacheKey, response)
    writeJSON(w, http.StatusOK, response)
}

// CreateAnnouncement publishes a new announcement with a
// server-assigned timestamp. Admin only.
func CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
    var req AnnouncementRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        writeError(w, http.StatusBadRequest, "invalid request body")
        return
    }

    announcement, err := models.NewAnnouncement(req.Title, req.Content, time.Now())
    if err != nil {
        writeModelError(w, err)
        return
    }

    ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
    defer cancel()

    result, err := config.MongoDB.Collection(config.AnnouncementsCollection).InsertOne(ctx, announcement)
    if err != nil {
        log.Printf("Error inserting announcement: %v", err)
        writeError(w, http.StatusInternalServerError, "failed to publish announcement")
        return
    }
    if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
        announcement.ID = oid
    }

    config.AnnouncementCache.Delete(announcementCacheKey)
    writeJSON(w, http.StatusCreated, announcement)
}
