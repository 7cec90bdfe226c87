package handlers

import (
    "context"
    "encoding/json"
    "log"
    "net/http"
    "time"

    "github.com/gorilla/mux"
    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/bson/primitive"
    "go.mongodb.org/mongo-driver/mongo/options"

    "github.com/akashsp-05/manchikoppa-portal/config"
    "github.com/akashsp-05/manchikoppa-portal/models"
)

type FeedbackRequest struct {
    Name      string `json:"name"`
    Complaint string `json:"complaint"`
}

// SubmitFeedback records a public complaint with a server-assigned
// timestamp.
func SubmitFeedback(w http.ResponseWriter, r *http.Request) {
    var req FeedbackRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        writeError(w, http.StatusBadRequest, "invalid request body")
        return
    }

    feedback, err := models.NewFeedback(req.Name, req.Complaint, time.Now())
    if err != nil {
        writeModelError(w, err)
        return
    }

    ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
    defer cancel()

    result, err := config.MongoDB.Collection(config.FeedbackCollection).InsertOne(ctx, feedback)
    if err != nil {
        log.Printf("Error inserting feedback: %v", err)
        writeError(w, http.StatusInternalServerError, "failed to submit feedback")
        return
    }
    if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
        feedback.ID = oid
    }

    writeJSON(w, http.StatusCreated, feedback)
}

// GetFeedback lists complaints newest first. Admin only.
func GetFeedback(w http.ResponseWriter, r *http.Request) {
    ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
    defer cancel()

    findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
    cursor, err := config.MongoDB.Collection(config.FeedbackCollection).Find(ctx, bson.M{}, findOptions)
    if err != nil {
        log.Printf("Error fetching feedback: %v", err)
        writeError(w, http.StatusInternalServerError, "failed to fetch feedback")
        return
    }
    defer cursor.Close(ctx)

    feedback := make([]models.Feedback, 0)
    if err := cursor.All(ctx, &feedback); err != nil {
        log.Printf("Error decoding feedback: %v", err)
        writeError(w, http.StatusInternalServerError, "failed to decode feedback")
        return
    }

    writeJSON(w, http.StatusOK, map[string]interface{}{"feedback": feedback})
}

// DeleteFeedback removes one complaint. Admin only.
func DeleteFeedback(w http.ResponseWriter, r *http.Request) {
    id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
    if err != nil {
        writeError(w, http.StatusBadRequest, "invalid feedback id")
        return
    }

    ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
    defer cancel()

    result, err := config.MongoDB.Collection(config.FeedbackCollection).DeleteOne(ctx, bson.M{"_id": id})
    if err != nil {
        log.Printf("Error deleting feedback %s: %v", id.Hex(), err)
        writeError(w, http.StatusInternalServerError, "failed to delete feedback")
        return
    }
    if result.DeletedCount == 0 {
        writeError(w, http.StatusNotFound, "feedback not found")
        return
    }

    writeJSON(w, http.StatusOK, map[string]string{"message": "feedback deleted"})
}
