package models

import (
    "strings"
    "time"

    "go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback is a complaint submitted through the public form. Only an
// authenticated administrator can read or delete it.
type Feedback struct {
    ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
    Name      string             `bson:"name" json:"name"`
    Complaint string             `bson:"complaint" json:"complaint"`
    Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// NewFeedback validates a submission and assigns the server timestamp.
func NewFeedback(name, complaint string, now time.Time) (Feedback, error) {
    if strings.TrimSpace(name) == "" {
        return Feedback{}, missingField("name")
    }
    if strings.TrimSpace(complaint) == "" {
        return Feedback{}, missingField("complaint")
    }
    return Feedback{
        Name:      name,
        Complaint: complaint,
        Timestamp: now.UTC(),
    }, nil
}
