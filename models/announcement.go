package models

import (
    "strings"
    "time"

    "go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement is an admin-authored notice, publicly listed in reverse
// chronological order.
type Announcement struct {
    ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
    Title     string             `bson:"title" json:"title"`
    Content   string             `bson:"content" json:"content"`
    CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// NewAnnouncement validates title and content and assigns the server
// timestamp.
func NewAnnouncement(title, content string, now time.Time) (Announcement, error) {
    if strings.TrimSpace(title) == "" {
        return Announcement{}, missingField("title")
    }
    if strings.TrimSpace(content) == "" {
        return Announcement{}, missingField("content")
    }
    return Announcement{
        Title:     title,
        Content:   content,
        CreatedAt: now.UTC(),
    }, nil
}
