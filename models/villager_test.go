package models

import (
    "testing"
    "time"

    "github.com/stretchr/testify/require"
    "go.mongodb.org/mongo-driver/bson"
)

func TestNewVillager(t *testing.T) {
    villager, err := NewVillager(VillagerFields{
        Name:    "Ravi Kumar",
        Phone:   "9000000000",
        Work:    "Farmer",
        Address: "Main St",
        Age:     "42",
        DOB:     "1983-04-01",
    }, "/api/v1/photos/villager_photos/abc-me.jpg")
    require.NoError(t, err)

    require.Equal(t, "Ravi Kumar", villager.Name)
    require.Equal(t, "ravi kumar", villager.LowercaseName)
    require.Equal(t, "/api/v1/photos/villager_photos/abc-me.jpg", villager.PhotoURL)
}

func TestNewVillagerRequiresName(t *testing.T) {
    _, err := NewVillager(VillagerFields{Name: "  "}, "")
    require.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestFoldName(t *testing.T) {
    require.Equal(t, "ravi kumar", FoldName("Ravi Kumar"))
    require.Equal(t, "ravi kumar", FoldName("RAVI KUMAR"))
    require.Equal(t, "", FoldName(""))
}

func TestNamePrefixFilter(t *testing.T) {
    filter := NamePrefixFilter("Rav")
    bounds, ok := filter["lowercaseName"].(bson.M)
    require.True(t, ok)
    require.Equal(t, "rav", bounds["$gte"])
    require.Equal(t, "rav", bounds["$lte"])
}

func TestNewFeedback(t *testing.T) {
    now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))

    feedback, err := NewFeedback("Ravi", "Street light broken", now)
    require.NoError(t, err)
    require.Equal(t, now.UTC(), feedback.Timestamp)

    _, err = NewFeedback("", "text", now)
    require.ErrorIs(t, err, ErrMissingRequiredField)
    _, err = NewFeedback("Ravi", "  ", now)
    require.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestNewAnnouncement(t *testing.T) {
    now := time.Now()

    announcement, err := NewAnnouncement("Water supply", "Interrupted on Sunday", now)
    require.NoError(t, err)
    require.Equal(t, now.UTC(), announcement.CreatedAt)

    _, err = NewAnnouncement("", "content", now)
    require.ErrorIs(t, err, ErrMissingRequiredField)
    _, err = NewAnnouncement("title", "", now)
    require.ErrorIs(t, err, ErrMissingRequiredField)
}
