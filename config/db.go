package config

import (
    "context"
    "fmt"
    "log"
    "time"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"
    "go.mongodb.org/mongo-driver/mongo/readconcern"
    "go.mongodb.org/mongo-driver/mongo/readpref"
    "go.mongodb.org/mongo-driver/mongo/writeconcern"
)

var (
    MongoDB     *mongo.Database
    MongoClient *mongo.Client
)

// Collection names. Three record collections plus announcements, all in
// the one document database.
const (
    VillagersCollection     = "villagers"
    BusinessesCollection    = "businesses"
    FeedbackCollection      = "feedback"
    AnnouncementsCollection = "announcements"
)

// ConnectWithRetry attempts to connect to MongoDB with retries
func ConnectWithRetry(maxRetries int) error {
    var err error
    for i := 0; i < maxRetries; i++ {
        err = connectMongo(MongoURI())
        if err == nil {
            return nil
        }
        log.Printf("Failed to connect to MongoDB (attempt %d/%d): %v", i+1, maxRetries, err)
        time.Sleep(5 * time.Second)
    }
    return fmt.Errorf("failed to connect after %d attempts: %v", maxRetries, err)
}

// connectMongo initializes the MongoDB connection
func connectMongo(uri string) error {
    clientOptions := options.Client().ApplyURI(uri).
        SetMaxPoolSize(100).
        SetMinPoolSize(20).
        SetMaxConnecting(50).
        SetConnectTimeout(10 * time.Second).
        SetServerSelectionTimeout(10 * time.Second).
        SetSocketTimeout(30 * time.Second).
        SetRetryWrites(true).
        SetRetryReads(true).
        SetMaxConnIdleTime(60 * time.Minute).
        SetWriteConcern(writeconcern.New(writeconcern.WMajority())).
        SetReadConcern(readconcern.Majority()).
        SetReadPreference(readpref.Primary())

    ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
    defer cancel()

    var err error
    MongoClient, err = mongo.Connect(ctx, clientOptions)
    if err != nil {
        return fmt.Errorf("error connecting to MongoDB: %v", err)
    }

    if err = MongoClient.Ping(ctx, nil); err != nil {
        return fmt.Errorf("error pinging MongoDB: %v", err)
    }

    MongoDB = MongoClient.Database(MongoDBName())
    log.Printf("Successfully connected to MongoDB database: %s", MongoDBName())

    if err := createIndexes(ctx); err != nil {
        return fmt.Errorf("error creating indexes: %v", err)
    }

    return nil
}

func createIndexes(ctx context.Context) error {
    // The folded-name index is what makes the prefix range query in the
    // villager search usable at any size.
    villagerIndexes := []mongo.IndexModel{
        {
            Keys:    bson.D{{Key: "lowercaseName", Value: 1}},
            Options: options.Index().SetName("lowercase_name_idx"),
        },
    }
    if _, err := MongoDB.Collection(VillagersCollection).Indexes().CreateMany(ctx, villagerIndexes); err != nil {
        return fmt.Errorf("error creating villager indexes: %v", err)
    }

    businessIndexes := []mongo.IndexModel{
        {
            Keys:    bson.D{{Key: "type", Value: 1}},
            Options: options.Index().SetName("type_idx"),
        },
    }
    if _, err := MongoDB.Collection(BusinessesCollection).Indexes().CreateMany(ctx, businessIndexes); err != nil {
        return fmt.Errorf("error creating business indexes: %v", err)
    }

    announcementIndexes := []mongo.IndexModel{
        {
            Keys:    bson.D{{Key: "createdAt", Value: -1}},
            Options: options.Index().SetName("created_at_idx"),
        },
    }
    if _, err := MongoDB.Collection(AnnouncementsCollection).Indexes().CreateMany(ctx, announcementIndexes); err != nil {
        return fmt.Errorf("error creating announcement indexes: %v", err)
    }

    feedbackIndexes := []mongo.IndexModel{
        {
            Keys:    bson.D{{Key: "timestamp", Value: -1}},
            Options: options.Index().SetName("timestamp_idx"),
        },
    }
    if _, err := MongoDB.Collection(FeedbackCollection).Indexes().CreateMany(ctx, feedbackIndexes); err != nil {
        return fmt.Errorf("error creating feedback indexes: %v", err)
    }

    log.Printf("Successfully created collection indexes")
    return nil
}

// CheckMongoHealth pings the deployment with a short deadline.
func CheckMongoHealth() error {
    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()

    if err := MongoClient.Ping(ctx, nil); err != nil {
        return fmt.Errorf("MongoDB health check failed: %v", err)
    }
    return nil
}

// Graceful shutdown
func CloseDB() {
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    if MongoClient != nil {
        if err := MongoClient.Disconnect(ctx); err != nil {
            log.Printf("Error closing MongoDB connection: %v", err)
        }
    }
}
