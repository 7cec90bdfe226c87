package config

import (
    "fmt"
    "io"
    "log"

    "go.mongodb.org/mongo-driver/mongo/gridfs"
    "go.mongodb.org/mongo-driver/mongo/options"
)

// PhotoBucket is the blob store for uploaded photos. It lives in the
// same Mongo deployment as the record collections, so one connection
// covers both collaborators. Keys are caller-generated unique strings
// used as the file id; there is no overwrite or versioning.
var PhotoBucket *gridfs.Bucket

const photoBucketName = "photos"

// InitBlobStore must run after the Mongo connection is up.
func InitBlobStore() error {
    bucket, err := gridfs.NewBucket(MongoDB, options.GridFSBucket().SetName(photoBucketName))
    if err != nil {
        return fmt.Errorf("error creating photo bucket: %v", err)
    }
    PhotoBucket = bucket
    log.Printf("Photo blob store ready (bucket %q)", photoBucketName)
    return nil
}

// PutPhoto stores the photo bytes under the given key. The caller only
// persists a record referencing the photo after this returns without
// error; a failed upload aborts the whole creation.
func PutPhoto(key, filename string, source io.Reader) error {
    if err := PhotoBucket.UploadFromStreamWithID(key, filename, source); err != nil {
        return fmt.Errorf("error uploading photo %q: %v", key, err)
    }
    return nil
}

// OpenPhoto streams the photo stored under key. Callers must close the
// returned stream.
func OpenPhoto(key string) (*gridfs.DownloadStream, error) {
    return PhotoBucket.OpenDownloadStream(key)
}

// PhotoURL resolves a stored key to the URL clients fetch it from.
func PhotoURL(key string) string {
    return "/api/v1/photos/" + key
}
