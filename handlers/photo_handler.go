package handlers

import (
    "errors"
    "io"
    "log"
    "mime"
    "net/http"
    "path"

    "github.com/gorilla/mux"
    "go.mongodb.org/mongo-driver/mongo/gridfs"

    "github.com/akashsp-05/manchikoppa-portal/config"
)

// GetPhoto streams a stored photo by its blob key. Keys contain a
// prefix segment, so the route pattern must allow slashes.
func GetPhoto(w http.ResponseWriter, r *http.Request) {
    key := mux.Vars(r)["key"]
    if key == "" {
        writeError(w, http.StatusBadRequest, "missing photo key")
        return
    }

    stream, err := config.OpenPhoto(key)
    if err != nil {
        if errors.Is(err, gridfs.ErrFileNotFound) {
            writeError(w, http.StatusNotFound, "photo not found")
            return
        }
        log.Printf("Error opening photo %q: %v", key, err)
        writeError(w, http.StatusInternalServerError, "failed to open photo")
        return
    }
    defer stream.Close()

    contentType := "application/octet-stream"
    if file := stream.GetFile(); file != nil {
        if byExt := mime.TypeByExtension(path.Ext(file.Name)); byExt != "" {
            contentType = byExt
        }
    }
    w.Header().Set("Content-Type", contentType)
    w.Header().Set("Cache-Control", "public, max-age=86400")

    if _, err := io.Copy(w, stream); err != nil {
        // Headers are gone at this point; just log the broken transfer.
        log.Printf("Error streaming photo %q: %v", key, err)
    }
}
