package middleware

import (
    "net/http"

    "github.com/gorilla/handlers"
)

// CompressHandler gzips responses when the client accepts it. Photo
// streams pass through it too; gridfs chunks compress poorly but the
// wrapper negotiates per request, so that costs little.
func CompressHandler(next http.Handler) http.Handler {
    return handlers.CompressHandler(next)
}
