package handlers

import (
    "encoding/json"
    "errors"
    "net/http"
    "time"

    "github.com/akashsp-05/manchikoppa-portal/models"
)

const (
    queryTimeout  = 10 * time.Second
    maxUploadSize = 10 << 20 // 10 MB, matches the photo size the forms accept
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
    writeJSON(w, status, map[string]string{"error": message})
}

// writeModelError maps the listing model's error taxonomy onto status
// codes. Anything outside the taxonomy is a collaborator failure and
// surfaces as a 500; the model never fails with a generic error.
func writeModelError(w http.ResponseWriter, err error) {
    switch {
    case errors.Is(err, models.ErrInvalidCategory),
        errors.Is(err, models.ErrMissingRequiredField),
        errors.Is(err, models.ErrUnknownField),
        errors.Is(err, models.ErrIndexOutOfRange):
        writeError(w, http.StatusBadRequest, err.Error())
    case errors.Is(err, models.ErrStaffNotSupported):
        writeError(w, http.StatusConflict, err.Error())
    case errors.Is(err, models.ErrMemberNotFound):
        writeError(w, http.StatusNotFound, err.Error())
    default:
        writeError(w, http.StatusInternalServerError, err.Error())
    }
}

func isModelError(err error) bool {
    return errors.Is(err, models.ErrInvalidCategory) ||
        errors.Is(err, models.ErrMissingRequiredField) ||
        errors.Is(err, models.ErrUnknownField) ||
        errors.Is(err, models.ErrIndexOutOfRange) ||
        errors.Is(err, models.ErrStaffNotSupported) ||
        errors.Is(err, models.ErrMemberNotFound)
}
