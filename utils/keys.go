package utils

import (
    "path"
    "strings"

    "github.com/google/uuid"
)

// PhotoKey generates a unique blob key for an uploaded photo:
// <prefix>/<uuid>-<filename>. The uuid makes collisions a non-issue
// while keeping the original filename readable in the store.
func PhotoKey(prefix, filename string) string {
    name := sanitizeFilename(filename)
    return prefix + "/" + uuid.New().String() + "-" + name
}

// sanitizeFilename strips directory components and characters that
// would break the key-in-URL scheme.
func sanitizeFilename(filename string) string {
    name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
    name = strings.Map(func(r rune) rune {
        switch {
        case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
            return r
        case r == '.' || r == '-' || r == '_':
            return r
        default:
            return '_'
        }
    }, name)
    if name == "" || name == "." {
        name = "photo"
    }
    return name
}
