package utils

import (
    "crypto/subtle"

    "golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
    hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
    if err != nil {
        return "", err
    }
    return string(hash), nil
}

func CheckPassword(hash, password string) error {
    return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// ComparePlain is the dev fallback when only a plain-text admin
// password is configured.
func ComparePlain(want, got string) bool {
    if want == "" {
        return false
    }
    return subtle.ConstantTimeCompare([]byte(want), []byte(got)) == 1
}
