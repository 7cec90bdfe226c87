package utils

import (
    "errors"
    "os"
    "strconv"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

type JWTClaims struct {
    Email string `json:"email"`
    jwt.RegisteredClaims
}

func GenerateJWT(email string) (string, error) {
    jwtSecret := os.Getenv("JWT_SECRET")
    if jwtSecret == "" {
        return "", errors.New("JWT_SECRET not set")
    }

    expiryHours := os.Getenv("JWT_EXPIRY_HOURS")
    if expiryHours == "" {
        expiryHours = "24"
    }

    hours, err := strconv.Atoi(expiryHours)
    if err != nil {
        hours = 24
    }

    claims := JWTClaims{
        Email: email,
        RegisteredClaims: jwt.RegisteredClaims{
            ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(hours) * time.Hour)),
            IssuedAt:  jwt.NewNumericDate(time.Now()),
        },
    }

    token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    return token.SignedString([]byte(jwtSecret))
}

func ValidateJWT(tokenString string) (*JWTClaims, error) {
    jwtSecret := os.Getenv("JWT_SECRET")
    if jwtSecret == "" {
        return nil, errors.New("JWT_SECRET not set")
    }

    token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
        return []byte(jwtSecret), nil
    })

    if err != nil {
        return nil, err
    }

    if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
        return claims, nil
    }

    return nil, errors.New("invalid token")
}
