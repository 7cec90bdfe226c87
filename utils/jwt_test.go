package utils

import (
    "testing"

    "github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
    t.Setenv("JWT_SECRET", "test-secret")

    token, err := GenerateJWT("admin@gmail.com")
    require.NoError(t, err)
    require.NotEmpty(t, token)

    claims, err := ValidateJWT(token)
    require.NoError(t, err)
    require.Equal(t, "admin@gmail.com", claims.Email)
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
    t.Setenv("JWT_SECRET", "")

    _, err := GenerateJWT("admin@gmail.com")
    require.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
    t.Setenv("JWT_SECRET", "test-secret")

    _, err := ValidateJWT("not-a-token")
    require.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
    t.Setenv("JWT_SECRET", "first-secret")
    token, err := GenerateJWT("admin@gmail.com")
    require.NoError(t, err)

    t.Setenv("JWT_SECRET", "second-secret")
    _, err = ValidateJWT(token)
    require.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
    hash, err := HashPassword("hunter2")
    require.NoError(t, err)
    require.NoError(t, CheckPassword(hash, "hunter2"))
    require.Error(t, CheckPassword(hash, "hunter3"))
}

func TestComparePlain(t *testing.T) {
    require.True(t, ComparePlain("secret", "secret"))
    require.False(t, ComparePlain("secret", "wrong"))
    require.False(t, ComparePlain("", ""))
}
