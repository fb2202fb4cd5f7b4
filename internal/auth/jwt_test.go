package auth_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/btw-edu/pembahasan-lambda/internal/auth"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "kunci-rahasia-untuk-pengujian-yang-panjang"
const testUserID = "user-123"
const testRole = "admin"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		os.Unsetenv("JWT_SECRET")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init() seharusnya panic ketika JWT_SECRET kosong, tetapi tidak.")
			}
		}()

		auth.Init()
	})

	t.Run("ValidSecret", func(t *testing.T) {
		os.Setenv("JWT_SECRET", testSecret)
		auth.Init()
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, time.Minute*5)
		if err != nil {
			t.Fatalf("GenerateJWT gagal: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT gagal: %v", err)
		}

		if claims.UserID != testUserID {
			t.Errorf("UserID salah. Harapan: %s, Hasil: %s", testUserID, claims.UserID)
		}
		if claims.Role != testRole {
			t.Errorf("Role salah. Harapan: %s, Hasil: %s", testRole, claims.Role)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, -time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT gagal: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if err == nil {
			t.Fatal("ValidateJWT seharusnya gagal dengan token kedaluwarsa, tetapi lolos.")
		}
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("Error salah untuk token kedaluwarsa. Harapan: %v, Hasil: %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("MalformedToken", func(t *testing.T) {
		if _, err := auth.ValidateJWT("bukan.token.jwt"); err == nil {
			t.Fatal("ValidateJWT seharusnya gagal dengan token rusak, tetapi lolos.")
		}
	})
}
