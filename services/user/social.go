package user

import (
	"context"
	"fmt"

	"tundavala/utils"
)

// FirebaseTokenVerifier verifies Google sign-in ID tokens through the
// Firebase Auth client initialized at startup.
type FirebaseTokenVerifier struct{}

// Verify checks the ID token signature and extracts the account claims.
func (FirebaseTokenVerifier) Verify(idToken string) (email, name, photoURL string, err error) {
	token, err := utils.AuthClient.VerifyIDToken(context.Background(), idToken)
	if err != nil {
		return "", "", "", fmt.Errorf("invalid ID token: %w", err)
	}

	email, _ = token.Claims["email"].(string)
	name, _ = token.Claims["name"].(string)
	photoURL, _ = token.Claims["picture"].(string)
	if email == "" {
		return "", "", "", fmt.Errorf("ID token carries no email claim")
	}
	return email, name, photoURL, nil
}
