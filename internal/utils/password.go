package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes an admin password for storage, at bcrypt's default
// cost. Seeding and the admin-creation endpoint both go through here so
// every stored credential uses the same scheme.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
