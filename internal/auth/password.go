package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest at the default work
// factor (cost 10). Two calls over the same input yield different
// digests.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plain matches digest. A malformed
// digest is simply a non-match, never an error.
func VerifyPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
