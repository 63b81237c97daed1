// Package hash provides the one-way password hashing capability used by
// registration and login. Callers never see the algorithm, only the
// hash/verify contract.
package hash

import "golang.org/x/crypto/bcrypt"

// Password hashes a plaintext password for storage.
func Password(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plain matches the stored hash.
func Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
