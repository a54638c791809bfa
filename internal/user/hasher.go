package user

import "golang.org/x/crypto/bcrypt"

// PasswordHasher abstracts credential hashing so handlers can be tested
// without paying the bcrypt cost.
type PasswordHasher interface {
	Hash(password []byte) ([]byte, error)
	Compare(hash, password []byte) error
}

type BcryptHasher struct{}

func (BcryptHasher) Hash(pw []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(pw, bcrypt.DefaultCost)
}

func (BcryptHasher) Compare(hash, pw []byte) error {
	return bcrypt.CompareHashAndPassword(hash, pw)
}
