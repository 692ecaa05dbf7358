package security

import "golang.org/x/crypto/bcrypt"

// Стоимость bcrypt. Дефолтных 10 раундов достаточно:
// логин и так ограничен лимитером на гейтвее.
const hashCost = bcrypt.DefaultCost

type PasswordHasher struct{}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	return string(bytes), err
}

// Compare возвращает nil только при совпадении пароля с хешем.
func (h *PasswordHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
