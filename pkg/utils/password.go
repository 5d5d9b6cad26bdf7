package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword cost 超出范围时退回 bcrypt 默认
func HashPassword(pw string, cost int) string {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), cost)
	return string(b)
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
