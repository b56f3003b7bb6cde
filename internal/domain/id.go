package domain

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateID создает простой уникальный ID (замена UUID для снижения зависимостей).
// Используется как отложенное значение по умолчанию для свойства "id".
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	rand.Read(b)
	return hex.EncodeToString(b)
}
