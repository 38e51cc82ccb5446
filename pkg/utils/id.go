package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idSize     = 12
)

// GenerateID gera o identificador de novos registros de faturamento e recarga
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idSize)
}
