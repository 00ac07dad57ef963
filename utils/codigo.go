package utils

import (
	"crypto/rand"
	"math/big"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func RandomAlphanumeric(length int) (string, error) {
	code := make([]byte, length)
	max := big.NewInt(int64(len(alphanumeric)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = alphanumeric[n.Int64()]
	}
	return string(code), nil
}

// RDI- followed by 10 alphanumerics
func NewCodigoVerificacion() (string, error) {
	code, err := RandomAlphanumeric(10)
	if err != nil {
		return "", err
	}
	return "RDI-" + code, nil
}
