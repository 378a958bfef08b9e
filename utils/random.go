package utils

import (
	"math/rand"
)

// Synthetic-data helpers used by the seeder. Not cryptographic.

func RandomString(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	out := make([]byte, length)
	for i := range out {
		out[i] = charset[rand.Intn(len(charset))]
	}
	return string(out)
}

func RandomDigits(length int) string {
	const digits = "0123456789"

	out := make([]byte, length)
	for i := range out {
		out[i] = digits[rand.Intn(len(digits))]
	}
	return string(out)
}
