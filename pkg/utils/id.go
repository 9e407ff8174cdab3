package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID returns a short URL-safe identifier for deals and view sessions.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 10)
}
