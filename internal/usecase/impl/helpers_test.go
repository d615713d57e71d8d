package impl

import (
	"io"
	"log/slog"

	"conectone/internal/usecase"
)

// discardLogger silences service logging in tests.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func registerInput(email, name, password string) *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Email:    email,
		Name:     name,
		Password: password,
	}
}
