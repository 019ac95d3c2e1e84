package main

import (
	"io"
	"os"
	"time"

	"go.uber.org/automaxprocs/maxprocs"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string

	// SetMaxProcs adjusts GOMAXPROCS to the container CPU quota. logf
	// receives the adjustment message.
	SetMaxProcs func(logf func(string, ...interface{}))
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
		SetMaxProcs: func(logf func(string, ...interface{})) {
			// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
			// in which case Go runtime defaults apply and the program continues safely.
			_, _ = maxprocs.Set(maxprocs.Logger(logf))
		},
	}
}
