// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Configuration structs declare their environment bindings through `env`
// struct tags (see github.com/caarlos0/env). Load parses the current process
// environment into the struct; MustLoad panics on failure for configs that
// are required at startup. Twelve-factor defaults belong in `envDefault`
// tags, not in code.
package config
