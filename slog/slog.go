// Package slog provides logging decorators for newsroom services.
package slog
