// Package config loads command-line defaults from CHROMA_* environment variables.
package config
