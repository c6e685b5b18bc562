// Package models lists the OpenAI models available to the configured
// API key, so users can pick a generation model for evaluation runs.
package models
