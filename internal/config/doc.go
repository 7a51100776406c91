// Package config reads runtime defaults from environment variables: default
// calendar IDs and task list for the Calendar/Tasks tools, and the result and
// snippet budgets for Drive content search.
//
// Values are read on each call rather than cached so that tests can set them
// per-case; the search orchestrator itself receives an explicit configuration
// struct and never consults the environment directly.
package config
