// Package app holds runtime configuration and dependency wiring for the
// CLI. All collaborators are constructed explicitly; nothing is
// process-global.
package app
