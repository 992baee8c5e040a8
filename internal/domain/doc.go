// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (documents, certificates, wire shapes) and contracts
// (interfaces) only.
package domain
