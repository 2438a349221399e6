// Package domain defines core data models, errors and interfaces shared
// across killerpack. It contains plain types and contracts only.
package domain
