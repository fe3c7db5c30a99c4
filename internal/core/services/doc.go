// Package services implements the driving port interfaces.
// Services contain the ingestion business logic and orchestrate
// calls to driven ports (adapters).
package services
