// Package driving defines the inbound ports of the ingestion core:
// the operations entrypoints like the CLI consume.
package driving
