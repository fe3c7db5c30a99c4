// Package domain contains the core types of the ingestion pipeline.
// These are plain data types with no dependencies on adapters or
// external services; every ingestion operation produces one of them.
package domain
