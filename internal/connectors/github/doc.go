// Package github implements a connector for GitHub repository metadata.
//
// The connector resolves repository URLs to owner/repo pairs and fetches
// repository metadata, language statistics and README content for
// candidate profile enrichment. It comprises:
//
//   - Client: GitHub API communication with rate limiting
//   - Resolver: URL parsing, record assembly and batch fetching
//
// # Authentication
//
// A personal access token is optional. Authenticated requests get 5,000
// API calls per hour; anonymous requests are limited to 60 per hour and
// work for public repositories only.
//
// # Rate Limiting
//
// A dual-strategy approach:
//
//  1. Proactive throttling: a token bucket limits requests to roughly
//     1.2 requests per second.
//
//  2. Reactive handling: the X-RateLimit-Remaining and X-RateLimit-Reset
//     headers are tracked. When the quota nears exhaustion, calls wait
//     for the reset time before continuing.
//
// # Error Handling
//
// Repository lookups never surface errors to callers. A failed metadata
// fetch produces a record with ID 0 and an explanatory Errors entry;
// failed language or README fetches degrade to empty values on an
// otherwise resolved record.
package github
