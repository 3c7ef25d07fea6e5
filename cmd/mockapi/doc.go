// Package main runs the in-memory animation service used by mixget during
// development. It serves a fixed motion catalog and simulates export jobs.
//
// HTTP API (under /api/v1, X-Api-Key required)
//
//	GET  /characters/primary
//	    Return the configured primary character.
//
//	GET  /products?query=Q&page=N&limit=L&type=Motion
//	    Case-insensitive substring search over the catalog, paginated.
//
//	GET  /products/{id}?similar=0&character_id=C
//	    Return a product detail record with its gms_hash.
//
//	POST /animations/export
//	    Start a job for the payload's product. Replies 202.
//
//	GET  /characters/{id}/monitor
//	    Report the current job: processing for --polls polls, then completed
//	    with a job_result link, or failed for products named with --fail.
//
//	GET  /downloads/{key}
//	    Serve the bytes of a completed job. No key required.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Only the most recent job is tracked, as the real monitor endpoint does.
//   - Each request is logged with method, path, status and duration.
//   - The default listen address is :8090.
package main
