// Package fakeapi is an in-memory stand-in for the animation service's REST
// API, used by cmd/mockapi for local runs and by end-to-end tests.
//
// Routes (under /api/v1 unless noted)
//
//	GET  /characters/primary        primary character id and name
//	GET  /products                  paginated search (limit, page, type, query)
//	GET  /products/{id}             product detail with gms_hash
//	POST /animations/export         start a job for the character
//	GET  /characters/{id}/monitor   job status; job_result once completed
//	GET  /downloads/{key}           signed result download (no /api/v1 prefix)
//
// Behaviour
//
//   - API routes require the configured X-Api-Key; downloads do not.
//   - A job reports "processing" for PollsUntilDone polls, then "completed",
//     or "failed" when its product is listed in FailProducts.
//   - All state is held in memory and lost on process exit.
package fakeapi
