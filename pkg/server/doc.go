// Package server exposes rolling text over HTTP.
//
// # Endpoints
//
//	GET  /healthz                       liveness and build version
//	GET  /v1/resolve?from=98&to=101     per-column character paths
//	POST /v1/frames                     offline frames as a JSON document
//	GET  /v1/graph?from=98&to=101       transition diagram (svg or dot)
//	GET  /v1/runs/{id}                  summary of an earlier frames run
//
// Query parameters strategy and direction override the server
// configuration for one request. The frames body accepts from, to, fps,
// duration, easing, strategy and direction; every response carries a fresh
// run id in both the document and the X-Run-Id header, and is recorded in
// the run store under that id.
//
// Invalid input is answered with 400 and unknown run ids with 404, each with
// a JSON body holding the error message and code. Every request is reported
// to the observability HTTP hooks.
package server
