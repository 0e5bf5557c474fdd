// Package docs serves the component documentation site.
//
// The server lists every story, renders each one with editable controls
// and exposes a small JSON API:
//
//	GET  /                         story index with previews
//	GET  /stories/{id}             story page; query values override args
//	GET  /iframe/{id}              the component alone
//	GET  /api/components           component catalog
//	GET  /api/stories              stories with their controls
//	GET  /api/stories/{id}         one story and its rendering
//	POST /api/resolve/{component}  resolve and render a JSON args object
//	GET  /ws                       live controls (when enabled)
//	GET  /metrics                  Prometheus metrics
//	GET  /healthz                  liveness
//
// Export writes the same pages to a directory for static hosting and
// Publish uploads such a directory to S3.
package docs
