// Package preview serves the component gallery over HTTP.
//
// Routes:
//
//	GET  /                   gallery with the live playground
//	GET  /components/{name}  one component, props from the query string
//	POST /render/{name}      HTML fragment for a JSON or YAML props body
//	POST /style/{name}       computed style and mapping report as JSON
//	GET  /ws                 live render channel
//	GET  /healthz            liveness
//	GET  /metrics            Prometheus metrics, when enabled
//
// Every render runs inside a "styled.render" span and is counted in the
// styled_* metrics. A Watcher reloads the registry when styled.yaml
// changes and tells connected pages to refresh.
package preview
