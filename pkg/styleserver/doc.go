// Package styleserver serves compiled component stylesheets over HTTP and
// pushes live reload messages when style files change.
//
// Routes:
//
//	GET /                   preview page with every stylesheet inlined
//	GET /styles.css         all stylesheets in injection order
//	GET /styles/{name}.css  one component's stylesheet
//	GET /_reload            live reload websocket
//	GET /metrics            Prometheus metrics, when a gatherer is set
//	GET /healthz            liveness probe
//
// Style files are named <Component>.style.json, .style.yaml or .style.yml.
package styleserver
