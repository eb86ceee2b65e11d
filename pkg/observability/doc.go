/*
Package observability turns prompt events into Prometheus metrics.

Metrics returns domain.PromptHooks that count attempts, rejections (by reason) and
acceptances per prompt kind. Register the collectors with any registry; gameinput
itself never serves them.
*/
package observability
