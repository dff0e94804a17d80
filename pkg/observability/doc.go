/*
Package observability provides the Prometheus metrics of the jsquery render engine.

The engine reports every render with its outcome (ok, cached or error) and its
duration. The HTTP service exposes the registry on /metrics.
*/
package observability
