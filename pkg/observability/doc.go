/*
Package observability exposes hunt progress as Prometheus metrics.

Metrics are fed from domain.LifecycleHooks, so the driver itself stays unaware
of Prometheus. Candidate phrases are never used as label values or exported.
*/
package observability
