// Package http implements the REST transport of the wallet service.
//
// It exposes route wiring, request handlers, and middleware used by the API.
// Cross-cutting concerns such as bearer authentication, request tracing,
// access logging, compression, request timeouts and rate limiting of the
// credential endpoints are handled in this package before requests are
// delegated to the service layer. Every response is a [models.Response]
// envelope.
package http
