// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request logging, correlation IDs, CORS, tracing, and
// panic recovery.
package middleware
