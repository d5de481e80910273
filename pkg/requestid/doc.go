// Package requestid attaches a correlation id to every HTTP request.
//
// The middleware trusts a client-supplied X-Request-ID only when it is at
// most 128 characters of letters, digits, '-' and '_'; anything else is
// replaced with a fresh UUID. The id is available through FromContext and is
// added to log records by LoggerExtractor.
package requestid
