// Package client provides the raw HTTP client shared by the SDK's
// service clients: it signs outbound requests to the platform's ingest
// API and verifies the authenticity of requests the platform (or a
// worker) pushes back to the running process.
package client
