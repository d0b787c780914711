// Package ingestsdk is the SDK for the EllipseSearch RPA ingest API.
//
// It is used on both sides of the same wire contract: RPA workers use
// it to push analysis results to the platform with signed requests,
// and receiving services use it to verify that inbound result webhooks
// are genuine before any business logic runs.
//
// # Overview of Packages
//
//   - ingestsdk - The main SDK package, construction and options
//   - rpaingest - The client and webhook handler for the RPA ingest API
//   - pkg/auth - Webhook request authentication (bearer and HMAC)
package ingestsdk
