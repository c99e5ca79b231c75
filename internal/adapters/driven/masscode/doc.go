// Package masscode implements the SnippetAPI driven port against the
// massCode app's local HTTP API (https://masscode.io).
//
// The API is an unauthenticated localhost service. Its boolean fields
// arrive in several encodings (true, 1, "true", "1"); FlexBool accepts
// them all. Errors are typed: TransportError for network failures,
// ProtocolError for non-2xx responses (with a bounded body preview), and
// DecodeError for malformed JSON.
package masscode
