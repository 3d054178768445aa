// Package gateway is a typed client for the ResearchHub backend REST API.
//
// Every operation returns a result or an error, never panics past its
// boundary. Session identity travels implicitly in the cookie jar; the
// gateway itself never mints, inspects or forwards tokens. URL builders
// (DownloadURL, PreviewURL) are pure string construction and perform no
// network I/O.
package gateway
