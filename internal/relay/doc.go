// Package relay provides an HTTP implementation of the domain.ReportPublisher
// interface used by cryptoprobe.
//
// A collector aggregates verification reports from many hosts so a
// deployment pipeline can gate on the fleet rather than a single machine.
// This package offers a concrete HTTP client for such a collector.
//
// Supported operations include:
//   - Publishing a host's report (POST {base}/reports/{host}).
//   - Fetching the last report published for a host (GET {base}/reports/{host}).
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as errors with the HTTP method,
// path, and status text to aid diagnostics.
package relay
