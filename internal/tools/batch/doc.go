// Package batch provides helpers shared by tools that accept one ID or
// many: parsing parameters that are either a single string or an array,
// running an operation per ID, and formatting the aggregated results
// with per-item success/failure status.
package batch
