// Package google handles OAuth2 authentication against the Google APIs.
//
// Tokens are obtained through the installed-app flow (out-of-band redirect)
// and cached on disk per account under the user cache directory. Service
// clients obtain authenticated HTTP clients from this package.
package google
