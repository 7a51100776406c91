// Package drive provides a read-only client for the Google Drive API.
//
// The client covers listing and searching files with Drive's query
// language, fetching file metadata, downloading raw content, and
// exporting Google-native documents to other formats. It is the data
// source for the content search in the contentsearch package.
//
// The client supports multi-account functionality; each instance is
// bound to one account and authenticates through the unified OAuth
// token from the google package (drive.readonly scope).
package drive
