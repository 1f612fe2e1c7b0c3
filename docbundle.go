// Package docbundle bundles the docs.rs documentation of a Rust crate into
// local Markdown files. It crawls every page under the crate's documentation
// prefix, converts each page to Markdown, and then concatenates the pages of
// every directory into a unified document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, sqlite/).
package docbundle
