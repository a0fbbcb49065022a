// Package docs renders a project-context Markdown bundle: the README,
// supplemental docs, and every eligible source file concatenated into one
// fenced-code document, optionally split into numbered parts when a
// character budget is exceeded.
package docs
