// Package querysum provides an interactive front-end for a local full-text
// search engine. Each query is forwarded to the engine subprocess, and the
// top matching pages are outlined and summarized by a text generation service.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, ollama/, exec/).
package querysum
