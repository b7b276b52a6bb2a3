// Package newsroom provides a local, CLI-based search tool over a municipal
// website and its council agenda documents. It crawls the site politely,
// extracts structured page content, ingests agenda PDFs, and answers free-text
// queries with ranked matches, context snippets, and LLM summaries.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package newsroom
