// Package schemagen generates Schema.org JSON-LD markup for web pages.
// It fetches a page, runs a set of independent extraction passes over the
// HTML (metadata, contact info, social links, media, entity keywords),
// assembles the results into a Gemini prompt, and post-processes the model's
// JSON response into linked-data markup. When the model is unavailable or
// returns unparseable output, a deterministic template fallback populates
// the markup directly from the extracted data.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, gin/).
package schemagen
