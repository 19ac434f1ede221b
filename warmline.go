// Package warmline provides a people-discovery pipeline. It captures the
// visible text of a web page, asks an LLM completion service to extract the
// people mentioned on it together with personalization-ready context, and
// ingests the results into a shared store with duplicate-safe writes.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, anthropic/).
package warmline
