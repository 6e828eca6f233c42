// Package smartscrape provides a form-driven, AI-assisted web extraction tool.
// A user supplies a credential, a model, a natural-language prompt and a URL;
// an extraction service fetches the page, hands its content to a language
// model and returns whatever structured value the model produces.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, openai/, trafilatura/).
package smartscrape
