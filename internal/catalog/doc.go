// Package catalog defines the JSON documents exchanged between the extract,
// split, and import stages: entity records (agents, commands, skills,
// plugins), the catalog and split files that wrap them with a total_count,
// metadata-only projections, and curated recommendation documents.
//
// Every file constructor sets total_count from the list it wraps, so the
// count and the list cannot disagree in anything this package writes.
package catalog
