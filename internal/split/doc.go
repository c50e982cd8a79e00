// Package split re-partitions the extracted catalogs into smaller files by
// priority tier, category, and plugin, and writes content-stripped metadata
// catalogs. Source catalogs are only read.
package split
