// Package utils contains small conversion helpers shared by the feature
// adapters: scan-value coercions for loosely typed provider attributes and
// unit conversions for capacity fields.
package utils
