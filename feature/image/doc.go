// Package image reconciles provider machine images.
package image
