// Package disk reconciles provider block storage volumes. Volumes can be
// visible from several accounts, so removal detaches the current owner's
// endpoint instead of deleting the record.
package disk
