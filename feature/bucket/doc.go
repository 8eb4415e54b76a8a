// Package bucket reconciles object storage buckets. Unlike the other kinds,
// the remote listing comes from the object storage API itself rather than
// the provider's paginated inventory endpoint.
package bucket
