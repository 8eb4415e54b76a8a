// Package storage provides the S3-compatible object storage client.
//
// It is the transport behind the bucket resource kind: the bucket feature
// lists buckets and their tag sets through the Client interface defined here.
// The interface is deliberately narrow so tests can substitute a mock without
// touching a live endpoint.
package storage
