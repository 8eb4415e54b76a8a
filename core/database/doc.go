// Package database manages the MySQL connection backing the local inventory.
//
// It wraps GORM connection setup with sane pooling defaults and strict
// connect/read/write timeouts so a slow or unreachable database fails a
// reconciliation cycle quickly instead of hanging it.
package database
