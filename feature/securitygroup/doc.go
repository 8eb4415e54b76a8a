// Package securitygroup reconciles provider security groups.
package securitygroup
