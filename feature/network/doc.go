// Package network reconciles provider networks and their subnets as two
// separate kinds sharing one feature.
package network
