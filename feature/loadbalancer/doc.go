// Package loadbalancer reconciles provider load balancers.
package loadbalancer
