// Package app wires configuration, stores, gateway clients and services
// into the dependency graph consumed by the CLI.
package app
