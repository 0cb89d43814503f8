// Package commands defines the proposer CLI: one-shot subcommands for
// each workflow action plus an interactive shell that keeps the whole
// run, including drafted outputs, in one process.
package commands
