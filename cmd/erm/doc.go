// Command erm builds the application context from configuration and prints a
// summary of it to standard output.
//
// Usage:
//
//	erm [--config=erm.yaml] [--name=NAME] [--log-level=LEVEL] [--log-format=FORMAT]
package main
