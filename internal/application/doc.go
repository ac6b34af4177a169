// Package application provides application initialization and dependency wiring.
// It builds the process-wide application context by explicit construction:
// the logger and configuration are handed in by the caller, and the roster is
// populated with one employee per configured entry. The context renders a
// human-readable summary of itself for the entry point to print.
package application
