// Package roster keeps the employee records assembled during startup and
// exposes them by ID and in registration order.
package roster
