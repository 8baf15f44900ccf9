// Package domain contains shared domain types used across entity sub-packages.
// The validation framework lives in sub-packages: domain/schema selects a rule
// for each declared field, domain/entity binds and enforces those rules, and
// domain/user is the reference record type built on top of them.
// This root package holds the sentinel errors and the ValidationError type that
// every layer reports rejected writes with.
package domain
