// Package testutil contains helpers shared by package tests. It is internal
// and not part of the public API.
package testutil
