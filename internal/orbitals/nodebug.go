//go:build !debug
// +build !debug

package orbitals

func DebugLog(format string, args ...interface{}) {}

func DebugLogOnce(format string, args ...interface{}) {}
