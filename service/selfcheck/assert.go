package selfcheck

// CompileTimeValue is checked against 42 when the package is compiled.
const CompileTimeValue = 42

// Never called. Changing CompileTimeValue turns the index below into a
// negative or out of range constant and the build fails on that line.
func _() {
	var x [1]struct{}
	_ = x[CompileTimeValue-42] // Compile-time assertion failed: CompileTimeValue must be 42.
}
