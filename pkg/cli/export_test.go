package cli

// RunWithIO exposes run for tests so console output can be captured
var RunWithIO = run
