// Package shared holds helpers used across the sales-analysis packages that
// belong to no single layer.
//
// # Test Utilities
//
// The testutil subpackage provides:
//
//   - BufferedSlogHandler, which captures slog records for assertions
//   - sales CSV fixtures written to t.TempDir()
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    logger, logs := testutil.NewTestLogger(t)
//	    path := testutil.WriteSampleSales(t)
//	    // ...
//	    testutil.AssertNoErrors(t, logs)
//	}
//
// This package must not import business packages.
package shared
