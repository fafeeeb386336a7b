// Package export writes records to individual files.
//
// Each record becomes one file in the output directory. The file name is
// derived from the record name and an extension, and the content is
// serialized in one of two formats.
//
// # Formats
//
//   - Plain: the content as a JSON string (quoted, escaped)
//   - XML: a UTF-8 XML document whose <process_data> root holds the
//     JSON-string-encoded content as text
//
// Example XML output for content `a "b"`:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<process_data>&#34;a \&#34;b\&#34;&#34;</process_data>
//
// Decoding the root text as XML and then as JSON yields the content back.
//
// # File Naming
//
// DeriveFilename appends the extension verbatim and replaces every "/"
// with "_" so a record cannot create nested directories. No other
// normalization is done: "..", backslashes and NUL bytes pass through.
//
// # Failures
//
// Export creates the output directory first and fails before touching any
// record if that is not possible. After that, a record that cannot be
// encoded or written is reported in Result.Failures and the remaining
// records are still exported. WithFailFastIf(true) stops at the first failure.
package export
