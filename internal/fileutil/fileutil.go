// Package fileutil defines shared file permission modes for output files.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for corrected specification
// documents (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the file permission mode for generated source code
// files intended to be read by build tools and other users.
const ReadableByAll os.FileMode = 0o644
