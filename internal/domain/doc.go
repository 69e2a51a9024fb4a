// Package domain contains the core model for peopletable.
//
// The domain is presentation- and storage-agnostic: it does not depend on
// terminal rendering, JSON/YAML parsing, or the filesystem. Infra and UI
// adapters map into/from these types.
package domain
