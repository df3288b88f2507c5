// Package checksum provides content hashing with PL/SQL normalization.
//
// Two checksums are offered:
//
//   - Raw checksum: hash of the exact bytes. The output writer compares it
//     against the file on disk and skips writes that would not change it.
//   - Normalized checksum: hash after removing comments, lowercasing and
//     collapsing whitespace. PL/SQL units carry it as code_checksum, and the
//     procedures index groups units that share one as duplicated code.
//
// # Example Usage
//
//	calculator := checksum.New()
//	raw := calculator.CalculateRaw(fileContent)
//	normalized := calculator.CalculateNormalized([]byte(trigger.Code))
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
