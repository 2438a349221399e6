// Package crypto exposes the content digests killerpack prints for its
// outputs.
//
// Contents
//
//   - Full BLAKE2b-256 digests for comparing builds (Digest)
//   - Short fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Digests are not stored in the archive; the archive format carries no
// checksum. They let operators confirm that two builds of the same input
// directory are byte-identical.
package crypto
