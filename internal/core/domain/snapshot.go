package domain

import "time"

// SnapshotInfo is the bookkeeping record for a dependency snapshot (lockfile).
//
// The snapshot itself is opaque; gauntlet only tracks its existence and the
// digest of the manifest it was resolved from, so a manifest edit without
// regeneration is detected before verification runs.
type SnapshotInfo struct {
	LockfilePath   string    `json:"lockfile_path,omitzero"`
	ManifestDigest string    `json:"manifest_digest,omitzero"`
	Generated      bool      `json:"generated,omitzero"`
	Timestamp      time.Time `json:"timestamp,omitzero"`
}
