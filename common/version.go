package common

import "github.com/nspcc-dev/neo-go/pkg/interop/native/std"

const (
	major = 0
	minor = 1
	patch = 0

	// Lowest version the contract can be updated from. Data stored by older
	// versions is not migrated.
	prevMajor = 0
	prevMinor = 1
	prevPatch = 0

	// Version is the contract version encoded as major*1_000_000+minor*1_000+patch.
	Version = major*1_000_000 + minor*1_000 + patch

	PrevVersion = prevMajor*1_000_000 + prevMinor*1_000 + prevPatch

	// ErrVersionMismatch is thrown by CheckVersion if the stored data is too old.
	ErrVersionMismatch = "previous version mismatch"

	// ErrAlreadyUpdated is thrown by CheckVersion if the contract is being
	// updated from the current version.
	ErrAlreadyUpdated = "contract is already of the latest version"
)

// CheckVersion panics unless the contract can be updated from the given version.
func CheckVersion(from int) {
	if from < PrevVersion {
		panic(ErrVersionMismatch + ": expected >=" + std.Itoa(PrevVersion, 10))
	}
	if from == Version {
		panic(ErrAlreadyUpdated + ": " + std.Itoa(Version, 10))
	}
}

// AppendVersion appends current contract version to the update data, so that
// the new code receives the version it is updated from.
func AppendVersion(data any) []any {
	if data == nil {
		return []any{Version}
	}
	return append(data.([]any), Version)
}
