// Package fixture defines shared constants used by the builder, ensuring
// consistent error prefixes and defaults across all operations.
package fixture

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	// MethodNew is the canonical name for the New constructor.
	MethodNew = "New"
	// MethodBuild is the canonical name for the Build operation.
	MethodBuild = "Build"
	// MethodBuildMany is the canonical name for the BuildMany operation.
	MethodBuildMany = "BuildMany"
	// MethodRecord is the canonical name for Record accessor methods.
	MethodRecord = "Record"
)

//-----------------------------------------------------------------------------
// Build Limits
//-----------------------------------------------------------------------------

// MinBuildCount is the smallest meaningful count for BuildMany.
// Zero is legal and yields an empty slice; negative counts are rejected.
const MinBuildCount = 0
