// Package contract defines the versioned data-contract models: day-close
// reports, ticket contracts, and golden-path test declarations, together
// with YAML decoding and validation.
package contract

// DriftCategory classifies a deviation from planned work in a day-close
// report.
type DriftCategory string

const (
	DriftScope        DriftCategory = "scope"
	DriftArchitecture DriftCategory = "architecture"
	DriftInterfaces   DriftCategory = "interfaces"
	DriftDependencies DriftCategory = "dependencies"
	DriftInfra        DriftCategory = "infra"
	DriftProcess      DriftCategory = "process"
)

// PRState is the state of a pull request in a day-close report.
type PRState string

const (
	PRMerged PRState = "merged"
	PROpen   PRState = "open"
)

// InvariantStatus is the outcome of an invariant check.
type InvariantStatus string

const (
	InvariantPass    InvariantStatus = "pass"
	InvariantFail    InvariantStatus = "fail"
	InvariantUnknown InvariantStatus = "unknown"
)

// EvidenceKind is the type of proof a ticket contract requires.
type EvidenceKind string

const (
	EvidenceTests     EvidenceKind = "tests"
	EvidenceDocs      EvidenceKind = "docs"
	EvidenceCI        EvidenceKind = "ci"
	EvidenceBenchmark EvidenceKind = "benchmark"
	EvidenceManual    EvidenceKind = "manual"
)

// InterfaceSurface is a category of interface boundary a change can touch.
type InterfaceSurface string

const (
	SurfaceEvents    InterfaceSurface = "events"
	SurfaceTopics    InterfaceSurface = "topics"
	SurfaceProtocols InterfaceSurface = "protocols"
	SurfaceEnvelopes InterfaceSurface = "envelopes"
	SurfacePublicAPI InterfaceSurface = "public_api"
)
