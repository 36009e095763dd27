package domain

// Phase names one of the two subprocess invocations of the external build tool.
type Phase string

const (
	// PhaseConfiguring generates the build files inside the staging directory.
	PhaseConfiguring Phase = "Configuring"
	// PhaseBuilding compiles inside the staging directory.
	PhaseBuilding Phase = "Building"
)

// BuildStatus represents where a build stands in its lifecycle.
type BuildStatus string

const (
	// StatusPending indicates the build has not started.
	StatusPending BuildStatus = "Pending"
	// StatusConfiguring indicates the configure phase is running.
	StatusConfiguring BuildStatus = "Configuring"
	// StatusBuilding indicates the compile phase is running.
	StatusBuilding BuildStatus = "Building"
	// StatusSucceeded indicates both phases finished with exit code 0.
	StatusSucceeded BuildStatus = "Succeeded"
	// StatusFailed indicates a phase failed; no further phase runs.
	StatusFailed BuildStatus = "Failed"
)
