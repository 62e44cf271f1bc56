package contract

// ProcessChange is one process change entry in a day-close report.
type ProcessChange struct {
	Change    string `json:"change" yaml:"change" validate:"required,max=10000"`
	Rationale string `json:"rationale" yaml:"rationale" validate:"required,max=10000"`
	Replaces  string `json:"replaces" yaml:"replaces" validate:"required,max=10000"`
}

// PlanItem is one planned requirement in a day-close report.
type PlanItem struct {
	RequirementID string `json:"requirement_id" yaml:"requirement_id" validate:"required,max=10000"`
	Summary       string `json:"summary" yaml:"summary" validate:"required,max=10000"`
}

// PullRequest is one PR entry under a repository.
type PullRequest struct {
	PR    int     `json:"pr" yaml:"pr" validate:"required,gte=1"`
	Title string  `json:"title" yaml:"title" validate:"required,max=10000"`
	State PRState `json:"state" yaml:"state" validate:"required,oneof=merged open"`
	Notes string  `json:"notes" yaml:"notes" validate:"required,max=10000"`
}

// RepoActual is the actual work recorded for one repository.
type RepoActual struct {
	Repo string        `json:"repo" yaml:"repo" validate:"required,max=10000"`
	PRs  []PullRequest `json:"prs" yaml:"prs" validate:"max=1000,dive"`
}

// Drift is one detected deviation from the plan.
type Drift struct {
	DriftID               string        `json:"drift_id" yaml:"drift_id" validate:"required,max=10000"`
	Category              DriftCategory `json:"category" yaml:"category" validate:"required,oneof=scope architecture interfaces dependencies infra process"`
	Evidence              string        `json:"evidence" yaml:"evidence" validate:"required,max=10000"`
	Impact                string        `json:"impact" yaml:"impact" validate:"required,max=10000"`
	CorrectionForTomorrow string        `json:"correction_for_tomorrow" yaml:"correction_for_tomorrow" validate:"required,max=10000"`
}

// InvariantsChecked is the invariant status block of a day-close report.
type InvariantsChecked struct {
	ReducersPure              InvariantStatus `json:"reducers_pure" yaml:"reducers_pure" validate:"required,oneof=pass fail unknown"`
	OrchestratorsNoIO         InvariantStatus `json:"orchestrators_no_io" yaml:"orchestrators_no_io" validate:"required,oneof=pass fail unknown"`
	EffectsDoIOOnly           InvariantStatus `json:"effects_do_io_only" yaml:"effects_do_io_only" validate:"required,oneof=pass fail unknown"`
	RealInfraProofProgressing InvariantStatus `json:"real_infra_proof_progressing" yaml:"real_infra_proof_progressing" validate:"required,oneof=pass fail unknown"`
}

// Risk is one risk entry with its mitigation.
type Risk struct {
	Risk       string `json:"risk" yaml:"risk" validate:"required,max=10000"`
	Mitigation string `json:"mitigation" yaml:"mitigation" validate:"required,max=10000"`
}

// DayClose is a daily reconciliation of plan versus actual work across
// repositories.
type DayClose struct {
	SchemaVersion          string            `json:"schema_version" yaml:"schema_version" validate:"required,max=20,semver"`
	Date                   string            `json:"date" yaml:"date" validate:"required,isodate"`
	ProcessChangesToday    []ProcessChange   `json:"process_changes_today" yaml:"process_changes_today" validate:"max=1000,dive"`
	Plan                   []PlanItem        `json:"plan" yaml:"plan" validate:"max=1000,dive"`
	ActualByRepo           []RepoActual      `json:"actual_by_repo" yaml:"actual_by_repo" validate:"max=1000,dive"`
	DriftDetected          []Drift           `json:"drift_detected" yaml:"drift_detected" validate:"max=1000,dive"`
	InvariantsChecked      InvariantsChecked `json:"invariants_checked" yaml:"invariants_checked" validate:"required"`
	CorrectionsForTomorrow []string          `json:"corrections_for_tomorrow" yaml:"corrections_for_tomorrow" validate:"max=1000,dive,max=10000"`
	Risks                  []Risk            `json:"risks" yaml:"risks" validate:"max=1000,dive"`
}

// Validate checks the day-close report against its declared constraints.
func (d *DayClose) Validate() error {
	if err := validate.Struct(d); err != nil {
		return formatValidationError(err)
	}
	return nil
}
