package contract

// GoldenPathAssertion is a single assertion on an output event field: a
// dot-separated field path, a comparison operator, and the expected value.
type GoldenPathAssertion struct {
	Field string `json:"field" yaml:"field" validate:"required,max=10000"`
	Op    string `json:"op" yaml:"op" validate:"required,oneof=eq neq gte lte in contains"`
	Value any    `json:"value" yaml:"value"`
}

// GoldenPathInput names the topic and fixture used as the input event.
type GoldenPathInput struct {
	Topic                 string `json:"topic" yaml:"topic" validate:"required,max=10000"`
	Fixture               string `json:"fixture" yaml:"fixture" validate:"required,max=10000"`
	InputCorrelationField string `json:"input_correlation_id_field,omitempty" yaml:"input_correlation_id_field,omitempty" validate:"max=10000"`
}

// GoldenPathOutput names the topic the output event is expected on, with
// optional schema validation and field-level assertions.
type GoldenPathOutput struct {
	Topic                  string                `json:"topic" yaml:"topic" validate:"required,max=10000"`
	OutputCorrelationField string                `json:"output_correlation_id_field,omitempty" yaml:"output_correlation_id_field,omitempty" validate:"max=10000"`
	SchemaName             string                `json:"schema_name,omitempty" yaml:"schema_name,omitempty" validate:"max=10000"`
	Assertions             []GoldenPathAssertion `json:"assertions" yaml:"assertions" validate:"max=1000,dive"`
}

// GoldenPath declares a full input-event-to-output-event contract test for a
// pipeline. TimeoutMS lives here, not on input or output, as the single
// source of truth for the round-trip timeout.
type GoldenPath struct {
	Input     GoldenPathInput  `json:"input" yaml:"input" validate:"required"`
	Output    GoldenPathOutput `json:"output" yaml:"output" validate:"required"`
	TimeoutMS int              `json:"timeout_ms" yaml:"timeout_ms" validate:"omitempty,gte=1"`
	Infra     string           `json:"infra,omitempty" yaml:"infra,omitempty" validate:"omitempty,oneof=real mock"`
	TestFile  string           `json:"test_file,omitempty" yaml:"test_file,omitempty" validate:"max=10000"`
}

// Defaults applied when fields are omitted from a declaration.
const (
	DefaultGoldenPathTimeoutMS = 30000
	DefaultGoldenPathInfra     = "real"
	DefaultCorrelationField    = "correlation_id"
)

// ApplyDefaults fills omitted optional fields with their declared defaults.
func (g *GoldenPath) ApplyDefaults() {
	if g.TimeoutMS == 0 {
		g.TimeoutMS = DefaultGoldenPathTimeoutMS
	}
	if g.Infra == "" {
		g.Infra = DefaultGoldenPathInfra
	}
	if g.Input.InputCorrelationField == "" {
		g.Input.InputCorrelationField = DefaultCorrelationField
	}
	if g.Output.OutputCorrelationField == "" {
		g.Output.OutputCorrelationField = DefaultCorrelationField
	}
}

// Validate checks the declaration after defaults are applied.
func (g *GoldenPath) Validate() error {
	if err := validate.Struct(g); err != nil {
		return formatValidationError(err)
	}
	return nil
}
