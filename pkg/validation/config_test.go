package validation

import (
	"errors"
	"testing"
	"time"
)

func TestConfigValidator_Required(t *testing.T) {
	cv := NewConfigValidator("Catalog")
	cv.Required("Path", "")
	if !cv.HasErrors() {
		t.Error("expected error for empty required field")
	}

	cv2 := NewConfigValidator("Catalog")
	cv2.Required("Path", "/data/snapshots")
	if cv2.HasErrors() {
		t.Error("expected no error for non-empty required field")
	}
}

func TestConfigValidator_RequiredInt(t *testing.T) {
	cv := NewConfigValidator("ExecutionParameters")
	cv.RequiredInt("ThreadCount", 0)
	if !cv.HasErrors() {
		t.Error("expected error for zero required int")
	}

	cv2 := NewConfigValidator("ExecutionParameters")
	cv2.RequiredInt("ThreadCount", 8)
	if cv2.HasErrors() {
		t.Error("expected no error for non-zero required int")
	}
}

func TestConfigValidator_RequiredDuration(t *testing.T) {
	cv := NewConfigValidator("ExecutionParameters")
	cv.RequiredDuration("Timeout", 0)
	if !cv.HasErrors() {
		t.Error("expected error for zero required duration")
	}

	cv2 := NewConfigValidator("ExecutionParameters")
	cv2.RequiredDuration("Timeout", 30*time.Second)
	if cv2.HasErrors() {
		t.Error("expected no error for non-zero required duration")
	}
}

func TestConfigValidator_NonEmptySlice(t *testing.T) {
	cv := NewConfigValidator("ExecutionParameters")
	cv.NonEmptySlice("OutputSnapshots", 0)
	if !cv.HasErrors() {
		t.Error("expected error for empty slice")
	}

	cv2 := NewConfigValidator("ExecutionParameters")
	cv2.NonEmptySlice("OutputSnapshots", 3)
	if cv2.HasErrors() {
		t.Error("expected no error for non-empty slice")
	}
}

func TestConfigValidator_MinMaxRangeInt(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		min, max  int
		expectErr bool
	}{
		{"below range", -1, 0, 99, true},
		{"above range", 100, 0, 99, true},
		{"at min", 0, 0, 99, false},
		{"at max", 99, 0, 99, false},
		{"in range", 50, 0, 99, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := NewConfigValidator("SimulationParameters")
			cv.RangeInt("MinSnapshot", tt.value, tt.min, tt.max)
			if tt.expectErr != cv.HasErrors() {
				t.Errorf("RangeInt(%d, %d, %d): HasErrors() = %v, want %v", tt.value, tt.min, tt.max, cv.HasErrors(), tt.expectErr)
			}
		})
	}

	cvMin := NewConfigValidator("SimulationParameters")
	cvMin.MinInt("MinSnapshot", -1, 0)
	if !cvMin.HasErrors() {
		t.Error("expected error from MinInt below minimum")
	}

	cvMax := NewConfigValidator("SimulationParameters")
	cvMax.MaxInt("ThreadCount", 128, 64)
	if !cvMax.HasErrors() {
		t.Error("expected error from MaxInt above maximum")
	}
}

func TestConfigValidator_MinMaxRangeDuration(t *testing.T) {
	cv := NewConfigValidator("ExecutionParameters")
	cv.MinDuration("Timeout", 500*time.Millisecond, 1*time.Second)
	if !cv.HasErrors() {
		t.Error("expected error for duration below minimum")
	}

	cv2 := NewConfigValidator("ExecutionParameters")
	cv2.MaxDuration("Timeout", 10*time.Minute, 5*time.Minute)
	if !cv2.HasErrors() {
		t.Error("expected error for duration above maximum")
	}

	cv3 := NewConfigValidator("ExecutionParameters")
	cv3.RangeDuration("Timeout", 2*time.Minute, 1*time.Minute, 5*time.Minute)
	if cv3.HasErrors() {
		t.Error("expected no error for duration within range")
	}
}

func TestConfigValidator_Positive(t *testing.T) {
	for _, v := range []int{0, -5} {
		cv := NewConfigValidator("ExecutionParameters")
		cv.Positive("ThreadCount", v)
		if !cv.HasErrors() {
			t.Errorf("Positive(%d): expected error", v)
		}
	}

	cv := NewConfigValidator("ExecutionParameters")
	cv.Positive("ThreadCount", 4)
	if cv.HasErrors() {
		t.Error("expected no error for positive value")
	}
}

func TestConfigValidator_NonNegative(t *testing.T) {
	cv := NewConfigValidator("GasCoolingParameters")
	cv.NonNegative("MaxFractionalAccretedMass", -1)
	if !cv.HasErrors() {
		t.Error("expected error for negative value")
	}

	cv2 := NewConfigValidator("GasCoolingParameters")
	cv2.NonNegative("MaxFractionalAccretedMass", 0)
	if cv2.HasErrors() {
		t.Error("expected no error for zero value")
	}
}

func TestConfigValidator_PositiveAndNonNegativeFloat(t *testing.T) {
	cv := NewConfigValidator("GasCoolingParameters")
	cv.PositiveFloat("MaxFractionalAccretedMass", 0)
	if !cv.HasErrors() {
		t.Error("expected error for zero value in PositiveFloat")
	}

	cv2 := NewConfigValidator("GasCoolingParameters")
	cv2.NonNegativeFloat("MaxFractionalAccretedMass", -0.01)
	if !cv2.HasErrors() {
		t.Error("expected error for negative value in NonNegativeFloat")
	}

	cv3 := NewConfigValidator("GasCoolingParameters")
	cv3.NonNegativeFloat("MaxFractionalAccretedMass", 0.3)
	if cv3.HasErrors() {
		t.Error("expected no error for non-negative value")
	}
}

func TestConfigValidator_OneOf(t *testing.T) {
	allowed := []string{"linker", "central", "massgrowth", "accretion"}

	cv := NewConfigValidator("StageConfig")
	cv.OneOf("Stage", "seeder-v2", allowed)
	if !cv.HasErrors() {
		t.Error("expected error for value not in allowed list")
	}

	cv2 := NewConfigValidator("StageConfig")
	cv2.OneOf("Stage", "central", allowed)
	if cv2.HasErrors() {
		t.Error("expected no error for allowed value")
	}
}

func TestConfigValidator_Custom(t *testing.T) {
	cv := NewConfigValidator("SimulationParameters")
	cv.Custom("MinSnapshot/MaxSnapshot", func() error {
		return errors.New("min_snapshot 10 exceeds max_snapshot 5")
	})
	if !cv.HasErrors() {
		t.Error("expected error from custom validation")
	}

	cv2 := NewConfigValidator("SimulationParameters")
	cv2.Custom("MinSnapshot/MaxSnapshot", func() error { return nil })
	if cv2.HasErrors() {
		t.Error("expected no error from passing custom validation")
	}
}

func TestConfigValidator_When(t *testing.T) {
	cv := NewConfigValidator("ExecutionParameters")
	cv.When(true, func(v *ConfigValidator) {
		v.Positive("ThreadCount", -1)
	})
	if !cv.HasErrors() {
		t.Error("expected error when condition is true")
	}

	cv2 := NewConfigValidator("ExecutionParameters")
	cv2.When(false, func(v *ConfigValidator) {
		v.Positive("ThreadCount", -1)
	})
	if cv2.HasErrors() {
		t.Error("expected no error when condition is false")
	}
}

func TestConfigValidator_Chaining(t *testing.T) {
	cv := NewConfigValidator("ExecutionParameters")
	cv.Required("CatalogPath", "/data/snapshots").
		RangeInt("ThreadCount", 4, 1, 128).
		MinDuration("Timeout", 30*time.Second, 1*time.Second).
		Positive("ThreadCount", 4)

	if cv.HasErrors() {
		t.Errorf("expected no errors for valid config, got: %v", cv.Error())
	}
}

func TestConfigValidator_MultipleErrors(t *testing.T) {
	cv := NewConfigValidator("ExecutionParameters")
	cv.Required("CatalogPath", "").
		Positive("ThreadCount", -1).
		MinDuration("Timeout", 0, 1*time.Second)

	if len(cv.Errors()) != 3 {
		t.Errorf("expected 3 errors, got %d", len(cv.Errors()))
	}
}

func TestConfigValidator_Validate(t *testing.T) {
	cv := NewConfigValidator("ExecutionParameters")
	cv.Required("CatalogPath", "")
	if err := cv.Validate(); err == nil {
		t.Error("expected error from Validate()")
	}

	cv2 := NewConfigValidator("ExecutionParameters")
	cv2.Required("CatalogPath", "/data/snapshots")
	if err := cv2.Validate(); err != nil {
		t.Errorf("expected no error from Validate(), got: %v", err)
	}
}

func TestDefaultOr(t *testing.T) {
	if DefaultOr("", "default") != "default" {
		t.Error("expected default for empty string")
	}
	if DefaultOr("value", "default") != "value" {
		t.Error("expected value for non-empty string")
	}
}

func TestDefaultOrInt(t *testing.T) {
	if DefaultOrInt(0, 10) != 10 {
		t.Error("expected default for zero")
	}
	if DefaultOrInt(-5, 10) != 10 {
		t.Error("expected default for negative")
	}
	if DefaultOrInt(5, 10) != 5 {
		t.Error("expected value for positive")
	}
}

func TestDefaultOrDuration(t *testing.T) {
	if DefaultOrDuration(0, 5*time.Second) != 5*time.Second {
		t.Error("expected default for zero duration")
	}
	if DefaultOrDuration(-1*time.Second, 5*time.Second) != 5*time.Second {
		t.Error("expected default for negative duration")
	}
	if DefaultOrDuration(10*time.Second, 5*time.Second) != 10*time.Second {
		t.Error("expected value for positive duration")
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		value, min, max, expected int
	}{
		{50, 0, 99, 50},
		{-1, 0, 99, 0},
		{100, 0, 99, 99},
		{0, 0, 99, 0},
		{99, 0, 99, 99},
	}

	for _, tt := range tests {
		result := ClampInt(tt.value, tt.min, tt.max)
		if result != tt.expected {
			t.Errorf("ClampInt(%d, %d, %d) = %d, want %d", tt.value, tt.min, tt.max, result, tt.expected)
		}
	}
}

func TestClampDuration(t *testing.T) {
	tests := []struct {
		value, min, max, expected time.Duration
	}{
		{5 * time.Second, 1 * time.Second, 10 * time.Second, 5 * time.Second},
		{500 * time.Millisecond, 1 * time.Second, 10 * time.Second, 1 * time.Second},
		{15 * time.Second, 1 * time.Second, 10 * time.Second, 10 * time.Second},
	}

	for _, tt := range tests {
		result := ClampDuration(tt.value, tt.min, tt.max)
		if result != tt.expected {
			t.Errorf("ClampDuration(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, result, tt.expected)
		}
	}
}

// runParameters is a minimal Validatable used to exercise ValidateConfig
// without depending on the full SimulationParameters/ExecutionParameters
// structs, which already have their own dedicated tests.
type runParameters struct {
	CatalogPath string
	ThreadCount int
	Timeout     time.Duration
}

func (p *runParameters) Validate() error {
	return NewConfigValidator("runParameters").
		Required("CatalogPath", p.CatalogPath).
		RangeInt("ThreadCount", p.ThreadCount, 1, 256).
		MinDuration("Timeout", p.Timeout, 1*time.Second).
		Validate()
}

func TestValidateConfig(t *testing.T) {
	valid := &runParameters{CatalogPath: "/data/snapshots", ThreadCount: 8, Timeout: 30 * time.Second}
	if err := ValidateConfig(valid); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}

	invalid := &runParameters{CatalogPath: "", ThreadCount: 0, Timeout: 0}
	if err := ValidateConfig(invalid); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestValidateConfig_Nil(t *testing.T) {
	if err := ValidateConfig(nil); err == nil {
		t.Error("expected error for nil config")
	}
}
