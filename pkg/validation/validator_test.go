package validation

import (
	"testing"
)

func TestValidateSimulationParameters(t *testing.T) {
	tests := []struct {
		name        string
		params      SimulationParameters
		expectError bool
	}{
		{
			name:   "valid range",
			params: SimulationParameters{MinSnapshot: 0, MaxSnapshot: 99},
		},
		{
			name:   "min equals max",
			params: SimulationParameters{MinSnapshot: 5, MaxSnapshot: 5},
		},
		{
			name:        "min exceeds max",
			params:      SimulationParameters{MinSnapshot: 10, MaxSnapshot: 5},
			expectError: true,
		},
		{
			name:        "negative min snapshot",
			params:      SimulationParameters{MinSnapshot: -1, MaxSnapshot: 5},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSimulationParameters(&tt.params)
			if tt.expectError && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error but got: %v", err)
			}
		})
	}
}

func TestValidateSimulationParametersNil(t *testing.T) {
	if err := ValidateSimulationParameters(nil); err == nil {
		t.Error("expected error for nil parameters")
	}
}

func TestValidateExecutionParameters(t *testing.T) {
	tests := []struct {
		name        string
		params      ExecutionParameters
		expectError bool
	}{
		{
			name: "valid",
			params: ExecutionParameters{
				OutputSnapshots: []int{99, 50, 0},
				ThreadCount:     4,
			},
		},
		{
			name: "zero thread count is valid (implementation picks a default)",
			params: ExecutionParameters{
				OutputSnapshots: []int{99},
				ThreadCount:     0,
			},
		},
		{
			name: "empty output snapshots",
			params: ExecutionParameters{
				OutputSnapshots: []int{},
				ThreadCount:     1,
			},
			expectError: true,
		},
		{
			name: "negative thread count",
			params: ExecutionParameters{
				OutputSnapshots: []int{10},
				ThreadCount:     -1,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExecutionParameters(&tt.params)
			if tt.expectError && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error but got: %v", err)
			}
		})
	}
}

func TestValidateExecutionParametersNil(t *testing.T) {
	if err := ValidateExecutionParameters(nil); err == nil {
		t.Error("expected error for nil parameters")
	}
}

func TestValidateGasCoolingParameters(t *testing.T) {
	tests := []struct {
		name        string
		params      GasCoolingParameters
		expectError bool
	}{
		{
			name:   "zero is valid",
			params: GasCoolingParameters{MaxFractionalAccretedMass: 0},
		},
		{
			name:   "positive value is valid",
			params: GasCoolingParameters{MaxFractionalAccretedMass: 0.5},
		},
		{
			name:        "negative value is invalid",
			params:      GasCoolingParameters{MaxFractionalAccretedMass: -0.1},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGasCoolingParameters(&tt.params)
			if tt.expectError && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error but got: %v", err)
			}
		})
	}
}

func TestValidateGasCoolingParametersNil(t *testing.T) {
	if err := ValidateGasCoolingParameters(nil); err == nil {
		t.Error("expected error for nil parameters")
	}
}
