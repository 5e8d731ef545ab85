package ddcutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shinji-kodama/monitor-cli/internal/model"
)

func strPtr(s string) *string { return &s }

// TestBuild verifies argument assembly for every request shape.
func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		req      model.Request
		code     string
		wantArgs []string
		wantMode model.Mode
	}{
		{
			name:     "read",
			req:      model.Request{Feature: "10"},
			code:     "10",
			wantArgs: []string{"--bus=6", "getvcp", "10"},
			wantMode: model.ModeRead,
		},
		{
			name:     "set value",
			req:      model.Request{Feature: "brightness", Value: strPtr("50")},
			code:     "10",
			wantArgs: []string{"--bus=6", "setvcp", "10", "50"},
			wantMode: model.ModeWrite,
		},
		{
			name:     "increase",
			req:      model.Request{Feature: "contrast", Up: strPtr("5")},
			code:     "12",
			wantArgs: []string{"--bus=6", "setvcp", "12", "+", "5"},
			wantMode: model.ModeWrite,
		},
		{
			name:     "decrease",
			req:      model.Request{Feature: "contrast", Down: strPtr("7")},
			code:     "12",
			wantArgs: []string{"--bus=6", "setvcp", "12", "-", "7"},
			wantMode: model.ModeWrite,
		},
		{
			name:     "value passed through unchanged",
			req:      model.Request{Feature: "0xAB", Value: strPtr("0x1f ")},
			code:     "AB",
			wantArgs: []string{"--bus=6", "setvcp", "AB", "0x1f "},
			wantMode: model.ModeWrite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := Build(DefaultBinary, 6, tt.req, tt.code)
			assert.Equal(t, DefaultBinary, inv.Binary)
			assert.Equal(t, tt.wantArgs, inv.Args)
			assert.Equal(t, tt.wantMode, inv.Mode)
		})
	}
}

// TestBuild_Bus checks the bus number lands in the leading selector.
func TestBuild_Bus(t *testing.T) {
	inv := Build("/usr/local/bin/ddcutil", 12, model.Request{Feature: "12"}, "12")
	assert.Equal(t, "/usr/local/bin/ddcutil", inv.Binary)
	assert.Equal(t, []string{"--bus=12", "getvcp", "12"}, inv.Args)
}

func TestBusFlag(t *testing.T) {
	assert.Equal(t, "--bus=0", BusFlag(0))
	assert.Equal(t, "--bus=6", BusFlag(6))
}

func TestInvocation_String(t *testing.T) {
	inv := Invocation{Binary: "ddcutil", Args: []string{"--bus=6", "setvcp", "12", "+", "5"}}
	assert.Equal(t, "ddcutil --bus=6 setvcp 12 + 5", inv.String())
}
