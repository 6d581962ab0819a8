package integration_test

import (
	"testing"

	"github.com/penumbra-droid/droidsound/test/integration/harness"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantExit   int
		wantRows   map[string]string
		wantStdout []string
		wantStderr string
	}{
		{
			name:     "mp3 trigger bank address",
			args:     []string{"encode", "--backend", "mp3trigger", "$25", "$s", "$VV0"},
			wantRows: map[string]string{"$25": "7417", "$s": "4F", "$VV0": "76F0"},
		},
		{
			name:     "dfplayer answers the handshake",
			args:     []string{"encode", "--backend", "dfplayer", "$25"},
			wantRows: map[string]string{"$25": "7EFF0603000018FEE0EF"},
		},
		{
			name:       "dfplayer init frames on request",
			args:       []string{"encode", "--backend", "2", "--init", "$s"},
			wantStdout: []string{"7EFF060C010000FEEEEF"},
		},
		{
			name:     "vocalizer tags",
			args:     []string{"encode", "--backend", "hcr", "$25", "$s"},
			wantRows: map[string]string{"$25": "<CA0024>", "$s": "<PSG>"},
		},
		{
			name:       "unknown command is reported",
			args:       []string{"encode", "--backend", "hcr", "hello"},
			wantStdout: []string{"? not a sound command"},
		},
		{
			name:       "disabled writes nothing",
			args:       []string{"encode", "--backend", "disabled", "$25"},
			wantExit:   1,
			wantStderr: "writes nothing",
		},
		{
			name:       "unknown backend",
			args:       []string{"encode", "--backend", "theremin", "$25"},
			wantExit:   1,
			wantStderr: "unknown sound backend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertExitCode(t, result, tt.wantExit)
			for command, want := range tt.wantRows {
				harness.AssertEncoded(t, result, command, want)
			}
			for _, want := range tt.wantStdout {
				harness.AssertStdoutContains(t, result, want)
			}
			if tt.wantStderr != "" {
				harness.AssertStderrContains(t, result, tt.wantStderr)
			}
		})
	}
}
