package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty backend returns ErrBackendEmpty",
			config:  Config{Backend: "", DataDir: "/tmp/data"},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend returns ErrBackendUnknown",
			config:  Config{Backend: "postgres", DataDir: "/tmp/data"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "negative student limit",
			config:  Config{Backend: BackendMemory, MaxStudents: -1},
			wantErr: ErrLimitNegative,
		},
		{
			name:    "negative course limit",
			config:  Config{Backend: BackendMemory, MaxCourses: -3},
			wantErr: ErrLimitNegative,
		},
		{
			name:    "unknown log level",
			config:  Config{Backend: BackendSQLite, LogLevel: "trace"},
			wantErr: ErrLogLevelUnknown,
		},
		{
			name:    "unknown log format",
			config:  Config{Backend: BackendSQLite, LogFormat: "xml"},
			wantErr: ErrLogFormatUnknown,
		},
		{
			name:    "valid sqlite config",
			config:  Config{Backend: BackendSQLite, DataDir: "/tmp/data", LogLevel: "debug", LogFormat: LogFormatJSON},
			wantErr: nil,
		},
		{
			name:    "memory backend with limits",
			config:  Config{Backend: BackendMemory, MaxStudents: 10, MaxCourses: 5},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
