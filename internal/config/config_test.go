package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplication_Build_LogLevels(t *testing.T) {
	tests := []struct {
		name     string
		config   Application
		expected logrus.Level
		wantErr  bool
	}{
		{
			name:     "default is error level",
			config:   Application{},
			expected: logrus.ErrorLevel,
		},
		{
			name: "quiet trumps everything",
			config: Application{
				Quiet:      true,
				CliOptions: CliOnlyOptions{Verbosity: 2},
			},
			expected: logrus.PanicLevel,
		},
		{
			name: "-v maps to info",
			config: Application{
				CliOptions: CliOnlyOptions{Verbosity: 1},
			},
			expected: logrus.InfoLevel,
		},
		{
			name: "-vv maps to debug",
			config: Application{
				CliOptions: CliOnlyOptions{Verbosity: 3},
			},
			expected: logrus.DebugLevel,
		},
		{
			name: "explicit level",
			config: Application{
				Log: Logging{Level: "warn"},
			},
			expected: logrus.WarnLevel,
		},
		{
			name: "explicit level and -v conflict",
			config: Application{
				Log:        Logging{Level: "warn"},
				CliOptions: CliOnlyOptions{Verbosity: 1},
			},
			wantErr: true,
		},
		{
			name: "bad explicit level",
			config: Application{
				Log: Logging{Level: "chatty"},
			},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.config.Build()
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, test.config.Log.LevelOpt)
		})
	}
}
