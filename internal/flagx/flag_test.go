package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-a", "http://api.local/api/v1", "-t", "5000"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a", "http://api.local/api/v1"},
		},
		{
			name:         "equals form",
			args:         []string{"-config=alt.json", "-a", "x"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "equals form keeps url query intact",
			args:         []string{"-a=http://h/api?x=1"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a=http://h/api?x=1"},
		},
		{
			name:         "unknown flags and positionals ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "trailing flag without value",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-c", "-e", "prod.env"},
			allowedFlags: []string{"-c", "-e"},
			want:         []string{"-c", "-e", "prod.env"},
		},
		{
			name:         "repeated flag preserved in order",
			args:         []string{"-l", "debug", "-l", "warn"},
			allowedFlags: []string{"-l"},
			want:         []string{"-l", "debug", "-l", "warn"},
		},
		{
			name:         "empty args",
			args:         nil,
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-a", "http://h", "-c", "/path/short.json"}
	assert.Equal(t, "/path/short.json", JsonConfigFlags())

	os.Args = []string{"testbin", "-config", "/path/long.json"}
	assert.Equal(t, "/path/long.json", JsonConfigFlags())

	os.Args = []string{"testbin", "-c", "/path/1.json", "-config", "/path/2.json"}
	assert.Equal(t, "/path/2.json", JsonConfigFlags(), "last one wins")

	os.Args = []string{"testbin", "-x", "1"}
	assert.Empty(t, JsonConfigFlags())
}

func TestEnvFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-e", "staging.env", "-c", "cfg.json"}
	assert.Equal(t, "staging.env", EnvFileFlag())

	os.Args = []string{"testbin", "-env=prod.env"}
	assert.Equal(t, "prod.env", EnvFileFlag())

	os.Args = []string{"testbin", "-e"}
	assert.Empty(t, EnvFileFlag(), "missing value yields empty path")
}
