package model

import (
	"encoding/json"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFileMode_Serialisation(t *testing.T) {
	tests := []struct {
		name string
		mode FileMode
		want string
	}{
		{"regular", FileMode(0o644), "-rw-r--r--"},
		{"executable", FileMode(0o755), "-rwxr-xr-x"},
		{"fifo", FileMode(fs.ModeNamedPipe | 0o600), "prw-------"},
		{"symlink", FileMode(fs.ModeSymlink | 0o777), "Lrwxrwxrwx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := Entry{Name: "f", Mode: tt.mode}

			data, err := json.Marshal(entry)
			require.NoError(t, err)
			assert.Contains(t, string(data), `"mode":"`+tt.want+`"`)

			out, err := yaml.Marshal(entry)
			require.NoError(t, err)
			assert.Contains(t, string(out), "mode: "+tt.want+"\n")
		})
	}
}

func TestFileMode_IsRegular(t *testing.T) {
	assert.True(t, FileMode(0o644).IsRegular())
	assert.False(t, FileMode(fs.ModeDir|0o755).IsRegular())
	assert.False(t, FileMode(fs.ModeNamedPipe).IsRegular())
}
