package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cursos.log")

	log, closer, err := New(path, "debug")
	require.NoError(t, err)

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("id_curso", 7).Info("curso eliminado")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "curso eliminado")
	assert.Contains(t, string(data), "id_curso=7")
}

func TestNewInvalidLevel(t *testing.T) {
	_, _, err := New(filepath.Join(t.TempDir(), "x.log"), "barulhento")
	assert.Error(t, err)
}
