package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/precomp/internal/core/domain"
)

func TestCompileJob_CloseRemovesOwnedFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.scss")
	out := filepath.Join(dir, "out.css")
	require.NoError(t, os.WriteFile(in, []byte("body{}"), 0o600))
	require.NoError(t, os.WriteFile(out, []byte(""), 0o600))

	job := &domain.CompileJob{Infile: in, Outfile: out}
	job.Own(in)
	job.Own(out)

	require.NoError(t, job.Close())

	_, err := os.Stat(in)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestCompileJob_CloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.js")
	require.NoError(t, os.WriteFile(in, []byte("export {}"), 0o600))

	job := &domain.CompileJob{Infile: in}
	job.Own(in)

	require.NoError(t, job.Close())
	require.NoError(t, job.Close())
}

func TestCompileJob_CloseLeavesUnownedFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "caller.scss")
	require.NoError(t, os.WriteFile(in, []byte("body{}"), 0o600))

	// Caller-provided input file is never owned by the job.
	job := &domain.CompileJob{Infile: in}

	require.NoError(t, job.Close())

	_, err := os.Stat(in)
	assert.NoError(t, err)
}
