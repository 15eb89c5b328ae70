package segpath_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pathlex/pkg/patherrors"
	"github.com/macropower/pathlex/pkg/segpath"
)

type fakeSource struct {
	err error
	exe string
	wd  string
}

func (s fakeSource) Executable() (string, error) {
	return s.exe, s.err
}

func (s fakeSource) Getwd() (string, error) {
	return s.wd, s.err
}

func TestFromSource(t *testing.T) {
	t.Parallel()

	src := fakeSource{exe: "/usr/local/bin/pathlex", wd: "/home/user/src/"}

	exe, err := segpath.FromExecutable(src)
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/pathlex", exe.String())

	wd, err := segpath.FromWorkingDirectory(src)
	require.NoError(t, err)
	assert.Equal(t, "/home/user/src/", wd.String())
}

func TestFromSourceErrors(t *testing.T) {
	t.Parallel()

	failing := fakeSource{err: fs.ErrPermission}

	_, err := segpath.FromExecutable(failing)
	require.ErrorIs(t, err, patherrors.ErrEnv)
	require.ErrorIs(t, err, fs.ErrPermission)

	_, err = segpath.FromWorkingDirectory(failing)
	require.ErrorIs(t, err, patherrors.ErrEnv)
	assert.True(t, errors.Is(err, fs.ErrPermission))

	_, err = segpath.FromWorkingDirectory(fakeSource{wd: "/bad/\xfe"})
	require.ErrorIs(t, err, patherrors.ErrEnv)
	require.ErrorIs(t, err, patherrors.ErrConvert)
}

func TestFromCurrent(t *testing.T) {
	t.Parallel()

	wd, err := segpath.FromCurrentWorkingDirectory()
	require.NoError(t, err)
	assert.False(t, wd.IsEmpty())

	exe, err := segpath.FromCurrentExecutable()
	require.NoError(t, err)
	_, ok := exe.FileName()
	assert.True(t, ok)
}
