package cli_test

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pathlex/internal/cli"
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

func execute(t *testing.T, args []string, opts ...cli.RootOption) (string, string, error) {
	t.Helper()

	tc := cli.NewRootCmd("test_pathlex", "", "", opts...)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	tc.SetArgs(args)
	tc.SetOut(stdout)
	tc.SetErr(stderr)

	err := tc.Execute()

	return stdout.String(), stderr.String(), err
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := execute(t, []string{"version"})
	require.NoError(t, err)
	assert.Regexp(t, `\d+\.\d+\.\d+`, stdout)
	assert.Empty(t, stderr)
}

func TestPathCmds(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args []string
		want string
	}{
		"dedot":         {args: []string{"dedot", "C:/foo/bar/../"}, want: "C:/foo/\n"},
		"dedot windows": {args: []string{"dedot", `C:\foo\bar\..\`}, want: "C:/foo/\n"},
		"append":        {args: []string{"append", "C:/", "./foo/"}, want: "C:/foo/\n"},
		"append many":   {args: []string{"append", "C:/", "./foo/", "bar", "../baz"}, want: "C:/foo/bar/baz\n"},
		"push":          {args: []string{"push", "C:/foo", "bar"}, want: "C:/foo/bar\n"},
		"push many":     {args: []string{"push", "C:/foo/", "bar", "baz.txt"}, want: "C:/foo/bar/baz.txt\n"},
		"pop":           {args: []string{"pop", "C:/foo/bar/"}, want: "C:/foo/\n"},
		"pop count":     {args: []string{"pop", "-n", "2", "C:/foo/bar/baz"}, want: "C:/foo/\n"},
		"relative to":   {args: []string{"relative-to", "./foo", "C:/bar/"}, want: "C:/bar/foo\n"},
		"relative from": {args: []string{"relative-from", "C:/bar/foo.bar", "C:/bar/"}, want: "./foo.bar\n"},
		"ext":           {args: []string{"ext", "./.bar.foo"}, want: "foo\n"},
		"ext empty":     {args: []string{"ext", "./foo."}, want: "\n"},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			stdout, stderr, err := execute(t, tc.args)
			require.NoError(t, err)
			assert.Equal(t, tc.want, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestOutputFormats(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, []string{"dedot", "-o", "json", "C:/foo/bar/../"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"path": "C:/foo/"}`, stdout)
	})
	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, []string{"dedot", "--output=yaml", "C:/foo/bar/../"})
		require.NoError(t, err)
		assert.Equal(t, "path: C:/foo/\n", stdout)
	})
	t.Run("platform", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, []string{"push", "--platform", "-o", "json", "a", "b"})
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"path": "a/b", "platform": `+quoteJSON(filepath.Join("a", "b"))+`}`,
			stdout)
	})
	t.Run("ext yaml", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, []string{"ext", "-o", "yaml", "dist/app.tar.gz"})
		require.NoError(t, err)
		assert.Equal(t, "path: dist/app.tar.gz\nextension: gz\nstem: app.tar\n", stdout)
	})
	t.Run("tokens json", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, []string{"tokens", "-o", "json", "./a"})
		require.NoError(t, err)
		assert.JSONEq(t, `[
			{"kind": "dot", "text": "."},
			{"kind": "separator", "text": "/"},
			{"kind": "literal", "text": "a"}
		]`, stdout)
	})
}

func TestTokensCmd(t *testing.T) {
	t.Parallel()

	t.Run("plain", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, []string{"tokens", "--color=never", "../foo.txt"})
		require.NoError(t, err)
		assert.NotContains(t, stdout, "\x1b[")
		assert.Contains(t, stdout, "KIND")
		assert.Contains(t, stdout, "dotdot")
		assert.Contains(t, stdout, `"foo.txt"`)
	})
	t.Run("color", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, []string{"tokens", "--color=always", "../foo.txt"})
		require.NoError(t, err)
		assert.Contains(t, stdout, "\x1b[")
		assert.Contains(t, stdout, `"foo.txt"`)
	})
}

func TestEnvCmds(t *testing.T) {
	t.Parallel()

	src := cli.WithSource(fakeSource{exe: "/opt/bin/pathlex", wd: "/home/user/"})

	stdout, _, err := execute(t, []string{"cwd"}, src)
	require.NoError(t, err)
	assert.Equal(t, "/home/user/\n", stdout)

	stdout, _, err = execute(t, []string{"exe"}, src)
	require.NoError(t, err)
	assert.Equal(t, "/opt/bin/pathlex\n", stdout)

	_, _, err = execute(t, []string{"cwd"}, cli.WithSource(fakeSource{err: fs.ErrNotExist}))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want error
		args []string
	}{
		"no extension":   {args: []string{"ext", "./.foo"}, want: cli.ErrNoExtension},
		"bad output":     {args: []string{"dedot", "-o", "xml", "a"}, want: cli.ErrUnknownOutput},
		"bad color":      {args: []string{"dedot", "--color", "rainbow", "a"}, want: cli.ErrUnknownColor},
		"bad log level":  {args: []string{"dedot", "--log_level", "loud", "a"}, want: cli.ErrLogHandlerFailed},
		"negative count": {args: []string{"pop", "-n", "-1", "a"}, want: cli.ErrInvalidArgument},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, tc.args)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRunCmd(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "main.k")
	err := os.WriteFile(file, []byte(
		"import kcl_plugin.segpath\n\n"+
			"result = segpath.dedot(\"charts/app/../base/\")\n",
	), 0o600)
	require.NoError(t, err)

	stdout, _, err := execute(t, []string{"run", file})
	require.NoError(t, err)
	assert.Contains(t, stdout, "result: charts/base/")
}

func quoteJSON(s string) string {
	b := &bytes.Buffer{}
	b.WriteByte('"')
	for _, r := range s {
		if r == '\\' || r == '"' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')

	return b.String()
}
