package pkg

import (
	"bytes"
	"io/ioutil"
	"net"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	gossh "golang.org/x/crypto/ssh"
)

// startTestServer serves a shell script to every session on a random port.
func startTestServer(t *testing.T, script string) string {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("no shell available")
	}
	s, err := NewServer("127.0.0.1:0", "", sh, []string{"-c", script}, zaptest.NewLogger(t))
	require.NoError(t, err)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go s.Serve(l)
	t.Cleanup(func() { s.Close() })
	return l.Addr().String()
}

func dialTestServer(t *testing.T, addr string) *gossh.Session {
	client, err := gossh.Dial("tcp", addr, &gossh.ClientConfig{
		User:            "alice",
		HostKeyCallback: gossh.InsecureIgnoreHostKey(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	sess, err := client.NewSession()
	require.NoError(t, err)
	t.Cleanup(func() { sess.Close() })
	return sess
}

func exitStatus(t *testing.T, err error) int {
	if err == nil {
		return 0
	}
	exitErr, ok := err.(*gossh.ExitError)
	require.True(t, ok, "unexpected error %v", err)
	return exitErr.ExitStatus()
}

func TestServerRunsCommandOnPty(t *testing.T) {
	addr := startTestServer(t, `echo "term=$TERM"; stty size; exit 3`)
	sess := dialTestServer(t, addr)
	require.NoError(t, sess.RequestPty("xterm-256color", 25, 80, gossh.TerminalModes{}))

	var out bytes.Buffer
	sess.Stdout = &out
	err := sess.Shell()
	require.NoError(t, err)

	assert.Equal(t, 3, exitStatus(t, sess.Wait()))
	assert.Contains(t, out.String(), "term=xterm-256color")
	assert.Contains(t, out.String(), "25 80")
}

func TestServerPassesExitCodeThrough(t *testing.T) {
	addr := startTestServer(t, `exit 0`)
	sess := dialTestServer(t, addr)
	require.NoError(t, sess.RequestPty("xterm", 25, 80, gossh.TerminalModes{}))
	require.NoError(t, sess.Shell())
	assert.Equal(t, 0, exitStatus(t, sess.Wait()))
}

func TestServerRejectsSessionWithoutPty(t *testing.T) {
	addr := startTestServer(t, `exit 0`)
	sess := dialTestServer(t, addr)

	out, err := sess.Output("")
	assert.Equal(t, 1, exitStatus(t, err))
	assert.True(t, strings.HasPrefix(string(out), "non-interactive terminals are not supported"))
}

func TestNewServerHostKey(t *testing.T) {
	_, err := NewServer(SshPort, filepath.Join(t.TempDir(), "missing"), "sh", nil, nil)
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad_key")
	require.NoError(t, ioutil.WriteFile(bad, []byte("not a key"), 0600))
	_, err = NewServer(SshPort, bad, "sh", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse host key")

	s, err := NewServer(SshPort, "", "sh", []string{"-c", "true"}, nil)
	require.NoError(t, err)
	assert.Equal(t, SshPort, s.Addr)
	assert.Equal(t, ServerIdleTimeout, s.IdleTimeout)
	assert.NotNil(t, s.Handler)
}
