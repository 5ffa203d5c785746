package pkg

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"os/exec"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	SshPort           = ":2222"
)

// Server hands every SSH session its own chessterm process on a pseudo
// terminal. Sessions never see each other.
type Server struct {
	*ssh.Server
	Command string
	Args    []string
	Log     *zap.Logger
}

// NewServer prepares the SSH listener. hostKeyFile may be empty, in which
// case an ephemeral host key is generated on start.
func NewServer(addr, hostKeyFile, command string, args []string, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		Command: command,
		Args:    args,
		Log:     logger,
	}
	s.Server = &ssh.Server{
		Addr:        addr,
		IdleTimeout: ServerIdleTimeout,
		Handler:     s.handle,
	}
	if hostKeyFile != "" {
		signer, err := loadHostKey(hostKeyFile)
		if err != nil {
			return nil, err
		}
		s.AddHostKey(signer)
	}
	return s, nil
}

func loadHostKey(path string) (gossh.Signer, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read host key")
	}
	signer, err := gossh.ParsePrivateKey(b)
	if err != nil {
		return nil, errors.Wrapf(err, "parse host key %s", path)
	}
	return signer, nil
}

func (s *Server) handle(sess ssh.Session) {
	log := s.Log.With(zap.String("session", uuid.New().String()), zap.String("user", sess.User()))
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")
		sess.Exit(1)
		return
	}
	log.Info("session started", zap.String("term", ptyReq.Term), zap.Stringer("remote", sess.RemoteAddr()))

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.Command, s.Args...)
	cmd.Env = append(sess.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.StartWithSize(cmd, winsize(ptyReq.Window))
	if err != nil {
		log.Error("start pty", zap.Error(err))
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, winsize(win)); err != nil {
				log.Debug("resize", zap.Error(err))
			}
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	code := 0
	if err := cmd.Wait(); err != nil {
		code = 1
		if exitErr, ok := err.(*exec.ExitError); ok {
			code = exitErr.ExitCode()
		}
	}
	log.Info("session ended", zap.Int("code", code))
	sess.Exit(code)
}

func winsize(w ssh.Window) *pty.Winsize {
	return &pty.Winsize{Rows: uint16(w.Height), Cols: uint16(w.Width)}
}
