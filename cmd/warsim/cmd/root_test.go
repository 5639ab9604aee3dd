package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/suite"
)

type RootCmdTestSuite struct {
	suite.Suite
}

func TestRootCmdSuite(t *testing.T) {
	suite.Run(t, new(RootCmdTestSuite))
}

func (s *RootCmdTestSuite) SetupTest() {
	for _, key := range []string{"WARSIM_CONFIG", "WARSIM_GAMES", "WARSIM_WORKERS", "WARSIM_MAX_BATTLES", "WARSIM_SEED", "LOG_LEVEL"} {
		s.T().Setenv(key, "")
	}
	s.T().Setenv("ENVIRONMENT", "test")
	s.T().Setenv("LOG_LEVEL", "error")
}

func (s *RootCmdTestSuite) execute(args ...string) string {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	s.Require().NoError(root.Execute())
	return out.String()
}

func (s *RootCmdTestSuite) TestPlayPrintsBattlesAndSummary() {
	out := s.execute("play", "--seed", "5")

	s.True(strings.HasPrefix(out, "1: "), out)
	s.Contains(out, "\n2: ")
	s.Contains(out, "Seed: 5\n")
	s.Contains(out, "Winner: ")
	s.Contains(out, "Battles: ")
}

func (s *RootCmdTestSuite) TestPlayIsReproducible() {
	s.Equal(s.execute("play", "--seed", "17"), s.execute("play", "--seed", "17"))
}

func (s *RootCmdTestSuite) TestPlayQuiet() {
	out := s.execute("play", "--seed", "5", "--quiet")

	s.True(strings.HasPrefix(out, "Seed: 5\n"), out)
	s.NotContains(out, "1: ")
}

func (s *RootCmdTestSuite) TestPlayCap() {
	out := s.execute("play", "--seed", "5", "-q", "--max-battles", "3")

	s.Contains(out, "Stopped after 3 battles without a winner")
	s.NotContains(out, "Winner: ")
}

func (s *RootCmdTestSuite) TestMalformedFlagsKeepDefaults() {
	out := s.execute("play", "--seed", "5", "-q", "--max-battles", "lots", "--log-level", "shouty")

	s.Contains(out, "Winner: ")
}

func (s *RootCmdTestSuite) TestSeedFromEnvironment() {
	s.T().Setenv("WARSIM_SEED", "5")

	s.Equal(s.execute("play", "-q", "--seed", "5"), s.execute("play", "-q"))
}

func (s *RootCmdTestSuite) TestBatch() {
	out := s.execute("batch", "--games", "12", "--workers", "3", "--seed", "40", "--top", "2")

	s.Contains(out, "Games: 12\n")
	s.Contains(out, "Completion Rate: 100.00%\n")
	s.Contains(out, "Longest Games:\n  1. game ")
	s.Contains(out, "[longest]")
	s.Contains(out, "\n  2. game ")
	s.NotContains(out, "\n  3. game ")
}

func (s *RootCmdTestSuite) TestBatchSummaryIsStable() {
	strip := func(out string) string {
		// Batch IDs and timings vary between runs
		var kept []string
		for _, line := range strings.Split(out, "\n") {
			if strings.HasPrefix(line, "Batch: ") || strings.HasPrefix(line, "Elapsed: ") {
				continue
			}
			kept = append(kept, line)
		}
		return strings.Join(kept, "\n")
	}

	first := s.execute("batch", "--games", "8", "--seed", "3", "--workers", "1")
	second := s.execute("batch", "--games", "8", "--seed", "3", "--workers", "4")

	s.Equal(strip(first), strip(second))
}

func (s *RootCmdTestSuite) TestUnknownCommandFails() {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"shuffle"})

	s.Error(root.Execute())
}

func (s *RootCmdTestSuite) TestLenientInt() {
	var w warnings
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := newLenientInt(fs, "games", 4, "", &w)

	s.Require().NoError(fs.Parse([]string{"--games", "nine"}))
	s.Equal(int64(7), f.Or(7), "a malformed value counts as unset")
	s.Nil(f.Ptr(nil))
	s.Equal("4", f.String())
	s.Len(w, 1)

	s.Require().NoError(fs.Parse([]string{"--games", "9"}))
	s.Equal(int64(9), f.Or(7))
	s.Require().NotNil(f.Ptr(nil))
	s.Equal(int64(9), *f.Ptr(nil))
	s.Equal("int", f.Type())
}
