package chachagen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testSeedHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f" +
		"0001020304050607"
)

type testLogger struct {
	*testing.T
	enableDebug bool
	infos       []string
	debugs      []string
}

func (l *testLogger) Infof(format string, args ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}
func (l *testLogger) Debugf(format string, args ...interface{}) {
	if !l.enableDebug {
		l.T.Errorf("Debugf is called while debugging is disabled: "+format, args...)
		return
	}
	l.debugs = append(l.debugs, fmt.Sprintf(format, args...))
}
func (l *testLogger) IsDebugEnabled() bool {
	return l.enableDebug
}

func newTestGenerator(t *testing.T, opts *Options) *Generator {
	g, err := NewFromSeed(ZeroSeed, opts)
	require.NoError(t, err)
	return g
}
