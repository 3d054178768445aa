package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_ForwardsFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewZapLogger(zap.New(core))

	l.Info(context.Background(), "paper uploaded", "paperId", "p1", "version", 2)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "paper uploaded", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "p1", fields["paperId"])
	require.EqualValues(t, 2, fields["version"])
}

func TestZapLogger_WithAddsPersistentFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	var l Logger = NewZapLogger(zap.New(core))

	child := l.With("repoId", "r1")
	child.Warn(context.Background(), "refetch failed")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "r1", entries[0].ContextMap()["repoId"])
}

func TestNewLogger_Modes(t *testing.T) {
	for _, dev := range []bool{true, false} {
		l, err := NewLogger(dev)
		require.NoError(t, err)
		require.NotNil(t, l)
	}
}
