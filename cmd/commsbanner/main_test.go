package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadLocation(t *testing.T) {
	got, err := loadLocation("")
	require.NoError(t, err)
	require.Same(t, time.Local, got)

	got, err = loadLocation("Local")
	require.NoError(t, err)
	require.Same(t, time.Local, got)

	got, err = loadLocation("UTC")
	require.NoError(t, err)
	require.Equal(t, "UTC", got.String())
}

func TestLoadLocationReportsFallback(t *testing.T) {
	got, err := loadLocation("Not/AZone")
	require.Error(t, err)
	require.Same(t, time.Local, got)
}

func TestDebugLogPath(t *testing.T) {
	require.Equal(t, "", debugLogPath(""))
	require.Equal(t, "debug.log", debugLogPath("1"))
	require.Equal(t, "debug.log", debugLogPath(" TRUE "))
	require.Equal(t, "/tmp/cb.log", debugLogPath("/tmp/cb.log"))
}
