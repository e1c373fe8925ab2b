package main

import (
	"bytes"
	"testing"

	"CommLab/pkg/commerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEncodeCommand(t *testing.T) {
	out, err := run(t, "encode", "--bits", "1x0", "--scheme", "AMI")
	require.NoError(t, err)
	assert.Equal(t, "0 1\n1 1\n1 0\n2 0\n", out)

	_, err = run(t, "encode", "--scheme", "4b5b")
	assert.ErrorIs(t, err, commerr.ErrConfiguration)
}

func TestTDMCommand(t *testing.T) {
	out, err := run(t, "tdm", "--stuffing")
	require.NoError(t, err)
	assert.Contains(t, out, `received "HELLO"`)
	assert.Contains(t, out, `received "WORLD"`)
	assert.Contains(t, out, `received "TDM", 2 stuffed slots`)
	assert.Contains(t, out, "complete")
}

func TestCapacityCommand(t *testing.T) {
	out, err := run(t, "capacity", "--bandwidth", "3000", "--levels", "2", "--snr", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "Nyquist (2 levels): 6000.00 bps")

	_, err = run(t, "capacity", "--levels", "1")
	assert.ErrorIs(t, err, commerr.ErrDomain)
}

func TestTransmitCommand(t *testing.T) {
	out, err := run(t, "transmit", "--mode", "async", "--data", "1", "--travel", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "asynchronous: 011 on the wire")
	assert.Contains(t, out, "received 1 after 3s")
}
