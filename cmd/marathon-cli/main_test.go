package main

import (
	"bytes"
	"context"
	"testing"

	internal "github.com/bruno-anjos/cluster-harness/internal/marathon"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallOnContainerPrintsIDOnFailure(t *testing.T) {
	var out bytes.Buffer

	installErr := &internal.InstallError{Step: internal.StepDeploy, Endpoint: "http://10.0.0.2:8080",
		Err: errors.New("rejected")}

	err := installOnContainer(context.Background(), &out, "c0ffee", func(context.Context) error {
		assert.Equal(t, "c0ffee\n", out.String())

		return installErr
	})
	require.Error(t, err)

	assert.Equal(t, "c0ffee\n", out.String())
	assert.Contains(t, err.Error(), "c0ffee")

	var target *internal.InstallError
	assert.True(t, errors.As(err, &target))
}

func TestInstallOnContainerSuccess(t *testing.T) {
	var out bytes.Buffer

	err := installOnContainer(context.Background(), &out, "c0ffee", func(context.Context) error {
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "c0ffee\n", out.String())
}
