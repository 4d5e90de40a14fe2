// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package internal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cablehq/cable-go/internal"
)

func TestBackgroundWithCancelsOnClose(t *testing.T) {
	sentinel := errors.New("session closed")
	bg := internal.NewBackground(sentinel)

	ctx, cancel := bg.With(context.Background())
	defer cancel()

	bg.Close()

	select {
	case <-ctx.Done():
		assert.ErrorIs(t, context.Cause(ctx), sentinel)
	case <-time.After(time.Second):
		t.Fatal("derived context was not canceled after Close")
	}
}

func TestBackgroundWithCancelsOnParentCancel(t *testing.T) {
	bg := internal.NewBackground(errors.New("unused"))
	parent, parentCancel := context.WithCancel(context.Background())

	ctx, cancel := bg.With(parent)
	defer cancel()

	parentCancel()

	select {
	case <-ctx.Done():
		assert.ErrorIs(t, context.Cause(ctx), context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("derived context was not canceled after parent cancel")
	}
}

func TestBackgroundCloseIsIdempotent(t *testing.T) {
	bg := internal.NewBackground(errors.New("unused"))
	require.NotPanics(t, func() {
		bg.Close()
		bg.Close()
	})
}
