package network_test

import (
	"errors"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/network"
	"github.com/stretchr/testify/require"
)

type stubServer struct {
	err   error
	block chan struct{}
}

func (s stubServer) Serve() error {
	if s.block != nil {
		<-s.block
	}
	return s.err
}

func TestServe(t *testing.T) {
	t.Run("returns_the_first_failure", func(t *testing.T) {
		failed := errors.New("address in use")
		block := make(chan struct{})
		defer close(block)

		err := network.Serve(stubServer{block: block}, stubServer{err: failed})
		require.ErrorIs(t, err, failed)
	})

	t.Run("needs_a_server", func(t *testing.T) {
		require.ErrorIs(t, network.Serve(), consts.ErrorsInputInvalid)
	})
}
