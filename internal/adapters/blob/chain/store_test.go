package chain

import (
	"context"
	"errors"
	"testing"

	portmocks "github.com/bnema/wellbeing-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockArtifactStore(t)
	fallback := portmocks.NewMockArtifactStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Get(mock.Anything, "audio-1.wav").Return([]byte("from-pass"), nil).Once()

	data, err := store.Get(context.Background(), "audio-1.wav")
	require.NoError(t, err)
	assert.Equal(t, []byte("from-pass"), data)
}

func TestStoreGetFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockArtifactStore(t)
	fallback := portmocks.NewMockArtifactStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Get(mock.Anything, "audio-1.wav").Return(nil, errors.New("pass unavailable")).Once()
	fallback.EXPECT().Get(mock.Anything, "audio-1.wav").Return([]byte("from-file"), nil).Once()

	data, err := store.Get(context.Background(), "audio-1.wav")
	require.NoError(t, err)
	assert.Equal(t, []byte("from-file"), data)
}

func TestStoreGetReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockArtifactStore(t)
	fallback := portmocks.NewMockArtifactStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Get(mock.Anything, "image-1.jpg").Return(nil, errors.New("pass failed")).Once()
	fallback.EXPECT().Get(mock.Anything, "image-1.jpg").Return(nil, errors.New("file failed")).Once()

	_, err = store.Get(context.Background(), "image-1.jpg")
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary backend")
	assert.ErrorContains(t, err, "fallback backend")
	assert.ErrorContains(t, err, "pass failed")
	assert.ErrorContains(t, err, "file failed")
}

func TestStorePutFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockArtifactStore(t)
	fallback := portmocks.NewMockArtifactStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Put(mock.Anything, "image-1.jpg", []byte("jpeg")).Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Put(mock.Anything, "image-1.jpg", []byte("jpeg")).Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), "image-1.jpg", []byte("jpeg")))
}

func TestStorePutDoesNotCallFallbackWhenPrimarySucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockArtifactStore(t)
	fallback := portmocks.NewMockArtifactStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Put(mock.Anything, "image-1.jpg", []byte("jpeg")).Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), "image-1.jpg", []byte("jpeg")))
}

func TestStoreDeleteClearsBothBackends(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockArtifactStore(t)
	fallback := portmocks.NewMockArtifactStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Delete(mock.Anything, "audio-1.wav").Return(errors.New("not in pass")).Once()
	fallback.EXPECT().Delete(mock.Anything, "audio-1.wav").Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), "audio-1.wav"))
}

func TestStoreDeleteReportsBothFailures(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockArtifactStore(t)
	fallback := portmocks.NewMockArtifactStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Delete(mock.Anything, "audio-1.wav").Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Delete(mock.Anything, "audio-1.wav").Return(errors.New("disk failed")).Once()

	err = store.Delete(context.Background(), "audio-1.wav")
	require.Error(t, err)
	assert.ErrorContains(t, err, "pass failed")
	assert.ErrorContains(t, err, "disk failed")
}

func TestStoreGetDoesNotFallbackOnCanceledContextError(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockArtifactStore(t)
	fallback := portmocks.NewMockArtifactStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Get(mock.Anything, "audio-1.wav").Return(nil, context.Canceled).Once()

	_, err = store.Get(context.Background(), "audio-1.wav")
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewStoreRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStore(nil, portmocks.NewMockArtifactStore(t))
	require.ErrorIs(t, err, errNilPrimaryStore)

	_, err = NewStore(portmocks.NewMockArtifactStore(t), nil)
	require.ErrorIs(t, err, errNilFallbackStore)
}
