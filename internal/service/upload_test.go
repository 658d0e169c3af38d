package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"mygpt/internal/model"
	"mygpt/internal/storage"
	storeMocks "mygpt/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUploadService(t *testing.T) {
	_, err := NewUploadService(nil, "https://cdn.example.com")
	assert.ErrorIs(t, err, ErrStoreNotConfigured)

	_, err = NewUploadService(new(storeMocks.MockStorage), "")
	assert.ErrorIs(t, err, ErrPublicBaseRequired)

	svc, err := NewUploadService(new(storeMocks.MockStorage), "https://cdn.example.com/")
	assert.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestUploadService_UploadBatch(t *testing.T) {
	ctx := context.Background()

	newSvc := func(t *testing.T) (*storeMocks.MockStorage, UploadService) {
		t.Helper()
		mStore := new(storeMocks.MockStorage)
		svc, err := NewUploadService(mStore, "https://cdn.example.com")
		require.NoError(t, err)
		return mStore, svc
	}

	t.Run("empty batch", func(t *testing.T) {
		_, svc := newSvc(t)
		res, err := svc.UploadBatch(ctx, nil, "ident-1", "")
		assert.ErrorIs(t, err, ErrNoFiles)
		assert.Nil(t, res)
	})

	t.Run("missing owner", func(t *testing.T) {
		_, svc := newSvc(t)
		_, err := svc.UploadBatch(ctx, []model.FilePayload{{Name: "a"}}, "", "")
		assert.ErrorIs(t, err, ErrOwnerRequired)
	})

	t.Run("one result per file, order preserved, failures isolated", func(t *testing.T) {
		mStore, svc := newSvc(t)

		mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "uploads/") && strings.HasSuffix(key, "-a.txt")
		}), mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil).Once()
		mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasSuffix(key, "-c.bin")
		}), mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, errors.New("bucket gone")).Once()
		mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasSuffix(key, "-d.png")
		}), mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil).Once()

		files := []model.FilePayload{
			{Name: "a.txt", Content: []byte("aaa"), ContentType: "text/plain"},
			{Name: "b.txt"}, // zero bytes
			{Name: "c.bin", Content: []byte{1, 2}},
			{Name: "d.png", Content: []byte{3}, ContentType: "image/png"},
		}

		res, err := svc.UploadBatch(ctx, files, "ident-1", "")
		require.NoError(t, err)
		require.Len(t, res, 4)

		assert.True(t, res[0].OK)
		assert.Equal(t, "a.txt", res[0].Name)
		assert.True(t, strings.HasPrefix(res[0].URL, "https://cdn.example.com/uploads/"))

		assert.False(t, res[1].OK)
		assert.Equal(t, "empty file", res[1].Error)

		assert.False(t, res[2].OK)
		assert.Contains(t, res[2].Error, "bucket gone")

		assert.True(t, res[3].OK)
		assert.Equal(t, "image/png", res[3].ContentType)

		mStore.AssertExpectations(t)
	})

	t.Run("hostile folder label is rewritten", func(t *testing.T) {
		mStore, svc := newSvc(t)

		mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, ".._secret_dir_x/")
		}), mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil).Once()

		res, err := svc.UploadBatch(ctx,
			[]model.FilePayload{{Name: "a.txt", Content: []byte("aaa")}},
			"ident-1", "../secret dir?x")
		require.NoError(t, err)
		require.True(t, res[0].OK)

		assert.Regexp(t, `^\.\._secret_dir_x/\d+-[0-9a-f]{16}-a\.txt$`, res[0].Key)
		assert.Equal(t, "https://cdn.example.com/"+res[0].Key, res[0].URL)
		assert.NotContains(t, res[0].URL, " ")
		assert.NotContains(t, res[0].URL, "?")
		assert.NotContains(t, res[0].Key, "../")
		mStore.AssertExpectations(t)
	})

	t.Run("dots-only folder label falls back to the default", func(t *testing.T) {
		mStore, svc := newSvc(t)

		mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "uploads/")
		}), mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil).Once()

		res, err := svc.UploadBatch(ctx,
			[]model.FilePayload{{Name: "a.txt", Content: []byte("aaa")}},
			"ident-1", "..")
		require.NoError(t, err)
		require.True(t, res[0].OK)
		assert.True(t, strings.HasPrefix(res[0].Key, "uploads/"))
		mStore.AssertExpectations(t)
	})

	t.Run("custom folder and default content type", func(t *testing.T) {
		mStore, svc := newSvc(t)

		mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "avatars/")
		}), mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
			return opt.ContentType == "application/octet-stream" &&
				opt.Metadata["original-filename"] == "raw" &&
				opt.Metadata["owner-id"] == "ident-1"
		})).Return(storage.ObjectInfo{}, nil).Once()

		res, err := svc.UploadBatch(ctx, []model.FilePayload{{Name: "raw", Content: []byte{9}}}, "ident-1", "avatars")
		require.NoError(t, err)
		assert.True(t, res[0].OK)
		mStore.AssertExpectations(t)
	})
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain.txt", "plain.txt"},
		{"with space.txt", "with_space.txt"},
		{"über/../etc passwd", "_ber_.._etc_passwd"},
		{"UPPER-low.9", "UPPER-low.9"},
		{"семейное фото.jpg", "_____________.jpg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in))
		// Deterministic: a second pass changes nothing.
		assert.Equal(t, tt.want, sanitizeFilename(sanitizeFilename(tt.in)))
	}
}

func TestSanitizeFolder(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "uploads"},
		{"avatars", "avatars"},
		{"user photos", "user_photos"},
		{"..", "uploads"},
		{"../..", "uploads"},
		{"_-.", "uploads"},
		{"../secret dir?x", ".._secret_dir_x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFolder(tt.in), "in=%q", tt.in)
	}
}

func TestStorageKey(t *testing.T) {
	keyShape := regexp.MustCompile(`^uploads/\d+-[0-9a-f]{16}-report_final\.pdf$`)

	k1, err := storageKey("uploads", "report final.pdf")
	require.NoError(t, err)
	k2, err := storageKey("uploads", "report final.pdf")
	require.NoError(t, err)

	assert.Regexp(t, keyShape, k1)
	assert.NotEqual(t, k1, k2, "keys must be unique per attempt")
}
