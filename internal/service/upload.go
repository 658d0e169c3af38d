package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"mygpt/internal/model"
	"mygpt/internal/storage"
)

var (
	ErrNoFiles            = errors.New("no files provided")
	ErrStoreNotConfigured = errors.New("object store is not configured")
	ErrPublicBaseRequired = errors.New("public base url is required")
	ErrOwnerRequired      = errors.New("owner id is required")
)

// DefaultFolder is the destination folder when the caller supplies none.
const DefaultFolder = "uploads"

// presignExpiry bounds how long a private download link stays valid.
const presignExpiry = 15 * time.Minute

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9.-]`)

// UploadService runs the batch upload pipeline: validate, name, store and
// report each file, never aborting the batch on a single file's failure.
type UploadService interface {
	// UploadBatch stores each payload under a generated key and returns one
	// result per input file, in input order. The only batch-level errors are
	// a missing owner and an empty batch.
	UploadBatch(ctx context.Context, files []model.FilePayload, ownerID, folder string) ([]model.UploadResult, error)

	// PresignDownload returns a short-lived URL for a stored object.
	PresignDownload(ctx context.Context, key string) (string, error)
}

type uploadService struct {
	store      storage.Storage
	publicBase string
}

// NewUploadService constructs the pipeline. A nil store or empty public
// base is a configuration error, distinct from any per-file failure.
func NewUploadService(store storage.Storage, publicBase string) (UploadService, error) {
	if store == nil {
		return nil, ErrStoreNotConfigured
	}
	if publicBase == "" {
		return nil, ErrPublicBaseRequired
	}
	return &uploadService{
		store:      store,
		publicBase: strings.TrimSuffix(publicBase, "/"),
	}, nil
}

func (s *uploadService) UploadBatch(ctx context.Context, files []model.FilePayload, ownerID, folder string) ([]model.UploadResult, error) {
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	folder = sanitizeFolder(folder)

	results := make([]model.UploadResult, 0, len(files))
	for _, f := range files {
		results = append(results, s.uploadOne(ctx, f, ownerID, folder))
	}
	return results, nil
}

// uploadOne processes a single file; every failure is folded into the
// result so the batch keeps going.
func (s *uploadService) uploadOne(ctx context.Context, f model.FilePayload, ownerID, folder string) model.UploadResult {
	if len(f.Content) == 0 {
		return model.UploadResult{Name: f.Name, Error: "empty file"}
	}

	key, err := storageKey(folder, f.Name)
	if err != nil {
		return model.UploadResult{Name: f.Name, Error: fmt.Sprintf("generate key: %v", err)}
	}

	ct := f.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}

	_, err = s.store.Put(ctx, key, bytes.NewReader(f.Content), storage.PutObjectOptions{
		Size:        int64(len(f.Content)),
		ContentType: ct,
		Metadata: map[string]string{
			"original-filename": f.Name,
			"owner-id":          ownerID,
		},
	})
	if err != nil {
		return model.UploadResult{Name: f.Name, Error: fmt.Sprintf("store object: %v", err)}
	}

	return model.UploadResult{
		Name:        f.Name,
		Key:         key,
		URL:         s.publicBase + "/" + key,
		Size:        int64(len(f.Content)),
		ContentType: ct,
		OK:          true,
	}
}

func (s *uploadService) PresignDownload(ctx context.Context, key string) (string, error) {
	return s.store.PresignGet(ctx, key, presignExpiry)
}

// sanitizeFilename replaces every character outside [A-Za-z0-9.-] with an
// underscore. It is deterministic: sanitizing twice yields the same string.
func sanitizeFilename(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}

// sanitizeFolder applies the same rewrite to the caller-supplied folder
// label. A label with no alphanumerics left after the rewrite ("..", "_",
// the empty string) falls back to DefaultFolder, so a key can never begin
// with a traversal segment.
func sanitizeFolder(folder string) string {
	folder = unsafeChars.ReplaceAllString(folder, "_")
	if strings.Trim(folder, "._-") == "" {
		return DefaultFolder
	}
	return folder
}

// storageKey builds {folder}/{timestamp}-{random}-{sanitized name}, unique
// per attempt and safe for both filesystems and URLs.
func storageKey(folder, name string) (string, error) {
	tok := make([]byte, 8)
	if _, err := rand.Read(tok); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%d-%s-%s",
		folder,
		time.Now().UnixMilli(),
		hex.EncodeToString(tok),
		sanitizeFilename(name),
	), nil
}
