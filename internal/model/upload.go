package model

// FilePayload is a single raw file received in an upload request.
// Content is fully buffered; the pipeline processes files one at a time.
type FilePayload struct {
	Name        string
	Content     []byte
	ContentType string
}

// UploadResult is the per-file outcome of the upload pipeline.
// Either Key/URL are set (success) or Error carries a diagnostic message.
// One result is produced per input file, in input order.
type UploadResult struct {
	Name        string `json:"name"`
	Key         string `json:"key,omitempty"`
	URL         string `json:"url,omitempty"`
	Size        int64  `json:"size,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	OK          bool   `json:"ok"`
	Error       string `json:"error,omitempty"`
}
