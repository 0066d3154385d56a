package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/matzehuels/pep621/pkg/buildinfo"
	"github.com/matzehuels/pep621/pkg/deps"
	perrors "github.com/matzehuels/pep621/pkg/errors"
	"github.com/matzehuels/pep621/pkg/pipeline"
)

// maxBodySize bounds a request body: one manifest plus a few lock files.
const maxBodySize = 4 * perrors.MaxContentSize

// HeaderCache reports whether the result came from the cache ("hit" or "miss").
const HeaderCache = "X-Cache"

// ExtractRequest is the body of POST /v1/extract.
type ExtractRequest struct {
	FileName      string            `json:"fileName"`
	Content       string            `json:"content"`
	LockFiles     map[string]string `json:"lockFiles,omitempty"`
	ManifestType  string            `json:"manifestType,omitempty"`
	SkipLockFiles bool              `json:"skipLockFiles,omitempty"`
	Refresh       bool              `json:"refresh,omitempty"`
}

// Validate checks names and sizes of every supplied file.
func (req *ExtractRequest) Validate() error {
	if req.FileName == "" {
		return perrors.New(perrors.ErrCodeInvalidInput, "fileName is required")
	}
	if err := perrors.ValidatePath(req.FileName); err != nil {
		return err
	}
	if err := perrors.ValidateContent("content", req.Content); err != nil {
		return err
	}
	for name, content := range req.LockFiles {
		if err := perrors.ValidatePath(name); err != nil {
			return err
		}
		if err := perrors.ValidateContent(name, content); err != nil {
			return err
		}
	}
	return nil
}

// files exposes the request's manifest and lock files to the runner.
// Lock files are matched by base name when not given at the sibling path.
func (req *ExtractRequest) files() deps.MapFiles {
	m := make(deps.MapFiles, len(req.LockFiles)+1)
	for name, content := range req.LockFiles {
		m[filepath.ToSlash(name)] = content
	}
	m[filepath.ToSlash(req.FileName)] = req.Content
	return m
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req ExtractRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, r, perrors.New(perrors.ErrCodeInvalidInput, "request body too large"))
			return
		}
		s.writeError(w, r, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Extract(r.Context(), req.FileName, pipeline.Options{
		Files:         req.files(),
		ManifestType:  req.ManifestType,
		Refresh:       req.Refresh,
		SkipLockFiles: req.SkipLockFiles,
		TTL:           s.opts.CacheTTL,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if res.CacheHit {
		w.Header().Set(HeaderCache, "hit")
	} else {
		w.Header().Set(HeaderCache, "miss")
	}
	if res.PackageFile == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.writeJSON(w, http.StatusOK, res.PackageFile)
}

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Info: buildinfo.Current()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := perrors.HTTPStatus(err)
	code := perrors.GetCode(err)
	msg := perrors.UserMessage(err)
	if code == "" {
		code = perrors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("extract failed", "err", err, "request_id", RequestIDFromContext(r.Context()))
		msg = "internal error"
	}
	s.writeJSON(w, status, ErrorResponse{Error: ErrorBody{
		Code:      string(code),
		Message:   msg,
		RequestID: RequestIDFromContext(r.Context()),
	}})
}
