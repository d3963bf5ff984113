// Package mcp provides the Model Context Protocol server integration for the
// outliner.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"tableflip.dev/outliner/pkg/app"
	"tableflip.dev/outliner/pkg/edit"
	"tableflip.dev/outliner/pkg/outline"
)

// Service runs outline operations on documents under Root and saves them
// back after every edit.
type Service struct {
	App *app.Service
	// Root confines the documents the server may open.
	Root string
}

// ErrOutsideRoot is returned for paths that resolve outside Root.
var ErrOutsideRoot = errors.New("document is outside the served directory")

// DocumentDTO is the outline of one document.
type DocumentDTO struct {
	Path   string         `json:"path"`
	Markup string         `json:"markup"`
	Count  int            `json:"count"`
	Nodes  []app.NodeView `json:"nodes"`
}

// NodeDTO is one node with its path and own lines.
type NodeDTO struct {
	app.NodeView
	UNL  []string `json:"unl"`
	Body []string `json:"body"`
}

// RangeOptions select nodes Pos..End, End defaulting to Pos.
type RangeOptions struct {
	Path string `json:"path"`
	Pos  int    `json:"pos"`
	End  int    `json:"end"`
}

func (o RangeOptions) span() (int, int) {
	if o.End == 0 {
		return o.Pos, o.Pos
	}
	return o.Pos, o.End
}

// NewService builds a service wrapper serving documents under root.
func NewService(a *app.Service, root string) *Service {
	return &Service{App: a, Root: root}
}

func (s *Service) resolve(path string) (string, error) {
	if s.App == nil {
		return "", errors.New("outliner service is not configured")
	}
	if strings.TrimSpace(path) == "" {
		return "", errors.New("path is required")
	}
	root, err := filepath.Abs(s.Root)
	if err != nil {
		return "", err
	}
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(root, full)
	}
	full = filepath.Clean(full)
	rel, err := filepath.Rel(root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, path)
	}
	return full, nil
}

func (s *Service) open(ctx context.Context, path string) (*app.Session, error) {
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	sess, err := s.App.Open(ctx, full, "")
	if err != nil {
		return nil, err
	}
	// The file may have been edited since the last call.
	if _, err := s.App.Reload(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Service) document(sess *app.Session, path string) *DocumentDTO {
	nodes := sess.Nodes()
	return &DocumentDTO{
		Path:   path,
		Markup: sess.Markup.Name(),
		Count:  len(nodes),
		Nodes:  nodes,
	}
}

// Documents lists the documents opened so far.
func (s *Service) Documents(_ context.Context) ([]string, error) {
	if s.App == nil {
		return nil, errors.New("outliner service is not configured")
	}
	r, err := s.App.Registry()
	if err != nil {
		return nil, err
	}
	root, _ := filepath.Abs(s.Root)
	ids := r.IDs()
	for i, id := range ids {
		if rel, err := filepath.Rel(root, id); err == nil {
			ids[i] = rel
		}
	}
	return ids, nil
}

// Outline returns every node of path.
func (s *Service) Outline(ctx context.Context, path string) (*DocumentDTO, error) {
	sess, err := s.open(ctx, path)
	if err != nil {
		return nil, err
	}
	return s.document(sess, path), nil
}

// Node returns pos with its headline path and its own lines.
func (s *Service) Node(ctx context.Context, path string, pos int) (*NodeDTO, error) {
	sess, err := s.open(ctx, path)
	if err != nil {
		return nil, err
	}
	o := sess.Outline()
	if pos < 1 || pos > o.Len() {
		return nil, fmt.Errorf("%w: no node %d", outline.ErrInvalidSelection, pos)
	}
	from, to := o.NodeRange(pos, sess.Doc.Len())
	return &NodeDTO{
		NodeView: sess.Node(pos),
		UNL:      o.UNL(pos),
		Body:     sess.Doc.Range(from, to),
	}, nil
}

// Grep finds nodes matching every pattern in and and none in not.
func (s *Service) Grep(ctx context.Context, path string, and, not []string) ([]outline.Match, error) {
	if len(and) == 0 && len(not) == 0 {
		return nil, errors.New("at least one pattern is required")
	}
	sess, err := s.open(ctx, path)
	if err != nil {
		return nil, err
	}
	return sess.Grep(and, not)
}

// Find ranks headings against query, returning at most limit matches.
func (s *Service) Find(ctx context.Context, path, query string, limit int) ([]app.FindMatch, error) {
	sess, err := s.open(ctx, path)
	if err != nil {
		return nil, err
	}
	matches := sess.Find(query)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// Report lists the marked nodes of path.
func (s *Service) Report(ctx context.Context, path string) (app.ReportResult, error) {
	sess, err := s.open(ctx, path)
	if err != nil {
		return app.ReportResult{}, err
	}
	return sess.Report(), nil
}

func (s *Service) edit(ctx context.Context, path string, op func(*app.Session) error) (*DocumentDTO, error) {
	sess, err := s.open(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := op(sess); err != nil {
		return nil, err
	}
	if err := s.App.Save(ctx, sess); err != nil {
		return nil, err
	}
	return s.document(sess, path), nil
}

// Insert adds a headline after pos, or as its first child.
func (s *Service) Insert(ctx context.Context, path string, pos int, child bool) (*DocumentDTO, error) {
	return s.edit(ctx, path, func(sess *app.Session) error {
		_, err := sess.Insert(pos, child)
		return err
	})
}

// Paste inserts the clipboard after pos and returns any warnings.
func (s *Service) Paste(ctx context.Context, path string, pos int) (*DocumentDTO, []string, error) {
	var warnings []string
	doc, err := s.edit(ctx, path, func(sess *app.Session) error {
		res, err := sess.Paste(pos)
		for _, w := range res.Warnings {
			warnings = append(warnings, w.String())
		}
		return err
	})
	return doc, warnings, err
}

// Copy puts the text of the range on the clipboard.
func (s *Service) Copy(ctx context.Context, opts RangeOptions) (string, error) {
	sess, err := s.open(ctx, opts.Path)
	if err != nil {
		return "", err
	}
	start, end := opts.span()
	res, err := sess.Copy(start, end)
	return res.Text, err
}

// Cut moves the range to the clipboard.
func (s *Service) Cut(ctx context.Context, opts RangeOptions) (*DocumentDTO, error) {
	start, end := opts.span()
	return s.edit(ctx, opts.Path, func(sess *app.Session) error {
		_, err := sess.Cut(start, end)
		return err
	})
}

// Move moves the range one step up, down, right or left.
func (s *Service) Move(ctx context.Context, opts RangeOptions, direction string) (*DocumentDTO, error) {
	start, end := opts.span()
	return s.edit(ctx, opts.Path, func(sess *app.Session) error {
		var err error
		switch direction {
		case "up":
			_, err = sess.MoveUp(start, end)
		case "down":
			_, err = sess.MoveDown(start, end)
		case "right":
			_, err = sess.Right(start, end)
		case "left":
			_, err = sess.Left(start, end)
		default:
			err = fmt.Errorf("unknown direction %q", direction)
		}
		return err
	})
}

// Mark sets, or with unmark clears, the mark flag of the range.
func (s *Service) Mark(ctx context.Context, opts RangeOptions, unmark bool) (*DocumentDTO, error) {
	start, end := opts.span()
	return s.edit(ctx, opts.Path, func(sess *app.Session) error {
		var err error
		if unmark {
			_, err = sess.Unmark(start, end)
		} else {
			_, err = sess.Mark(start, end)
		}
		return err
	})
}

// Sort orders the siblings of pos.
func (s *Service) Sort(ctx context.Context, path string, pos int, opts edit.SortOptions) (*DocumentDTO, string, error) {
	var status string
	doc, err := s.edit(ctx, path, func(sess *app.Session) error {
		res, err := sess.Sort(pos, opts)
		status = res.Status.String()
		return err
	})
	return doc, status, err
}
