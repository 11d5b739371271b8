// Package policydoc builds IAM policy documents for generated CodeCommit
// access policies. Each document is produced from a per-type template with
// the Resource element filled in, either "*" or a list of repository ARNs.
//
// Templates ship embedded in the binary. An operator can point the service at
// a directory of override templates instead; those are watched and reloaded
// on change.
package policydoc

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

//go:embed templates/*.json
var embeddedTemplates embed.FS

// Document is an IAM policy document.
type Document struct {
	Version   string      `json:"Version"`
	Statement []Statement `json:"Statement"`
}

// Statement is a single policy statement. Resource is either the string "*"
// or a list of ARNs.
type Statement struct {
	Effect   string      `json:"Effect"`
	Action   []string    `json:"Action"`
	Resource interface{} `json:"Resource"`
}

// Templates holds the parsed per-type policy templates.
type Templates struct {
	mu   sync.RWMutex
	docs map[PolicyType]Document

	dir    string
	logger *zap.Logger
}

// NewTemplates loads the embedded templates. If dir is non-empty, templates
// found there override the embedded ones; missing files fall back to the
// embedded copy.
func NewTemplates(dir string, logger *zap.Logger) (*Templates, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := &Templates{
		docs:   make(map[PolicyType]Document),
		dir:    dir,
		logger: logger,
	}
	if err := t.load(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Templates) load() error {
	docs := make(map[PolicyType]Document)
	for _, pt := range PolicyTypeValues() {
		data, err := t.read(pt)
		if err != nil {
			return err
		}
		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse %s template: %w", pt, err)
		}
		if len(doc.Statement) == 0 {
			return fmt.Errorf("%s template has no statements", pt)
		}
		docs[pt] = doc
	}

	t.mu.Lock()
	t.docs = docs
	t.mu.Unlock()
	return nil
}

func (t *Templates) read(pt PolicyType) ([]byte, error) {
	name := pt.String() + ".json"
	if t.dir != "" {
		data, err := os.ReadFile(filepath.Join(t.dir, name))
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read %s template: %w", pt, err)
		}
	}
	return embeddedTemplates.ReadFile("templates/" + name)
}

// Watch reloads the override directory whenever a template file changes.
// It blocks until ctx is cancelled. Watch is a no-op when no override
// directory is configured.
func (t *Templates) Watch(ctx context.Context) error {
	if t.dir == "" {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create template watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(t.dir); err != nil {
		return fmt.Errorf("watch %s: %w", t.dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
				continue
			}
			if filepath.Ext(event.Name) != ".json" {
				continue
			}
			if err := t.load(); err != nil {
				// Keep serving the previous templates on a bad edit.
				t.logger.Warn("template reload failed", zap.String("file", event.Name), zap.Error(err))
				continue
			}
			t.logger.Info("templates reloaded", zap.String("file", event.Name))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			t.logger.Warn("template watcher error", zap.Error(err))
		}
	}
}

// Build renders the policy document for the given type. An empty resource
// list grants access to all repositories.
func (t *Templates) Build(pt PolicyType, resourceArns []string) (string, error) {
	t.mu.RLock()
	doc, ok := t.docs[pt]
	t.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("no template for policy type %s", pt)
	}

	var resource interface{}
	switch len(resourceArns) {
	case 0:
		resource = "*"
	case 1:
		resource = resourceArns[0]
	default:
		resource = resourceArns
	}

	// Copy before mutating so concurrent builds don't race on the shared
	// statement slice.
	statements := make([]Statement, len(doc.Statement))
	copy(statements, doc.Statement)
	statements[0].Resource = resource
	doc.Statement = statements

	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Name returns the generated policy name for the given type, stamped with
// the creation time.
func Name(pt PolicyType, now time.Time) string {
	return fmt.Sprintf("codecommit_%s_%s", pt, now.Format("20060102150405"))
}
