// Package provision creates and locates the YAML files a plugin keeps in its
// private data directory, seeding them from bundled resources.
package provision

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/alenalex/mcutil/internal/document"
	"github.com/alenalex/mcutil/internal/executor"
)

// ConfigFile is the name of the main plugin configuration file and its
// bundled default.
const ConfigFile = "config.yml"

// VersionKey is the key CreateConfiguration stamps with the plugin version.
const VersionKey = "version"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrInvalidName is returned when a file or folder name would escape the data
// directory.
var ErrInvalidName = errors.New("invalid file name")

// Provisioner manages the files under one plugin data directory.
type Provisioner struct {
	dataDir   string
	resources fs.FS
	exec      executor.Executor
	logger    *zap.Logger
}

// New returns a Provisioner rooted at dataDir. resources holds the bundled
// defaults and may be nil. exec runs ExecuteAsyncIfExists tasks; nil means
// tasks run inline.
//
// Precondition: dataDir must be non-empty.
func New(dataDir string, resources fs.FS, exec executor.Executor, logger *zap.Logger) *Provisioner {
	if exec == nil {
		exec = executor.Sync{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provisioner{
		dataDir:   dataDir,
		resources: resources,
		exec:      exec,
		logger:    logger.Named("provision"),
	}
}

// DataDir returns the root directory.
func (p *Provisioner) DataDir() string { return p.dataDir }

// EnsureDataDir creates the data directory if it does not exist.
func (p *Provisioner) EnsureDataDir() error {
	if err := os.MkdirAll(p.dataDir, dirPerm); err != nil {
		return fmt.Errorf("creating data directory %s: %w", p.dataDir, err)
	}
	return nil
}

// EnsureFolder creates folder under the data directory and returns its path.
func (p *Provisioner) EnsureFolder(folder string) (string, error) {
	dir, err := p.resolve(folder, "")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("creating folder %s: %w", dir, err)
	}
	return dir, nil
}

// Resource returns the bundled file called name.
func (p *Provisioner) Resource(name string) ([]byte, bool) {
	if p.resources == nil {
		return nil, false
	}
	data, err := fs.ReadFile(p.resources, name)
	if err != nil {
		return nil, false
	}
	return data, true
}

// CreateConfiguration provisions config.yml from the bundled default and
// stamps it with pluginVersion.
//
// Postcondition: the file exists, holds version: pluginVersion, and its
// existing values and comments are kept.
func (p *Provisioner) CreateConfiguration(pluginVersion string) (*document.YAML, error) {
	if err := p.EnsureDataDir(); err != nil {
		return nil, err
	}
	path := filepath.Join(p.dataDir, ConfigFile)
	if _, ok := p.Resource(ConfigFile); ok {
		if err := p.seed(path, ConfigFile); err != nil {
			return nil, err
		}
	} else if err := touch(path); err != nil {
		return nil, err
	}
	if err := p.SetValue(path, VersionKey, pluginVersion); err != nil {
		return nil, err
	}
	p.logger.Info("configuration provisioned",
		zap.String("path", path),
		zap.String("version", pluginVersion),
	)
	return document.Open(path, p.logger)
}

// CreateYAML opens name in the data directory, creating an empty file if it
// is missing. Names without an extension get ".yml".
func (p *Provisioner) CreateYAML(name string) (*document.YAML, error) {
	return p.CreateYAMLIn(name, "")
}

// CreateYAMLIn is CreateYAML for a file inside folder.
func (p *Provisioner) CreateYAMLIn(name, folder string) (*document.YAML, error) {
	path, err := p.prepare(name, folder)
	if err != nil {
		return nil, err
	}
	if err := touch(path); err != nil {
		return nil, err
	}
	return document.Open(path, p.logger)
}

// CreateYAMLFromResource opens name inside folder, seeding it from the bundled
// resource. A missing file receives the resource verbatim; an existing file
// gains only the keys it lacks. An empty name reuses the resource name and an
// empty folder means the data directory itself.
func (p *Provisioner) CreateYAMLFromResource(resource, name, folder string) (*document.YAML, error) {
	if name == "" {
		name = resource
	}
	path, err := p.prepare(name, folder)
	if err != nil {
		return nil, err
	}
	if err := p.seed(path, resource); err != nil {
		return nil, err
	}
	return document.Open(path, p.logger)
}

// SetValue writes value at the dotted key of the YAML file at path, keeping
// the file's comments and key order.
func (p *Provisioner) SetValue(path, key string, value any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := parseDocument(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	node, err := valueNode(value)
	if err != nil {
		return err
	}
	if err := setPath(doc.Content[0], key, node); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return writeDocument(path, doc, data)
}

// ExecuteIfExists calls fn with the path of name inside the data directory if
// that file exists, and reports whether it did.
func (p *Provisioner) ExecuteIfExists(name string, fn func(path string)) bool {
	path, ok := p.existing(name)
	if !ok {
		return false
	}
	fn(path)
	return true
}

// ExecuteAsyncIfExists submits fn to the executor if name exists. It reports
// whether the task was dispatched; the task may not have run yet.
func (p *Provisioner) ExecuteAsyncIfExists(name string, fn func(path string)) bool {
	path, ok := p.existing(name)
	if !ok {
		return false
	}
	p.exec.Submit(func() { fn(path) })
	return true
}

// DeleteFile removes name inside folder. A missing file is not an error; the
// result reports whether something was removed.
func (p *Provisioner) DeleteFile(name, folder string) (bool, error) {
	path, err := p.resolve(folder, name)
	if err != nil {
		return false, err
	}
	err = os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("deleting %s: %w", path, err)
	}
	p.logger.Debug("file deleted", zap.String("path", path))
	return true, nil
}

func (p *Provisioner) seed(path, resource string) error {
	defaults, ok := p.Resource(resource)
	if !ok {
		return fmt.Errorf("resource %q not found", resource)
	}

	current, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(path, defaults, filePerm); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		p.logger.Info("file created from resource",
			zap.String("path", path),
			zap.String("resource", resource),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	dst, err := parseDocument(current)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	src, err := parseDocument(defaults)
	if err != nil {
		return fmt.Errorf("resource %s: %w", resource, err)
	}
	if !mergeMissing(dst.Content[0], src.Content[0]) {
		return nil
	}
	p.logger.Info("missing defaults merged", zap.String("path", path))
	return writeDocument(path, dst, current)
}

func (p *Provisioner) prepare(name, folder string) (string, error) {
	if filepath.Ext(name) == "" {
		name += ".yml"
	}
	path, err := p.resolve(folder, name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return "", fmt.Errorf("creating folder %s: %w", filepath.Dir(path), err)
	}
	return path, nil
}

func (p *Provisioner) existing(name string) (string, bool) {
	path, err := p.resolve("", name)
	if err != nil {
		return "", false
	}
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// resolve joins folder and name below the data directory, rejecting anything
// that would leave it.
func (p *Provisioner) resolve(folder, name string) (string, error) {
	if folder == "" && name == "" {
		return p.dataDir, nil
	}
	rel := filepath.Join(folder, name)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, rel)
	}
	return filepath.Join(p.dataDir, rel), nil
}

func touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	return f.Close()
}
