package host

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/attaebra/familytv/internal/interfaces"
)

// MemoryProperties is an in-process property namespace.
type MemoryProperties struct {
	mu    sync.RWMutex
	props map[string]string
}

// Ensure MemoryProperties implements the Properties interface.
var _ interfaces.Properties = (*MemoryProperties)(nil)

// NewMemoryProperties creates an empty property namespace.
func NewMemoryProperties() *MemoryProperties {
	return &MemoryProperties{props: make(map[string]string)}
}

// GetProperty returns the value for key, or "" when unset.
func (p *MemoryProperties) GetProperty(key string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.props[key]
}

// SetProperty stores value under key.
func (p *MemoryProperties) SetProperty(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.props[key] = value
	return nil
}

// ClearProperty removes key.
func (p *MemoryProperties) ClearProperty(key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.props, key)
	return nil
}

// FileProperties keeps the property namespace in a YAML file so that
// values outlive a single invocation.
type FileProperties struct {
	mu   sync.Mutex
	path string
}

// Ensure FileProperties implements the Properties interface.
var _ interfaces.Properties = (*FileProperties)(nil)

// NewFileProperties creates a property namespace stored at path.
// The file is created on first write.
func NewFileProperties(path string) *FileProperties {
	return &FileProperties{path: path}
}

// GetProperty returns the value for key. Unreadable files read as empty.
func (p *FileProperties) GetProperty(key string) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	props, err := p.load()
	if err != nil {
		return ""
	}
	return props[key]
}

// SetProperty stores value under key.
func (p *FileProperties) SetProperty(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	props, err := p.load()
	if err != nil {
		return err
	}
	props[key] = value
	return p.save(props)
}

// ClearProperty removes key.
func (p *FileProperties) ClearProperty(key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	props, err := p.load()
	if err != nil {
		return err
	}
	if _, ok := props[key]; !ok {
		return nil
	}
	delete(props, key)
	return p.save(props)
}

func (p *FileProperties) load() (map[string]string, error) {
	props := make(map[string]string)

	raw, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return props, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read properties %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(raw, &props); err != nil {
		return nil, fmt.Errorf("parse properties %s: %w", p.path, err)
	}
	if props == nil {
		props = make(map[string]string)
	}
	return props, nil
}

func (p *FileProperties) save(props map[string]string) error {
	raw, err := yaml.Marshal(props)
	if err != nil {
		return fmt.Errorf("encode properties: %w", err)
	}
	if err := os.WriteFile(p.path, raw, 0o644); err != nil {
		return fmt.Errorf("write properties %s: %w", p.path, err)
	}
	return nil
}
