package host

import (
	"encoding/json"
	"fmt"

	"github.com/studio-pipeline/workbench/internal/filesystem"
)

// FileHost is the reference Host implementation. It keeps the live
// document in memory and serializes it to disk on save. Real host
// integrations (running inside the content-creation application)
// replace this with calls into the application's own save API.
type FileHost struct {
	fs        filesystem.FileSystem
	canonical string
	doc       document
	selected  map[string]bool
}

// document is the FileHost's in-memory document model: a flat object
// set plus the data blocks the objects reference.
type document struct {
	Objects    []docObject `json:"objects"`
	DataBlocks []dataBlock `json:"data_blocks"`
}

type docObject struct {
	Name string `json:"name"`
	Data string `json:"data,omitempty"`
}

type dataBlock struct {
	Name string `json:"name"`
}

// NewFileHost creates a FileHost with an empty, unsaved document.
func NewFileHost(fs filesystem.FileSystem) *FileHost {
	return &FileHost{
		fs:       fs,
		selected: make(map[string]bool),
	}
}

// Open loads an existing document and makes path its canonical location.
func (h *FileHost) Open(path string) error {
	data, err := h.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse document %s: %w", path, err)
	}

	h.doc = doc
	h.canonical = path
	h.selected = make(map[string]bool)
	return nil
}

// AddObject adds an object and its backing data block to the document.
func (h *FileHost) AddObject(name, data string) {
	h.doc.Objects = append(h.doc.Objects, docObject{Name: name, Data: data})
	if data != "" && !h.hasDataBlock(data) {
		h.doc.DataBlocks = append(h.doc.DataBlocks, dataBlock{Name: data})
	}
}

// Objects returns the names of all objects in the document.
func (h *FileHost) Objects() []string {
	names := make([]string, 0, len(h.doc.Objects))
	for _, obj := range h.doc.Objects {
		names = append(names, obj.Name)
	}
	return names
}

// DataBlocks returns the names of all data blocks in the document.
func (h *FileHost) DataBlocks() []string {
	names := make([]string, 0, len(h.doc.DataBlocks))
	for _, db := range h.doc.DataBlocks {
		names = append(names, db.Name)
	}
	return names
}

func (h *FileHost) SaveDocument(path string) error {
	if err := h.write(path); err != nil {
		return err
	}
	h.canonical = path
	return nil
}

func (h *FileHost) SaveDocumentCopy(path string) error {
	return h.write(path)
}

func (h *FileHost) write(path string) error {
	data, err := json.MarshalIndent(h.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	if err := h.fs.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	return nil
}

func (h *FileHost) SelectAll() error {
	for _, obj := range h.doc.Objects {
		h.selected[obj.Name] = true
	}
	return nil
}

func (h *FileHost) DeleteSelectedObjects() error {
	remaining := h.doc.Objects[:0]
	for _, obj := range h.doc.Objects {
		if !h.selected[obj.Name] {
			remaining = append(remaining, obj)
		}
	}
	h.doc.Objects = remaining
	h.selected = make(map[string]bool)
	return nil
}

func (h *FileHost) PurgeUnreferencedData() error {
	referenced := make(map[string]bool, len(h.doc.Objects))
	for _, obj := range h.doc.Objects {
		if obj.Data != "" {
			referenced[obj.Data] = true
		}
	}

	kept := h.doc.DataBlocks[:0]
	for _, db := range h.doc.DataBlocks {
		if referenced[db.Name] {
			kept = append(kept, db)
		}
	}
	h.doc.DataBlocks = kept
	return nil
}

func (h *FileHost) DocumentPath() string {
	return h.canonical
}

func (h *FileHost) hasDataBlock(name string) bool {
	for _, db := range h.doc.DataBlocks {
		if db.Name == name {
			return true
		}
	}
	return false
}
