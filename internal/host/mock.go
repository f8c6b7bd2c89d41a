package host

// MockHost implements Host for testing with call recording and
// per-method error injection.
type MockHost struct {
	canonical string

	// Calls records every operation in invocation order, with saves
	// recorded as "save:<path>" and "save-copy:<path>".
	Calls []string

	// SavedPaths and CopiedPaths record save targets separately.
	SavedPaths  []string
	CopiedPaths []string

	// Hooks for testing error scenarios
	SaveDocumentError          error
	SaveDocumentCopyError      error
	SelectAllError             error
	DeleteSelectedObjectsError error
	PurgeUnreferencedDataError error
}

// NewMockHost creates a MockHost with an unsaved document.
func NewMockHost() *MockHost {
	return &MockHost{}
}

func (m *MockHost) SaveDocument(path string) error {
	m.Calls = append(m.Calls, "save:"+path)
	if m.SaveDocumentError != nil {
		return m.SaveDocumentError
	}
	m.SavedPaths = append(m.SavedPaths, path)
	m.canonical = path
	return nil
}

func (m *MockHost) SaveDocumentCopy(path string) error {
	m.Calls = append(m.Calls, "save-copy:"+path)
	if m.SaveDocumentCopyError != nil {
		return m.SaveDocumentCopyError
	}
	m.CopiedPaths = append(m.CopiedPaths, path)
	return nil
}

func (m *MockHost) SelectAll() error {
	m.Calls = append(m.Calls, "select-all")
	return m.SelectAllError
}

func (m *MockHost) DeleteSelectedObjects() error {
	m.Calls = append(m.Calls, "delete-selected")
	return m.DeleteSelectedObjectsError
}

func (m *MockHost) PurgeUnreferencedData() error {
	m.Calls = append(m.Calls, "purge")
	return m.PurgeUnreferencedDataError
}

func (m *MockHost) DocumentPath() string {
	return m.canonical
}
