package host

// Host provides an abstraction over the content-creation application
// this tool drives. The document itself is opaque: implementations own
// its format, the workflow only asks for saves and object-set edits.
//
// All operations are synchronous and act on the live document, not on
// any file already on disk.
type Host interface {
	// SaveDocument persists the current document at path and redirects
	// the document's canonical location to path.
	SaveDocument(path string) error

	// SaveDocumentCopy persists a snapshot at path without changing
	// the document's canonical location.
	SaveDocumentCopy(path string) error

	// SelectAll selects every object in the document.
	SelectAll() error

	// DeleteSelectedObjects removes the selected objects. This is
	// destructive and irreversible.
	DeleteSelectedObjects() error

	// PurgeUnreferencedData reclaims data no longer referenced by any
	// object.
	PurgeUnreferencedData() error

	// DocumentPath returns the canonical location of the current
	// document, or "" if it has never been saved.
	DocumentPath() string
}
