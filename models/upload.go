package models

// UploadedFile is an image received from a client. Implementations are
// validated (extension and size) before they reach the services.
type UploadedFile interface {
	OriginalName() string
	Bytes() []byte
	Size() int64
}

type MemoryFile struct {
	Name string
	Data []byte
}

func NewMemoryFile(name string, data []byte) *MemoryFile {
	return &MemoryFile{Name: name, Data: data}
}

func (f *MemoryFile) OriginalName() string { return f.Name }
func (f *MemoryFile) Bytes() []byte        { return f.Data }
func (f *MemoryFile) Size() int64          { return int64(len(f.Data)) }
