package filesystem

import (
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryEntry struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Relative paths resolve against the root given to NewMemoryFileSystem.
// Safe for concurrent use.
type MemoryFileSystem struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry // absolute slash path -> entry
	root    string
	writes  int
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.mkdirLocked(root)
	return mfs
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	abs := mfs.resolve(filePath)
	mfs.mkdirLocked(path.Dir(abs))
	mfs.putLocked(abs, []byte(content), modTime)
}

// Writes returns how many WriteFile calls succeeded.
func (mfs *MemoryFileSystem) Writes() int {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return mfs.writes
}

// Files returns the slash paths of all regular files, sorted.
func (mfs *MemoryFileSystem) Files() []string {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	var out []string
	for p, e := range mfs.entries {
		if !e.info.isDir {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// resolve maps a caller path onto the virtual tree.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) putLocked(abs string, data []byte, modTime time.Time) {
	buf := make([]byte, len(data))
	copy(buf, data)
	mfs.entries[abs] = &memoryEntry{
		content: buf,
		info: &memoryFileInfo{
			name:    path.Base(abs),
			size:    int64(len(buf)),
			mode:    0o644,
			modTime: modTime,
		},
	}
}

func (mfs *MemoryFileSystem) mkdirLocked(abs string) {
	for dir := abs; ; dir = path.Dir(dir) {
		if _, ok := mfs.entries[dir]; !ok {
			mfs.entries[dir] = &memoryEntry{
				info: &memoryFileInfo{
					name:    path.Base(dir),
					mode:    0o755 | fs.ModeDir,
					modTime: time.Now(),
					isDir:   true,
				},
			}
		}
		if dir == "/" || dir == "." || path.Dir(dir) == dir {
			return
		}
	}
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	e, ok := mfs.entries[mfs.resolve(filePath)]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}
	if e.info.isDir {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrInvalid}
	}
	out := make([]byte, len(e.content))
	copy(out, e.content)
	return out, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	abs := mfs.resolve(dirPath)
	e, ok := mfs.entries[abs]
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: dirPath, Err: fs.ErrNotExist}
	}
	if !e.info.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: dirPath, Err: fs.ErrInvalid}
	}

	var result []FileInfo
	for p, child := range mfs.entries {
		if p != abs && path.Dir(p) == abs {
			result = append(result, child.info)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	e, ok := mfs.entries[mfs.resolve(statPath)]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	return e.info, nil
}

// WriteFile implements FileSystemProvider.WriteFile
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	abs := mfs.resolve(filePath)
	parent, ok := mfs.entries[path.Dir(abs)]
	if !ok || !parent.info.isDir {
		return &fs.PathError{Op: "write", Path: filePath, Err: fs.ErrNotExist}
	}
	if e, ok := mfs.entries[abs]; ok && e.info.isDir {
		return &fs.PathError{Op: "write", Path: filePath, Err: fs.ErrInvalid}
	}
	mfs.putLocked(abs, data, time.Now())
	mfs.writes++
	return nil
}

// MkdirAll implements FileSystemProvider.MkdirAll
func (mfs *MemoryFileSystem) MkdirAll(dirPath string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	abs := mfs.resolve(dirPath)
	for dir := abs; ; dir = path.Dir(dir) {
		if e, ok := mfs.entries[dir]; ok && !e.info.isDir {
			return &fs.PathError{Op: "mkdir", Path: dirPath, Err: fs.ErrExist}
		}
		if path.Dir(dir) == dir {
			break
		}
	}
	mfs.mkdirLocked(abs)
	return nil
}
