package domain

// SpecFile is one discovered end-to-end spec file.
type SpecFile struct {
	Path     string     `json:"path"`      // full path on disk
	FilePath string     `json:"file_path"` // path relative to the project
	FileName string     `json:"file_name"` // basename
	Tests    []TestCase `json:"tests,omitempty"`
}

// TestCase is one test declaration found by scanning a spec file's source.
type TestCase struct {
	TestName string `json:"test_name"`
	File     string `json:"file"`
	Index    int    `json:"index"` // ordinal within the file, 0-based
}
