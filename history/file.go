package history

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/grovetools/promptbridge/errors"
)

// FileProvider reads command records from a JSON-lines session log, one
// record per line, newest last. Shell hooks append a line after every
// command; the provider re-reads the file on each prompt draw so it always
// sees the latest entry. Session logs are small (one shell session's
// commands), so a full read per draw is fine.
type FileProvider struct {
	Path string
}

// NewFileProvider creates a FileProvider for the given session log path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

// Last implements Provider. A missing log file means no command has run yet.
func (p *FileProvider) Last() (Record, bool, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, false, nil
		}
		return Record{}, false, errors.HistoryUnavailable(p.Path, err)
	}

	line := lastLine(data)
	if len(line) == 0 {
		return Record{}, false, nil
	}

	var record Record
	if err := json.Unmarshal(line, &record); err != nil {
		return Record{}, false, errors.HistoryUnavailable(p.Path, err)
	}

	return record, true, nil
}

// lastLine returns the last non-empty line of data.
func lastLine(data []byte) []byte {
	data = bytes.TrimRight(data, "\r\n")
	if len(data) == 0 {
		return nil
	}

	idx := bytes.LastIndexByte(data, '\n')
	return bytes.TrimSpace(data[idx+1:])
}
