package loader

import (
	"context"
	"fmt"
	"os-cpu-scheduling/internal/core"
	"path"
	"strconv"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Service loads process lists from any location afs can read.
type Service struct {
	fs afs.Service
}

func New() *Service {
	return &Service{fs: afs.New()}
}

type document struct {
	Processes []core.Process `yaml:"processes"`
}

// Load downloads URL and decodes it by extension: .yaml, .yml and .json are
// structured documents, anything else is the line based text format.
func (s *Service) Load(ctx context.Context, URL string) ([]core.Process, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load processes from %s: %w", URL, err)
	}
	var processes []core.Process
	switch strings.ToLower(path.Ext(URL)) {
	case ".yaml", ".yml", ".json":
		processes, err = DecodeDocument(data)
	default:
		processes, err = DecodeText(string(data))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode processes from %s: %w", URL, err)
	}
	return processes, nil
}

// DecodeDocument decodes a YAML or JSON document with a processes list.
func DecodeDocument(data []byte) ([]core.Process, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Processes, nil
}

var separators = []string{",", ":", " ", "\t"}

// DecodeText parses one process per line as id,arrival,burst[,priority].
// The separator is the first of comma, colon, space or tab found on the line.
// Blank lines and lines starting with # are skipped.
func DecodeText(content string) ([]core.Process, error) {
	var processes []core.Process
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		process, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		processes = append(processes, process)
	}
	return processes, nil
}

func parseLine(line string) (core.Process, error) {
	var parts []string
	for _, sep := range separators {
		if strings.Contains(line, sep) {
			for _, part := range strings.Split(line, sep) {
				if part = strings.TrimSpace(part); part != "" {
					parts = append(parts, part)
				}
			}
			break
		}
	}
	if len(parts) < 3 || len(parts) > 4 {
		return core.Process{}, fmt.Errorf("expected id,arrival,burst[,priority] but got %q", line)
	}

	process := core.Process{ID: parts[0]}
	var err error
	if process.ArrivalTime, err = strconv.Atoi(parts[1]); err != nil {
		return core.Process{}, fmt.Errorf("invalid arrival time %q", parts[1])
	}
	if process.BurstTime, err = strconv.Atoi(parts[2]); err != nil {
		return core.Process{}, fmt.Errorf("invalid burst time %q", parts[2])
	}
	if len(parts) == 4 {
		priority, err := strconv.Atoi(parts[3])
		if err != nil {
			return core.Process{}, fmt.Errorf("invalid priority %q", parts[3])
		}
		process.Priority = &priority
	}
	return process, nil
}
