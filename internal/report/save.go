package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/25smoking/genenet/internal/core"
	"github.com/shirou/gopsutil/v3/host"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedReport is returned for report paths with an unknown extension.
var ErrUnsupportedReport = errors.New("unsupported report type")

// HostInfo records where a run happened.
type HostInfo struct {
	Hostname        string `json:"hostname" yaml:"hostname"`
	OS              string `json:"os" yaml:"os"`
	Platform        string `json:"platform" yaml:"platform"`
	PlatformVersion string `json:"platform_version" yaml:"platform_version"`
	KernelVersion   string `json:"kernel_version" yaml:"kernel_version"`
}

// Report is a run summary plus provenance.
type Report struct {
	core.Summary `yaml:",inline"`
	GeneratedAt  time.Time `json:"generated_at" yaml:"generated_at"`
	Host         *HostInfo `json:"host,omitempty" yaml:"host,omitempty"`
}

// hostInfo is swapped out in tests.
var hostInfo = host.Info

// New wraps a summary. Host details are best effort and left nil when they
// cannot be collected.
func New(s *core.Summary) *Report {
	r := &Report{Summary: *s, GeneratedAt: time.Now()}
	if info, err := hostInfo(); err == nil && info != nil {
		r.Host = &HostInfo{
			Hostname:        info.Hostname,
			OS:              info.OS,
			Platform:        info.Platform,
			PlatformVersion: info.PlatformVersion,
			KernelVersion:   info.KernelVersion,
		}
	}
	return r
}

// Save writes the report to path as JSON, YAML or HTML depending on the extension.
func Save(r *Report, path string) error {
	var buf bytes.Buffer

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		encoder := json.NewEncoder(&buf)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(r); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
	case ".yaml", ".yml":
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(r); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return err
		}
	case ".html", ".htm":
		if err := WriteHTML(&buf, r); err != nil {
			return fmt.Errorf("render html report: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedReport, ext)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
