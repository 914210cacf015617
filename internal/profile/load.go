package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseError 描述资料文件解析失败，Line 为 0 表示无法定位行号。
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse error: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LoadFile 读取 YAML 资料文件并补齐展示相关的默认值，不做表单校验。
func LoadFile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, &ParseError{Path: path, Err: err}
	}
	return Decode(path, bytes.NewReader(data))
}

// Decode parses a YAML profile from r; name is only used in error messages.
func Decode(name string, r io.Reader) (Profile, error) {
	var p Profile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Profile{}, &ParseError{Path: name, Err: errors.New("empty profile document")}
		}
		return Profile{}, &ParseError{Path: name, Line: extractLine(err), Err: err}
	}

	p.ApplyDefaults()
	return p, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
