package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

var ErrInvalidServiceRef = errors.New("service must be a string or an object with a name")

// ServiceRef accepts either "Oil Change" or {"name": "Oil Change"}.
type ServiceRef struct {
	Name string
}

func (s *ServiceRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &s.Name)
	}
	if data[0] == '{' {
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		s.Name = obj.Name
		return nil
	}
	return ErrInvalidServiceRef
}

func (s ServiceRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Name)
}

// ServiceNames trims every reference and drops blanks.
func ServiceNames(refs []ServiceRef) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		if n := strings.TrimSpace(r.Name); n != "" {
			out = append(out, n)
		}
	}
	return out
}
