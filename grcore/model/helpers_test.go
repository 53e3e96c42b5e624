/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package model_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"dirpx.dev/gildedrose/grcore/model"
	"gopkg.in/yaml.v3"
)

// shelf is a minimal Model used to exercise the generic helpers.
type shelf struct {
	Label    string `json:"label" yaml:"label"`
	Capacity int    `json:"capacity" yaml:"capacity"`
}

func (s shelf) Validate() error {
	if s.Label == "" {
		return errors.New("label required")
	}
	if s.Capacity <= 0 {
		return errors.New("capacity must be positive")
	}
	return nil
}

func (s shelf) TypeName() string { return "Shelf" }
func (s shelf) IsZero() bool     { return s.Label == "" && s.Capacity == 0 }
func (s shelf) Redacted() string { return "Shelf{Label:" + s.Label + "}" }
func (s shelf) String() string   { return "Shelf{Label:" + s.Label + ", Capacity:set}" }

func (s shelf) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	type alias shelf
	return json.Marshal((alias)(s))
}

func (s *shelf) UnmarshalJSON(data []byte) error {
	type alias shelf
	if err := json.Unmarshal(data, (*alias)(s)); err != nil {
		return err
	}
	return s.Validate()
}

func (s shelf) MarshalYAML() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	type alias shelf
	return (alias)(s), nil
}

func (s *shelf) UnmarshalYAML(node *yaml.Node) error {
	type alias shelf
	if err := node.Decode((*alias)(s)); err != nil {
		return err
	}
	return s.Validate()
}

var _ model.Model = (*shelf)(nil)

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name    string
		models  []*shelf
		wantErr bool
		wantMsg string
	}{
		{"empty slice", nil, false, ""},
		{"all valid", []*shelf{{"A", 1}, {"B", 2}}, false, ""},
		{"one invalid", []*shelf{{"A", 1}, {"", 2}}, true, "model[1] (Shelf)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.ValidateAll(tt.models)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAll() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("ValidateAll() error = %q, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestMustValidate(t *testing.T) {
	got := model.MustValidate(&shelf{"A", 3})
	if got.Label != "A" {
		t.Errorf("MustValidate() = %+v, want label A", got)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustValidate() did not panic on invalid model")
		}
		if !strings.Contains(r.(string), "Shelf") {
			t.Errorf("panic message %q should name the type", r)
		}
	}()
	model.MustValidate(&shelf{})
}

func TestSafeString(t *testing.T) {
	s := &shelf{"A", 3}
	if got := model.SafeString(s, false); got != s.Redacted() {
		t.Errorf("SafeString(safe) = %q, want %q", got, s.Redacted())
	}
	if got := model.SafeString(s, true); got != s.String() {
		t.Errorf("SafeString(unsafe) = %q, want %q", got, s.String())
	}
}

func TestToJSON_FromJSON(t *testing.T) {
	data, err := model.ToJSON(&shelf{"A", 3})
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if string(data) != `{"label":"A","capacity":3}` {
		t.Errorf("ToJSON() = %s", data)
	}

	got := &shelf{}
	if err := model.FromJSON(data, &got); err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if *got != (shelf{"A", 3}) {
		t.Errorf("FromJSON() = %+v", got)
	}

	if _, err := model.ToJSON(&shelf{}); err == nil {
		t.Error("ToJSON() should reject an invalid model")
	}
	if err := model.FromJSON([]byte(`{"label":""}`), &got); err == nil {
		t.Error("FromJSON() should reject an invalid model")
	}
	if err := model.FromJSON([]byte(`{broken`), &got); err == nil {
		t.Error("FromJSON() should reject malformed input")
	}
}

func TestToYAML_FromYAML(t *testing.T) {
	data, err := model.ToYAML(&shelf{"A", 3})
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	got := &shelf{}
	if err := model.FromYAML(data, &got); err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	if *got != (shelf{"A", 3}) {
		t.Errorf("FromYAML() = %+v", got)
	}

	if _, err := model.ToYAML(&shelf{Label: "A"}); err == nil {
		t.Error("ToYAML() should reject an invalid model")
	}
	if err := model.FromYAML([]byte("label: A\ncapacity: 0\n"), &got); err == nil {
		t.Error("FromYAML() should reject an invalid model")
	}
}

func TestNodeSource(t *testing.T) {
	if got := model.NodeSource(nil); got != nil {
		t.Errorf("NodeSource(nil) = %q, want nil", got)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte("label: A\ncapacity: 3\n"), &doc); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	got := string(model.NodeSource(doc.Content[0]))
	if want := "label: A\ncapacity: 3\n"; got != want {
		t.Errorf("NodeSource() = %q, want %q", got, want)
	}
}
