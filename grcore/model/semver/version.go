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

// Package semver provides the schema version carried by inventory documents.
//
// Version wraps github.com/blang/semver/v4 so parsing and precedence follow
// SemVer 2.0.0, while the rest of gildedrose sees a plain struct that
// implements model.Model.
package semver

import (
	"encoding/json"
	"fmt"
	"strings"

	"dirpx.dev/gildedrose/grcore/errors"
	"dirpx.dev/gildedrose/grcore/model"
	bsemver "github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"
)

// Version is a semantic version: Major.Minor.Patch[-Prerelease][+Metadata].
//
// The zero value is 0.0.0 and is used as "no version". Document readers
// treat a change of Major as incompatible and anything else as compatible.
type Version struct {
	Major int
	Minor int
	Patch int

	// Prerelease is the dot-separated identifier after "-", without the dash.
	Prerelease string

	// Metadata is the dot-separated build metadata after "+", without the
	// plus sign. It never affects precedence.
	Metadata string
}

// ParseVersion parses s, accepting an optional leading "v".
func ParseVersion(s string) (Version, error) {
	bv, err := bsemver.Parse(strings.TrimPrefix(s, "v"))
	if err != nil {
		return Version{}, &errors.ParseError{Type: "Version", Value: s}
	}
	return fromBlang(bv), nil
}

// MustParseVersion is ParseVersion for constants; it panics on bad input.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders v in canonical SemVer form without a "v" prefix.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	if v.Metadata != "" {
		s += "+" + v.Metadata
	}
	return s
}

func (v Version) toBlang() (bsemver.Version, error) {
	return bsemver.Parse(v.String())
}

func fromBlang(bv bsemver.Version) Version {
	var pre string
	if len(bv.Pre) > 0 {
		parts := make([]string, len(bv.Pre))
		for i, p := range bv.Pre {
			parts[i] = p.String()
		}
		pre = strings.Join(parts, ".")
	}

	return Version{
		Major:      int(bv.Major),
		Minor:      int(bv.Minor),
		Patch:      int(bv.Patch),
		Prerelease: pre,
		Metadata:   strings.Join(bv.Build, "."),
	}
}

// Validate reports negative components and malformed identifiers.
func (v Version) Validate() error {
	// blang uses uint64 components, so negatives have to be caught here.
	for _, c := range []struct {
		field string
		value int
	}{{"Major", v.Major}, {"Minor", v.Minor}, {"Patch", v.Patch}} {
		if c.value < 0 {
			return &errors.ValidationError{Type: "Version", Field: c.field, Reason: "must be non-negative", Value: c.value}
		}
	}
	if _, err := v.toBlang(); err != nil {
		return &errors.ValidationError{Type: "Version", Reason: err.Error(), Value: v.String()}
	}
	return nil
}

// Compare returns -1, 0 or +1 following SemVer precedence. Both versions
// must be valid.
func (v Version) Compare(other Version) int {
	a, errA := v.toBlang()
	b, errB := other.toBlang()
	if errA != nil || errB != nil {
		return compareCore(v, other)
	}
	return a.Compare(b)
}

func compareCore(a, b Version) int {
	for _, d := range [...]int{a.Major - b.Major, a.Minor - b.Minor, a.Patch - b.Patch} {
		switch {
		case d < 0:
			return -1
		case d > 0:
			return 1
		}
	}
	return 0
}

// Compatible reports whether a reader built for v can read a document
// written at other: both must share the same Major component.
func (v Version) Compatible(other Version) bool {
	return v.Major == other.Major
}

// TypeName returns "Version".
func (v Version) TypeName() string {
	return "Version"
}

// Redacted returns the same text as String.
func (v Version) Redacted() string {
	return v.String()
}

// IsZero reports whether v is 0.0.0 with no prerelease or metadata.
func (v Version) IsZero() bool {
	return v == Version{}
}

// MarshalJSON encodes v as a JSON string.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a JSON string with ParseVersion.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Version", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes v as a YAML string.
func (v Version) MarshalYAML() (any, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v.String(), nil
}

// UnmarshalYAML decodes a YAML scalar with ParseVersion.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Version", Data: model.NodeSource(node), Reason: err.Error()}
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

var _ model.Model = (*Version)(nil)
