/***********************************************************************************************************************
 *
 *   MIT License
 *
 *   Copyright (c) 2022 Nicolas JUHEL
 *
 *   Permission is hereby granted, free of charge, to any person obtaining a copy
 *   of this software and associated documentation files (the "Software"), to deal
 *   in the Software without restriction, including without limitation the rights
 *   to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *   copies of the Software, and to permit persons to whom the Software is
 *   furnished to do so, subject to the following conditions:
 *
 *   The above copyright notice and this permission notice shall be included in all
 *   copies or substantial portions of the Software.
 *
 *   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *   AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *   LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *   OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *   SOFTWARE.
 *
 *
 **********************************************************************************************************************/

package protocol

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// MarshalJSON implements json.Marshaler, rendering the protocol as its
// lowercase string name (an empty string for NetworkEmpty/invalid values).
func (n NetworkProtocol) MarshalJSON() ([]byte, error) {
	return []byte(`"` + n.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NetworkProtocol) UnmarshalJSON(p []byte) error {
	*n = Parse(string(p))
	return nil
}

// MarshalYAML implements yaml.Marshaler, returning the plain string name.
func (n NetworkProtocol) MarshalYAML() (interface{}, error) {
	return n.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler (gopkg.in/yaml.v3 Node form).
func (n *NetworkProtocol) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*n = Parse(s)
	return nil
}

// MarshalTOML returns the plain string name.
func (n NetworkProtocol) MarshalTOML() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalTOML accepts a string or []byte value holding the protocol name.
func (n *NetworkProtocol) UnmarshalTOML(v interface{}) error {
	switch t := v.(type) {
	case string:
		*n = Parse(t)
		return nil
	case []byte:
		*n = Parse(string(t))
		return nil
	default:
		return fmt.Errorf("network protocol value %v is not in valid format", v)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (n NetworkProtocol) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *NetworkProtocol) UnmarshalText(p []byte) error {
	*n = Parse(string(p))
	return nil
}

// MarshalCBOR renders the protocol as a CBOR text string holding its name,
// matching the text-based representation used across this module's marshalers.
func (n NetworkProtocol) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(n.String())
}

// UnmarshalCBOR is the counterpart of MarshalCBOR.
func (n *NetworkProtocol) UnmarshalCBOR(p []byte) error {
	var s string
	if err := cbor.Unmarshal(p, &s); err != nil {
		return err
	}
	*n = Parse(s)
	return nil
}
