// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package registry

import (
	"encoding/json"
	"errors"
)

const (
	// MessageCreated is returned when a name was added.
	MessageCreated = "Successfully created."
	// MessageAlreadyExists is returned when the name is already registered.
	MessageAlreadyExists = "Already contains name"
	// MessageNotInList is returned by the greet route for unknown names.
	MessageNotInList = "Name not in the list"
)

var errMissingName = errors.New(`missing field "name"`)

// NameRequest is the body of POST /names.
type NameRequest struct {
	Name string `json:"name" yaml:"name"`
}

// UnmarshalJSON requires the name field to be present.
func (n *NameRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name *string `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Name == nil {
		return errMissingName
	}
	n.Name = *raw.Name
	return nil
}

// NameResponse is the body of POST /names responses.
type NameResponse struct {
	Message string `json:"message" yaml:"message"`
}
