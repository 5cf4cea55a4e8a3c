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
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mchmarny/namereg/pkg/defaults"
	apperrors "github.com/mchmarny/namereg/pkg/errors"
	"github.com/mchmarny/namereg/pkg/serializer"
	"github.com/mchmarny/namereg/pkg/server"
)

// Route patterns served by the registry.
const (
	GreetPattern     = "GET /hello/{name}"
	ListNamesPattern = "GET /names"
	AddNamePattern   = "POST /names"
)

// Routes returns the registry handlers keyed by http.ServeMux pattern.
func (r *Registry) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		GreetPattern:     r.HandleGreet,
		ListNamesPattern: r.HandleListNames,
		AddNamePattern:   r.HandleAddName,
	}
}

// HandleGreet handles GET /hello/{name}. Unknown names are answered with
// 400 rather than 404; clients depend on that status.
func (r *Registry) HandleGreet(w http.ResponseWriter, req *http.Request) {
	name := req.PathValue("name")

	if !r.Contains(name) {
		slog.Debug("greet miss",
			"requestID", server.RequestIDFromContext(req.Context()),
			"name", name,
		)
		serializer.RespondText(w, http.StatusBadRequest, MessageNotInList)
		return
	}

	serializer.RespondText(w, http.StatusOK, fmt.Sprintf("Hello %s!", name))
}

// HandleListNames handles GET /names.
func (r *Registry) HandleListNames(w http.ResponseWriter, _ *http.Request) {
	serializer.RespondJSON(w, http.StatusOK, r.List())
}

// HandleAddName handles POST /names.
func (r *Registry) HandleAddName(w http.ResponseWriter, req *http.Request) {
	if ct := req.Header.Get("Content-Type"); !serializer.IsJSONMediaType(ct) {
		server.WriteError(w, req, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Content-Type must be application/json", false, map[string]any{
				"contentType": ct,
			})
		return
	}

	body := http.MaxBytesReader(w, req.Body, defaults.MaxRequestBodyBytes)
	defer body.Close()

	reader, err := serializer.NewReader(serializer.FormatJSON, body)
	if err != nil {
		server.WriteErrorFromErr(w, req, err, "Failed to read request body", nil)
		return
	}

	var nr NameRequest
	if err := reader.Deserialize(&nr); err != nil {
		server.WriteError(w, req, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Invalid request body", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	if err := r.Add(nr.Name); err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeAlreadyExists) {
			serializer.RespondJSON(w, http.StatusConflict, NameResponse{Message: MessageAlreadyExists})
			return
		}
		server.WriteErrorFromErr(w, req, err, "Failed to add name", nil)
		return
	}

	slog.Info("name added",
		"requestID", server.RequestIDFromContext(req.Context()),
		"name", nr.Name,
	)

	serializer.RespondJSON(w, http.StatusCreated, NameResponse{Message: MessageCreated})
}
