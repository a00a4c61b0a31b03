// Copyright 2025 Arion Yau
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

package bravia

import "encoding/json"

// BraviaRemoteCode represents an IRCC remote control code.
type BraviaRemoteCode string

// BraviaEndpoint represents an API endpoint on the TV.
type BraviaEndpoint string

// BraviaMethod represents a JSON API method.
type BraviaMethod string

// BraviaPayload is the JSON payload structure for control API requests.
type BraviaPayload struct {
	ID      int         `json:"id"`
	Version string      `json:"version"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

// braviaResult is the generic envelope of a JSON API response. Result holds
// positional values whose shape depends on the method, so they are decoded
// lazily per call site.
type braviaResult struct {
	ID     int               `json:"id"`
	Result []json.RawMessage `json:"result"`
	Error  []json.RawMessage `json:"error"`
}

// registerClient is the client block sent in an actRegister request.
type registerClient struct {
	ClientID string `json:"clientid"`
	Nickname string `json:"nickname"`
}

// registerFunction is a capability entry in the second actRegister parameter.
type registerFunction struct {
	ClientID string `json:"clientid"`
	Value    string `json:"value"`
	Nickname string `json:"nickname"`
	Function string `json:"function"`
}

// codeTableEntry is one row of a getRemoteControllerInfo response.
type codeTableEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// powerStatus is the first result element of a getPowerStatus response.
type powerStatus struct {
	Status string `json:"status"`
}

// CreatePayload builds a control API payload with default version.
func CreatePayload(id int, method BraviaMethod, params interface{}) BraviaPayload {
	if params == nil {
		params = []interface{}{}
	}

	return BraviaPayload{
		ID:      id,
		Version: "1.0",
		Method:  string(method),
		Params:  params,
	}
}
