// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package cable

import "github.com/google/uuid"

// Identity is presented in the Connect packet to authenticate and identify a
// session. If ClientID is empty, Connect assigns a random one.
type Identity struct {
	UserID   string
	ClientID string
	Password string
}

func (id Identity) withDefaultClientID() Identity {
	if id.ClientID == "" {
		id.ClientID = uuid.NewString()
	}
	return id
}
