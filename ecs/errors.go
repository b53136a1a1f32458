package ecs

import "github.com/rotisserie/eris"

// ErrNotInitialized is returned by every Manager operation attempted before Init
// or after Destroy. The Manager performs no mutation when it is returned.
var ErrNotInitialized = eris.New("ecs: manager not initialized")
