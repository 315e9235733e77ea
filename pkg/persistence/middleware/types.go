package middleware

import "github.com/aretw0/wallethunt/pkg/ports"

// Middleware allows wrapping an ExclusionStore to add behavior.
type Middleware func(ports.ExclusionStore) ports.ExclusionStore
