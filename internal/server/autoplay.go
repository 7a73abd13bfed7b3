package server

import (
	"context"

	"github.com/preston-bernstein/courtside-sim/internal/autoplay"
)

// Autoplayer defines the background round player the server drives.
type Autoplayer interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() autoplay.Status
}
