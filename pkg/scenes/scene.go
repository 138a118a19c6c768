package scenes

import (
	"github.com/decker502/mascot/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

var (
	_ Scene       = (*PlaygroundScene)(nil)
	_ game.Closer = (*PlaygroundScene)(nil)
)
