package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// SystemBackend writes through github.com/atotto/clipboard (xclip, xsel, wl-copy, pbcopy, Windows API)
type SystemBackend struct {
	mu sync.Mutex
}

// NewSystemBackend creates the system clipboard backend
func NewSystemBackend() *SystemBackend {
	return &SystemBackend{}
}

// Write copies text to the target
func (b *SystemBackend) Write(target Target, text string) error {
	if clipboard.Unsupported {
		return ErrUnsupportedTarget
	}

	// the primary switch is package-level state in atotto/clipboard
	b.mu.Lock()
	defer b.mu.Unlock()

	switch target {
	case TargetClipboard:
		return clipboard.WriteAll(text)
	case TargetPrimary:
		return writePrimary(text)
	default:
		return ErrUnsupportedTarget
	}
}
