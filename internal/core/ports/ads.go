package ports

import "context"

// AdRepository persists the fixed-size promotional slot list.
type AdRepository interface {
	// List returns every slot body in slot order. Empty slots are empty
	// strings, the slice length is always the fixed slot count.
	List(ctx context.Context) ([]string, error)

	// Set replaces one slot's body. Bounds are checked by the rotator
	// before this is called.
	Set(ctx context.Context, slot int, body string) error
}
