package runtime

// RootKey identifies the root component of a render pass.
const RootKey = "__root__"

type pendingMount struct {
	key      string
	instance Component
}

// Tree tracks component instances across render passes and drives their lifecycle.
//
// A pass starts with Begin, resolves every rendered component with Resolve, and ends
// with Commit once the output is in the DOM. Instances not resolved during a pass are
// unmounted by Commit. Instances are reused by key, so component state survives re-renders.
type Tree struct {
	instances map[string]Component
	order     []string // insertion order, so unmount order is deterministic
	active    map[string]bool
	pending   []pendingMount
}

// NewTree creates an empty lifecycle tree.
func NewTree() *Tree {
	return &Tree{
		instances: make(map[string]Component),
		active:    make(map[string]bool),
	}
}

// Begin starts a render pass.
func (t *Tree) Begin() {
	t.active = make(map[string]bool, len(t.instances))
}

// Resolve returns the live instance for key, creating it from candidate on first sight.
// On first sight OnInit runs and OnMount is queued for the next Commit. OnParametersSet
// runs on every call. An existing instance receives candidate's props through PropUpdater.
func (t *Tree) Resolve(key string, candidate Component, r Renderer) Component {
	t.active[key] = true

	instance, exists := t.instances[key]
	if !exists {
		instance = candidate
		t.instances[key] = instance
		t.order = append(t.order, key)
	} else if instance != candidate {
		if updater, ok := instance.(PropUpdater); ok {
			updater.ApplyProps(candidate)
		}
	}

	instance.SetRenderer(r)

	if !exists {
		if initializer, ok := instance.(Initializer); ok {
			callHook("OnInit", key, initializer.OnInit)
		}
		t.pending = append(t.pending, pendingMount{key: key, instance: instance})
	}

	if receiver, ok := instance.(ParameterReceiver); ok {
		callHook("OnParametersSet", key, receiver.OnParametersSet)
	}

	return instance
}

// Commit ends a render pass: it runs OnMount for instances rendered for the first
// time, then unmounts every instance that was not resolved during the pass.
func (t *Tree) Commit() {
	pending := t.pending
	t.pending = nil

	for _, m := range pending {
		if !t.active[m.key] || t.instances[m.key] != m.instance {
			continue
		}
		if mounter, ok := m.instance.(Mounter); ok {
			callHook("OnMount", m.key, mounter.OnMount)
		}
	}

	t.sweep()
}

// DropPending forgets queued mounts without running them. Static rendering uses it:
// a server-side pass never reaches a DOM.
func (t *Tree) DropPending() {
	t.pending = nil
}

// UnmountAll unmounts every live instance, most recent first.
func (t *Tree) UnmountAll() {
	for i := len(t.order) - 1; i >= 0; i-- {
		key := t.order[i]
		t.unmount(key, t.instances[key])
	}
	t.order = nil
	t.instances = make(map[string]Component)
	t.active = make(map[string]bool)
	t.pending = nil
}

// Len reports the number of live instances.
func (t *Tree) Len() int {
	return len(t.instances)
}

// Instance returns the live instance for key.
func (t *Tree) Instance(key string) (Component, bool) {
	c, ok := t.instances[key]
	return c, ok
}

func (t *Tree) sweep() {
	kept := t.order[:0]
	for _, key := range t.order {
		if t.active[key] {
			kept = append(kept, key)
			continue
		}
		t.unmount(key, t.instances[key])
		delete(t.instances, key)
	}
	t.order = kept
}

func (t *Tree) unmount(key string, instance Component) {
	if unmounter, ok := instance.(Unmounter); ok {
		callHook("OnUnmount", key, unmounter.OnUnmount)
	}
}
