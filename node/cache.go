package node

import "sync"

type cacheKey struct {
	module string
	name   string
}

// Cache memoizes loaded node definitions by (module, name). Safe for
// concurrent use.
type Cache struct {
	mu    sync.Mutex
	nodes map[cacheKey]Node
}

// GetOrLoad returns the cached definition for (module, name), calling
// load and caching its result on a miss.
func (c *Cache) GetOrLoad(module, name string, load func() (Node, error)) (Node, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := cacheKey{module, name}
	if n, ok := c.nodes[key]; ok {
		return n, nil
	}
	n, err := load()
	if err != nil {
		return Node{}, err
	}
	if c.nodes == nil {
		c.nodes = make(map[cacheKey]Node)
	}
	c.nodes[key] = n
	return n, nil
}

// Set caches n, replacing any previous definition with the same module
// and name.
func (c *Cache) Set(n Node) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.nodes == nil {
		c.nodes = make(map[cacheKey]Node)
	}
	c.nodes[cacheKey{n.Module, n.Name}] = n
}

// Clear drops every cached definition.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nodes = nil
}
