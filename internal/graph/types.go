package graph

import "sync"

// Graph holds quests and the prerequisite relation between them. Edges point
// from a prerequisite to the quest that needs it. All operations are
// concurrency-safe.
type Graph struct {
	mutex sync.RWMutex
	nodes map[string]*node
	// loops holds quests that list themselves as a prerequisite.
	loops map[string]bool
}

type node struct {
	id string
	// deps are the prerequisites of this quest.
	deps map[string]*node
	// dependents are the quests unlocked by this one.
	dependents map[string]*node
}

// Edge is a prerequisite -> dependent pair.
type Edge struct {
	From string
	To   string
}
