// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentAction is the predicate function for agentaction builders.
type AgentAction func(*sql.Selector)

// ResearchSession is the predicate function for researchsession builders.
type ResearchSession func(*sql.Selector)
