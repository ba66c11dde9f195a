package graph

import "errors"

var (
	ErrUnknownLocation  = errors.New("unknown location")
	ErrUnknownNode      = errors.New("unknown node")
	ErrNoSuchEdge       = errors.New("no such edge")
	ErrNoPath           = errors.New("no path")
	ErrDuplicateEdge    = errors.New("duplicate edge")
	ErrSelfLoop         = errors.New("self loop")
	ErrInvalidAttribute = errors.New("invalid attribute")
	ErrInvalidWeight    = errors.New("invalid weight")
	ErrInvalidLocation  = errors.New("invalid location")

	// ErrUnknownEdge signals an edge the path finder produced that the graph
	// does not hold. It is an internal fault, never a user input error.
	ErrUnknownEdge = errors.New("unknown edge")
)
