package domain

import (
	"errors"
	"time"
)

// Level identifies a tier of the device catalog. Customers drill down
// brand, then device type, then series, then the exact model when booking a
// repair or browsing model-specific accessories.
type Level string

const (
	LevelBrand  Level = "brand"
	LevelType   Level = "type"
	LevelSeries Level = "series"
	LevelModel  Level = "model"
)

// Domain errors as sentinel values
var (
	ErrNodeNotFound   = errors.New("device node not found")
	ErrParentNotFound = errors.New("parent device node not found")
	ErrUnknownLevel   = errors.New("unknown device catalog level")
	ErrEmptyName      = errors.New("device node name cannot be empty")
	ErrMissingParent  = errors.New("device node below brand level requires a parent")
	ErrBrandHasParent = errors.New("brand nodes cannot have a parent")
	ErrNodeHasChild   = errors.New("device node still has children")
)

var validationErrors = []error{
	ErrUnknownLevel,
	ErrEmptyName,
	ErrMissingParent,
	ErrBrandHasParent,
	ErrNodeHasChild,
}

var notFoundErrors = []error{
	ErrNodeNotFound,
	ErrParentNotFound,
}

// IsValidation reports whether err is caused by malformed or out-of-range input.
func IsValidation(err error) bool {
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err is caused by a missing referenced entity.
func IsNotFound(err error) bool {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelBrand, LevelType, LevelSeries, LevelModel:
		return Level(s), nil
	default:
		return "", ErrUnknownLevel
	}
}

// Parent returns the level above, or false for brands.
func (l Level) Parent() (Level, bool) {
	switch l {
	case LevelType:
		return LevelBrand, true
	case LevelSeries:
		return LevelType, true
	case LevelModel:
		return LevelSeries, true
	default:
		return "", false
	}
}

// Node is one entry in the device catalog hierarchy.
type Node struct {
	id           string
	level        Level
	parentID     string
	name         string
	imageURL     string
	displayOrder int64
	createdAt    time.Time
	updatedAt    time.Time
}

// NewNode creates a hierarchy node with validation. Brands must not carry a
// parent; every other level must.
func NewNode(id string, level Level, parentID, name, imageURL string, displayOrder int64, now time.Time) (*Node, error) {
	if _, err := ParseLevel(string(level)); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if level == LevelBrand && parentID != "" {
		return nil, ErrBrandHasParent
	}
	if level != LevelBrand && parentID == "" {
		return nil, ErrMissingParent
	}

	return &Node{
		id:           id,
		level:        level,
		parentID:     parentID,
		name:         name,
		imageURL:     imageURL,
		displayOrder: displayOrder,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructNode reconstitutes a Node from database rows.
func ReconstructNode(id string, level Level, parentID, name, imageURL string, displayOrder int64, createdAt, updatedAt time.Time) *Node {
	return &Node{
		id:           id,
		level:        level,
		parentID:     parentID,
		name:         name,
		imageURL:     imageURL,
		displayOrder: displayOrder,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (n *Node) ID() string           { return n.id }
func (n *Node) Level() Level         { return n.level }
func (n *Node) ParentID() string     { return n.parentID }
func (n *Node) Name() string         { return n.name }
func (n *Node) ImageURL() string     { return n.imageURL }
func (n *Node) DisplayOrder() int64  { return n.displayOrder }
func (n *Node) CreatedAt() time.Time { return n.createdAt }
func (n *Node) UpdatedAt() time.Time { return n.updatedAt }
