package avl

// AVLError is an error type for the avl module.
type AVLError string

func (e AVLError) Error() string {
	return string(e)
}

// ErrDuplicateKey is flagged when inserting a key which is already present.
const ErrDuplicateKey = AVLError("avl: key already exists")

// ErrKeyNotFound is flagged when a key to look up, delete or split at is absent.
const ErrKeyNotFound = AVLError("avl: key not found")

// ErrEmptyTree is flagged when querying min, max or root of an empty tree.
const ErrEmptyTree = AVLError("avl: tree is empty")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = AVLError("avl: illegal arguments")

// ErrOverlappingRanges is flagged by Join if the separator does not separate
// the key ranges of the two trees.
const ErrOverlappingRanges = AVLError("avl: key ranges are not separated")

// ErrIndexOutOfBounds signals an invalid positional index.
const ErrIndexOutOfBounds = AVLError("avl: index out of bounds")

// ErrInvariantViolated is reported by Check for a corrupt tree.
const ErrInvariantViolated = AVLError("avl: invariant violated")
